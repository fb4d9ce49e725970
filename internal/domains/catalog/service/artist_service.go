package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/utils"
)

func (s *catalogService) ListArtists(ctx context.Context, actor *authz.Actor, labelID int64) ([]*model.Artist, error) {
	artists, err := s.artists.ListByLabel(ctx, labelID)
	if err != nil {
		return nil, err
	}
	return model.VisibleListing(artists, s.now(), s.privileged(actor)), nil
}

func (s *catalogService) GetArtist(ctx context.Context, actor *authz.Actor, slug string) (*model.Artist, error) {
	artist, err := s.artists.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := visible(s, actor, artist, model.KindArtist, slug); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *catalogService) CreateArtist(ctx context.Context, actor *authz.Actor, in model.ArtistInput) (*model.Artist, error) {
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	artist := &model.Artist{}
	in.Apply(artist)
	artist.Slug = utils.GenerateSlug(artist.Name)

	if err := model.ValidateArtist(ctx, artist, s.lookup); err != nil {
		return nil, err
	}

	created, err := s.artists.Create(ctx, artist)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("artist_id", created.ID).Str("slug", created.Slug).Str("actor", actorID(actor)).
		Msg("[CATALOG] Artist created")
	return created, nil
}

func (s *catalogService) UpdateArtist(ctx context.Context, actor *authz.Actor, id int64, in model.ArtistInput) (*model.Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	in.Apply(artist)
	artist.Slug = utils.GenerateSlug(artist.Name)

	if err := model.ValidateArtist(ctx, artist, s.lookup); err != nil {
		return nil, err
	}

	updated, err := s.artists.Update(ctx, artist)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("artist_id", updated.ID).Str("actor", actorID(actor)).Msg("[CATALOG] Artist updated")
	return updated, nil
}

// DeleteArtist soft-deletes. Only permission and existence are checked.
func (s *catalogService) DeleteArtist(ctx context.Context, actor *authz.Actor, id int64) (*model.Artist, error) {
	if _, err := s.artists.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	deleted, err := s.artists.SoftDelete(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("artist_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Artist deleted")
	return deleted, nil
}

func (s *catalogService) RestoreArtist(ctx context.Context, actor *authz.Actor, id int64) (*model.Artist, error) {
	if _, err := s.artists.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	restored, err := s.artists.Restore(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("artist_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Artist restored")
	return restored, nil
}
