package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	catalogmodel "recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/domains/link/model"
	"recordlabel-backend/internal/domains/link/repository"
	"recordlabel-backend/internal/shared/authz"
)

type ServiceInterface interface {
	GetLinks(ctx context.Context, actor *authz.Actor, artistSlug string) (*model.ArtistLinks, error)
	// UpdateLinks reconciles music links, then social links. A failure in the
	// music vocabulary leaves social links untouched.
	UpdateLinks(ctx context.Context, actor *authz.Actor, form model.LinksForm) (*model.ArtistLinks, error)
}

// ArtistFinder resolves an artist slug with the catalog's visibility rules.
type ArtistFinder interface {
	GetArtist(ctx context.Context, actor *authz.Actor, slug string) (*catalogmodel.Artist, error)
}

type linkService struct {
	artists ArtistFinder
	music   repository.Repository[model.MusicService]
	social  repository.Repository[model.SocialMedia]
	az      authz.Authorizer
}

func NewLinkService(
	artists ArtistFinder,
	music repository.Repository[model.MusicService],
	social repository.Repository[model.SocialMedia],
	az authz.Authorizer,
) ServiceInterface {
	if az == nil {
		az = authz.PermissionChecker{}
	}
	return &linkService{artists: artists, music: music, social: social, az: az}
}

func (s *linkService) GetLinks(ctx context.Context, actor *authz.Actor, artistSlug string) (*model.ArtistLinks, error) {
	artist, err := s.artists.GetArtist(ctx, actor, strings.TrimSpace(artistSlug))
	if err != nil {
		return nil, err
	}
	return s.load(ctx, artist.ID)
}

// load reads both vocabularies concurrently.
func (s *linkService) load(ctx context.Context, artistID int64) (*model.ArtistLinks, error) {
	links := &model.ArtistLinks{ArtistID: artistID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		music, err := s.music.ListByArtist(gctx, artistID)
		links.Music = music
		return err
	})
	g.Go(func() error {
		social, err := s.social.ListByArtist(gctx, artistID)
		links.Social = social
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return links, nil
}

func (s *linkService) UpdateLinks(ctx context.Context, actor *authz.Actor, form model.LinksForm) (*model.ArtistLinks, error) {
	artist, err := s.artists.GetArtist(ctx, actor, strings.TrimSpace(form.ArtistSlug))
	if err != nil {
		return nil, err
	}
	if !authz.CanManageCatalog(s.az, actor) {
		return nil, catalogmodel.ErrPermissionDenied
	}

	current, err := s.load(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	musicPlan := model.Categorize(model.MusicServices, current.Music, form.MusicLinks())
	if err := s.music.Apply(ctx, artist.ID, musicPlan); err != nil {
		log.Error().Err(err).Int64("artist_id", artist.ID).Msg("[LINKS] Music links update failed")
		return nil, err
	}

	socialPlan := model.Categorize(model.SocialMediaServices, current.Social, form.SocialLinks())
	if err := s.social.Apply(ctx, artist.ID, socialPlan); err != nil {
		log.Error().Err(err).Int64("artist_id", artist.ID).Msg("[LINKS] Social links update failed")
		return nil, err
	}

	log.Info().
		Int64("artist_id", artist.ID).
		Int("music_created", len(musicPlan.Create)).
		Int("music_updated", len(musicPlan.Update)).
		Int("music_deleted", len(musicPlan.Delete)).
		Int("social_created", len(socialPlan.Create)).
		Int("social_updated", len(socialPlan.Update)).
		Int("social_deleted", len(socialPlan.Delete)).
		Str("actor", actor.UserID).
		Msg("[LINKS] Artist links updated")

	return s.load(ctx, artist.ID)
}
