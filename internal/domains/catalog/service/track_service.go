package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/utils"
)

// ListTracks lists every track appearing on a release.
func (s *catalogService) ListTracks(ctx context.Context, actor *authz.Actor, releaseSlug string) ([]*model.Track, error) {
	release, err := s.releases.GetBySlug(ctx, releaseSlug)
	if err != nil {
		return nil, err
	}
	if err := visible(s, actor, release, model.KindRelease, releaseSlug); err != nil {
		return nil, err
	}

	tracks, err := s.tracks.ListByRelease(ctx, release.ID)
	if err != nil {
		return nil, err
	}
	return model.VisibleListing(tracks, s.now(), s.privileged(actor)), nil
}

func (s *catalogService) GetTrack(ctx context.Context, actor *authz.Actor, slug string) (*model.TrackWithRelations, error) {
	track, err := s.tracks.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := visible(s, actor, track, model.KindTrack, slug); err != nil {
		return nil, err
	}
	return s.withRelations(ctx, actor, track)
}

func (s *catalogService) withRelations(ctx context.Context, actor *authz.Actor, track *model.Track) (*model.TrackWithRelations, error) {
	artists, err := s.artists.ListByTrack(ctx, track.ID)
	if err != nil {
		return nil, err
	}
	releases, err := s.releases.ListByTrack(ctx, track.ID)
	if err != nil {
		return nil, err
	}

	now, privileged := s.now(), s.privileged(actor)
	return &model.TrackWithRelations{
		Track:    track,
		Artists:  model.FilterVisible(artists, now, privileged),
		Releases: model.FilterVisible(releases, now, privileged),
	}, nil
}

func (s *catalogService) CreateTrack(ctx context.Context, actor *authz.Actor, in model.TrackInput) (*model.TrackWithRelations, error) {
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	track := &model.Track{}
	in.Apply(track)
	track.Slug = utils.GenerateSlug(track.Name)

	if err := model.ValidateTrack(ctx, track, s.lookup); err != nil {
		return nil, err
	}
	artists, releases, err := in.TrackMembers()
	if err != nil {
		return nil, err
	}

	created, err := s.tracks.Create(ctx, track, artists, releases)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("track_id", created.ID).Str("slug", created.Slug).
		Int64("release_id", created.ReleaseID).Str("actor", actorID(actor)).
		Msg("[CATALOG] Track created")
	return s.withRelations(ctx, actor, created)
}

func (s *catalogService) UpdateTrack(ctx context.Context, actor *authz.Actor, id int64, in model.TrackInput) (*model.TrackWithRelations, error) {
	track, err := s.tracks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	in.Apply(track)
	track.Slug = utils.GenerateSlug(track.Name)

	if err := model.ValidateTrack(ctx, track, s.lookup); err != nil {
		return nil, err
	}
	artists, releases, err := in.TrackMembers()
	if err != nil {
		return nil, err
	}

	updated, err := s.tracks.Update(ctx, track, artists, releases)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("track_id", updated.ID).
		Ints64("artist_ids", model.MemberIDs(artists)).
		Ints64("release_ids", model.MemberIDs(releases)).
		Str("actor", actorID(actor)).Msg("[CATALOG] Track updated")
	return s.withRelations(ctx, actor, updated)
}

func (s *catalogService) DeleteTrack(ctx context.Context, actor *authz.Actor, id int64) (*model.Track, error) {
	if _, err := s.tracks.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	deleted, err := s.tracks.SoftDelete(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("track_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Track deleted")
	return deleted, nil
}

func (s *catalogService) RestoreTrack(ctx context.Context, actor *authz.Actor, id int64) (*model.Track, error) {
	if _, err := s.tracks.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	restored, err := s.tracks.Restore(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("track_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Track restored")
	return restored, nil
}
