package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/internal/shared/utils"
)

// ListReleases lists the releases an artist appears on.
func (s *catalogService) ListReleases(ctx context.Context, actor *authz.Actor, artistSlug string) ([]*model.Release, error) {
	artist, err := s.GetArtist(ctx, actor, artistSlug)
	if err != nil {
		return nil, err
	}

	releases, err := s.releases.ListByArtist(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	return model.VisibleListing(releases, s.now(), s.privileged(actor)), nil
}

// GetNextScheduledRelease feeds the label dashboard, so it is limited to privileged viewers.
// A nil release with a nil error means nothing is scheduled.
func (s *catalogService) GetNextScheduledRelease(ctx context.Context, actor *authz.Actor, labelID int64) (*model.Release, error) {
	if !s.privileged(actor) {
		return nil, model.ErrPermissionDenied
	}
	return s.releases.NextScheduled(ctx, labelID, s.now())
}

func (s *catalogService) GetRelease(ctx context.Context, actor *authz.Actor, slug string) (*model.ReleaseWithArtists, error) {
	release, err := s.releases.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := visible(s, actor, release, model.KindRelease, slug); err != nil {
		return nil, err
	}
	return s.withArtists(ctx, actor, release)
}

// withArtists re-reads the stored artist membership, keeping position order.
func (s *catalogService) withArtists(ctx context.Context, actor *authz.Actor, release *model.Release) (*model.ReleaseWithArtists, error) {
	artists, err := s.artists.ListByRelease(ctx, release.ID)
	if err != nil {
		return nil, err
	}
	return &model.ReleaseWithArtists{
		Release: release,
		Artists: model.FilterVisible(artists, s.now(), s.privileged(actor)),
	}, nil
}

func (s *catalogService) CreateRelease(ctx context.Context, actor *authz.Actor, in model.ReleaseInput) (*model.ReleaseWithArtists, error) {
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	release := &model.Release{}
	in.Apply(release)
	release.Slug = utils.GenerateSlug(release.Name)

	if err := model.ValidateRelease(ctx, release, s.lookup); err != nil {
		return nil, err
	}
	members, err := in.ReleaseMembers()
	if err != nil {
		return nil, err
	}

	created, err := s.releases.Create(ctx, release, members)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("release_id", created.ID).Str("slug", created.Slug).
		Int("artists", len(members)).Str("actor", actorID(actor)).
		Msg("[CATALOG] Release created")
	return s.withArtists(ctx, actor, created)
}

// UpdateRelease: load → permission → apply → re-slug → validate → persist and
// replace the artist set → re-read the artists.
func (s *catalogService) UpdateRelease(ctx context.Context, actor *authz.Actor, id int64, in model.ReleaseInput) (*model.ReleaseWithArtists, error) {
	release, err := s.releases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	in.Apply(release)
	release.Slug = utils.GenerateSlug(release.Name)

	if err := model.ValidateRelease(ctx, release, s.lookup); err != nil {
		return nil, err
	}
	members, err := in.ReleaseMembers()
	if err != nil {
		return nil, err
	}

	updated, err := s.releases.Update(ctx, release, members)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("release_id", updated.ID).Ints64("artist_ids", model.MemberIDs(members)).
		Str("actor", actorID(actor)).Msg("[CATALOG] Release updated")
	return s.withArtists(ctx, actor, updated)
}

func (s *catalogService) DeleteRelease(ctx context.Context, actor *authz.Actor, id int64) (*model.Release, error) {
	if _, err := s.releases.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	deleted, err := s.releases.SoftDelete(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("release_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Release deleted")
	return deleted, nil
}

func (s *catalogService) RestoreRelease(ctx context.Context, actor *authz.Actor, id int64) (*model.Release, error) {
	if _, err := s.releases.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	restored, err := s.releases.Restore(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("release_id", id).Str("actor", actorID(actor)).Msg("[CATALOG] Release restored")
	return restored, nil
}
