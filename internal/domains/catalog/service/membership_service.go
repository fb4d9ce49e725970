package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/authz"
)

// SetReleaseArtists replaces a release's artist set without touching the release row.
func (s *catalogService) SetReleaseArtists(ctx context.Context, actor *authz.Actor, id int64, artistIDs []int64, primaryID int64) (*model.ReleaseWithArtists, error) {
	release, err := s.releases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	members, err := model.NormalizeMembers(model.ReleaseArtists, artistIDs, primaryID)
	if err != nil {
		return nil, err
	}
	if err := s.memberships.Replace(ctx, model.ReleaseArtists, release.ID, members); err != nil {
		return nil, err
	}

	log.Info().Int64("release_id", release.ID).Ints64("artist_ids", model.MemberIDs(members)).
		Str("actor", actorID(actor)).Msg("[CATALOG] Release artists replaced")
	return s.withArtists(ctx, actor, release)
}

// SetTrackArtists replaces a track's contributing artists. The track's primary
// artist stays primary and is kept in the set.
func (s *catalogService) SetTrackArtists(ctx context.Context, actor *authz.Actor, id int64, artistIDs []int64) (*model.TrackWithRelations, error) {
	track, err := s.tracks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(actor); err != nil {
		return nil, err
	}

	in := model.TrackInput{ArtistIDs: artistIDs, PrimaryArtistID: track.PrimaryArtistID, ReleaseID: track.ReleaseID}
	artists, _, err := in.TrackMembers()
	if err != nil {
		return nil, err
	}
	if err := s.memberships.Replace(ctx, model.TrackArtists, track.ID, artists); err != nil {
		return nil, err
	}

	log.Info().Int64("track_id", track.ID).Ints64("artist_ids", model.MemberIDs(artists)).
		Str("actor", actorID(actor)).Msg("[CATALOG] Track artists replaced")
	return s.withRelations(ctx, actor, track)
}
