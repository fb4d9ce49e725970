package model

import (
	"fmt"
	"strings"
)

// Membership describes one many-to-many join table owned by a catalog entity.
type Membership struct {
	Table        string // join table
	OwnerColumn  string
	MemberColumn string
	MemberField  string // form field named in validation errors
	MemberKind   EntityKind
	EmptyMsg     string
	PrimaryField string // form field naming the primary member
}

var (
	ReleaseArtists = Membership{
		Table:        "release_artists",
		OwnerColumn:  "release_id",
		MemberColumn: "artist_id",
		MemberField:  "artist_ids",
		MemberKind:   KindArtist,
		EmptyMsg:     "At least one artist is required.",
		PrimaryField: "primary_artist_id",
	}
	TrackArtists = Membership{
		Table:        "track_artists",
		OwnerColumn:  "track_id",
		MemberColumn: "artist_id",
		MemberField:  "artist_ids",
		MemberKind:   KindArtist,
		EmptyMsg:     "At least one artist is required.",
		PrimaryField: "primary_artist_id",
	}
	TrackReleases = Membership{
		Table:        "release_tracks",
		OwnerColumn:  "track_id",
		MemberColumn: "release_id",
		MemberField:  "release_ids",
		MemberKind:   KindRelease,
		EmptyMsg:     "At least one release is required.",
		PrimaryField: "release_id",
	}
)

// Member is one row of a membership set.
type Member struct {
	ID        int64
	Position  int
	IsPrimary bool
}

// NormalizeMembers validates a desired member list and turns it into rows.
// The list must be non-empty; repeated ids keep their first position.
// primaryID marks the primary member and must be one of ids; zero means the
// first id is primary. Exactly one returned member is primary.
func NormalizeMembers(m Membership, ids []int64, primaryID int64) ([]Member, error) {
	if len(ids) == 0 {
		return nil, NewValidationError(m.MemberField, m.EmptyMsg)
	}
	if primaryID == 0 {
		primaryID = ids[0]
	}

	seen := make(map[int64]struct{}, len(ids))
	members := make([]Member, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, NewValidationError(m.MemberField, "Member ids must be positive.")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, Member{
			ID:        id,
			Position:  len(members),
			IsPrimary: id == primaryID,
		})
	}
	if _, ok := seen[primaryID]; !ok {
		return nil, NewValidationError(m.PrimaryField,
			fmt.Sprintf("Primary %s %d must be one of the selected members.", strings.ToLower(m.MemberKind.Title()), primaryID))
	}
	return members, nil
}

// MemberIDs returns the ids of a row set in position order.
func MemberIDs(members []Member) []int64 {
	out := make([]int64, len(members))
	for i, m := range members {
		out[i] = m.ID
	}
	return out
}
