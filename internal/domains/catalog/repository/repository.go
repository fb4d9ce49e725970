package repository

import (
	"context"
	"time"

	"recordlabel-backend/internal/domains/catalog/model"
)

// Every Get* method returns a NOT_FOUND CatalogError when no row matches, and
// every storage failure is wrapped as a PERSISTENCE_ERROR.

type LabelRepository interface {
	GetFirst(ctx context.Context) (*model.RecordLabel, error)
	GetByID(ctx context.Context, id int64) (*model.RecordLabel, error)
	GetBySlug(ctx context.Context, slug string) (*model.RecordLabel, error)
	Create(ctx context.Context, label *model.RecordLabel) (*model.RecordLabel, error)
	Update(ctx context.Context, label *model.RecordLabel) (*model.RecordLabel, error)
}

type ArtistRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Artist, error)
	GetBySlug(ctx context.Context, slug string) (*model.Artist, error)
	ListByLabel(ctx context.Context, labelID int64) ([]*model.Artist, error)
	// ListByRelease and ListByTrack return members in stored position order.
	ListByRelease(ctx context.Context, releaseID int64) ([]*model.Artist, error)
	ListByTrack(ctx context.Context, trackID int64) ([]*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Artist, error)
	Restore(ctx context.Context, id int64) (*model.Artist, error)
}

type ReleaseRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Release, error)
	GetBySlug(ctx context.Context, slug string) (*model.Release, error)
	ListByArtist(ctx context.Context, artistID int64) ([]*model.Release, error)
	ListByTrack(ctx context.Context, trackID int64) ([]*model.Release, error)
	// NextScheduled returns the live release with the earliest release_date after now, or nil.
	NextScheduled(ctx context.Context, labelID int64, now time.Time) (*model.Release, error)
	// Create and Update write the row and replace its artist membership in one transaction.
	Create(ctx context.Context, release *model.Release, artists []model.Member) (*model.Release, error)
	Update(ctx context.Context, release *model.Release, artists []model.Member) (*model.Release, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Release, error)
	Restore(ctx context.Context, id int64) (*model.Release, error)
}

type TrackRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Track, error)
	GetBySlug(ctx context.Context, slug string) (*model.Track, error)
	// ListByRelease lists every track appearing on the release, home release or not.
	ListByRelease(ctx context.Context, releaseID int64) ([]*model.Track, error)
	// Create and Update write the row and replace artist and release membership in one transaction.
	Create(ctx context.Context, track *model.Track, artists, releases []model.Member) (*model.Track, error)
	Update(ctx context.Context, track *model.Track, artists, releases []model.Member) (*model.Track, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Track, error)
	Restore(ctx context.Context, id int64) (*model.Track, error)
}

type PageRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Page, error)
	GetBySlug(ctx context.Context, slug string) (*model.Page, error)
	ListByLabel(ctx context.Context, labelID int64) ([]*model.Page, error)
	Create(ctx context.Context, page *model.Page) (*model.Page, error)
	Update(ctx context.Context, page *model.Page) (*model.Page, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Page, error)
	Restore(ctx context.Context, id int64) (*model.Page, error)
}

// MembershipRepository is the standalone association reconciler.
type MembershipRepository interface {
	// Replace deletes every row of the owner and inserts members, all or nothing.
	Replace(ctx context.Context, m model.Membership, ownerID int64, members []model.Member) error
	MemberIDs(ctx context.Context, m model.Membership, ownerID int64) ([]int64, error)
}
