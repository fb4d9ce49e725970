package service

import (
	"context"
	"time"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/domains/catalog/repository"
	"recordlabel-backend/internal/shared/authz"
)

// ServiceInterface is the catalog use-case surface. Every call takes the resolved
// actor explicitly; nil is an anonymous visitor.
type ServiceInterface interface {
	// Labels
	GetLabel(ctx context.Context) (*model.RecordLabel, error)
	GetLabelBySlug(ctx context.Context, slug string) (*model.RecordLabel, error)
	CreateLabel(ctx context.Context, actor *authz.Actor, in model.LabelInput) (*model.RecordLabel, error)
	UpdateLabel(ctx context.Context, actor *authz.Actor, id int64, in model.LabelInput) (*model.RecordLabel, error)

	// Artists
	ListArtists(ctx context.Context, actor *authz.Actor, labelID int64) ([]*model.Artist, error)
	GetArtist(ctx context.Context, actor *authz.Actor, slug string) (*model.Artist, error)
	CreateArtist(ctx context.Context, actor *authz.Actor, in model.ArtistInput) (*model.Artist, error)
	UpdateArtist(ctx context.Context, actor *authz.Actor, id int64, in model.ArtistInput) (*model.Artist, error)
	DeleteArtist(ctx context.Context, actor *authz.Actor, id int64) (*model.Artist, error)
	RestoreArtist(ctx context.Context, actor *authz.Actor, id int64) (*model.Artist, error)

	// Releases
	ListReleases(ctx context.Context, actor *authz.Actor, artistSlug string) ([]*model.Release, error)
	GetNextScheduledRelease(ctx context.Context, actor *authz.Actor, labelID int64) (*model.Release, error)
	GetRelease(ctx context.Context, actor *authz.Actor, slug string) (*model.ReleaseWithArtists, error)
	CreateRelease(ctx context.Context, actor *authz.Actor, in model.ReleaseInput) (*model.ReleaseWithArtists, error)
	UpdateRelease(ctx context.Context, actor *authz.Actor, id int64, in model.ReleaseInput) (*model.ReleaseWithArtists, error)
	DeleteRelease(ctx context.Context, actor *authz.Actor, id int64) (*model.Release, error)
	RestoreRelease(ctx context.Context, actor *authz.Actor, id int64) (*model.Release, error)
	SetReleaseArtists(ctx context.Context, actor *authz.Actor, id int64, artistIDs []int64, primaryID int64) (*model.ReleaseWithArtists, error)

	// Tracks
	ListTracks(ctx context.Context, actor *authz.Actor, releaseSlug string) ([]*model.Track, error)
	GetTrack(ctx context.Context, actor *authz.Actor, slug string) (*model.TrackWithRelations, error)
	CreateTrack(ctx context.Context, actor *authz.Actor, in model.TrackInput) (*model.TrackWithRelations, error)
	UpdateTrack(ctx context.Context, actor *authz.Actor, id int64, in model.TrackInput) (*model.TrackWithRelations, error)
	DeleteTrack(ctx context.Context, actor *authz.Actor, id int64) (*model.Track, error)
	RestoreTrack(ctx context.Context, actor *authz.Actor, id int64) (*model.Track, error)
	SetTrackArtists(ctx context.Context, actor *authz.Actor, id int64, artistIDs []int64) (*model.TrackWithRelations, error)

	// Pages
	ListPages(ctx context.Context, actor *authz.Actor, labelID int64) ([]*model.Page, error)
	GetPage(ctx context.Context, actor *authz.Actor, slug string) (*model.Page, error)
	CreatePage(ctx context.Context, actor *authz.Actor, in model.PageInput) (*model.Page, error)
	UpdatePage(ctx context.Context, actor *authz.Actor, id int64, in model.PageInput) (*model.Page, error)
	DeletePage(ctx context.Context, actor *authz.Actor, id int64) (*model.Page, error)
	RestorePage(ctx context.Context, actor *authz.Actor, id int64) (*model.Page, error)
}

// Dependencies groups the collaborators the catalog service is built from.
type Dependencies struct {
	Labels      repository.LabelRepository
	Artists     repository.ArtistRepository
	Releases    repository.ReleaseRepository
	Tracks      repository.TrackRepository
	Pages       repository.PageRepository
	Memberships repository.MembershipRepository
	Lookup      model.Lookup
	Authorizer  authz.Authorizer
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type catalogService struct {
	labels      repository.LabelRepository
	artists     repository.ArtistRepository
	releases    repository.ReleaseRepository
	tracks      repository.TrackRepository
	pages       repository.PageRepository
	memberships repository.MembershipRepository
	lookup      model.Lookup
	az          authz.Authorizer
	now         func() time.Time
}

func NewCatalogService(deps Dependencies) ServiceInterface {
	az := deps.Authorizer
	if az == nil {
		az = authz.PermissionChecker{}
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &catalogService{
		labels:      deps.Labels,
		artists:     deps.Artists,
		releases:    deps.Releases,
		tracks:      deps.Tracks,
		pages:       deps.Pages,
		memberships: deps.Memberships,
		lookup:      deps.Lookup,
		az:          az,
		now:         clock,
	}
}

// requireManager gates every mutating use case.
func (s *catalogService) requireManager(actor *authz.Actor) error {
	if !authz.CanManageCatalog(s.az, actor) {
		return model.ErrPermissionDenied
	}
	return nil
}

func (s *catalogService) privileged(actor *authz.Actor) bool {
	return authz.IsPrivilegedViewer(s.az, actor)
}

// visible rejects an entity the actor may not see with the same NOT_FOUND a missing row gets.
func visible[T model.Listable](s *catalogService, actor *authz.Actor, item T, kind model.EntityKind, key interface{}) error {
	if !model.IsVisible(item.Visibility(), s.now(), s.privileged(actor)) {
		return model.NewNotFound(kind, key)
	}
	return nil
}

func actorID(actor *authz.Actor) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.UserID
}
