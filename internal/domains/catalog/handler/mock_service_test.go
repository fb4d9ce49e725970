package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/shared/authz"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetLabel(ctx context.Context) (*model.RecordLabel, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).(*model.RecordLabel)
	return out, ret.Error(1)
}

func (m *mockService) GetLabelBySlug(ctx context.Context, slug string) (*model.RecordLabel, error) {
	ret := m.Called(ctx, slug)
	out, _ := ret.Get(0).(*model.RecordLabel)
	return out, ret.Error(1)
}

func (m *mockService) CreateLabel(ctx context.Context, actor *authz.Actor, in model.LabelInput) (*model.RecordLabel, error) {
	ret := m.Called(ctx, actor, in)
	out, _ := ret.Get(0).(*model.RecordLabel)
	return out, ret.Error(1)
}

func (m *mockService) UpdateLabel(ctx context.Context, actor *authz.Actor, id int64, in model.LabelInput) (*model.RecordLabel, error) {
	ret := m.Called(ctx, actor, id, in)
	out, _ := ret.Get(0).(*model.RecordLabel)
	return out, ret.Error(1)
}

func (m *mockService) ListArtists(ctx context.Context, actor *authz.Actor, labelID int64) ([]*model.Artist, error) {
	ret := m.Called(ctx, actor, labelID)
	out, _ := ret.Get(0).([]*model.Artist)
	return out, ret.Error(1)
}

func (m *mockService) GetArtist(ctx context.Context, actor *authz.Actor, slug string) (*model.Artist, error) {
	ret := m.Called(ctx, actor, slug)
	out, _ := ret.Get(0).(*model.Artist)
	return out, ret.Error(1)
}

func (m *mockService) CreateArtist(ctx context.Context, actor *authz.Actor, in model.ArtistInput) (*model.Artist, error) {
	ret := m.Called(ctx, actor, in)
	out, _ := ret.Get(0).(*model.Artist)
	return out, ret.Error(1)
}

func (m *mockService) UpdateArtist(ctx context.Context, actor *authz.Actor, id int64, in model.ArtistInput) (*model.Artist, error) {
	ret := m.Called(ctx, actor, id, in)
	out, _ := ret.Get(0).(*model.Artist)
	return out, ret.Error(1)
}

func (m *mockService) DeleteArtist(ctx context.Context, actor *authz.Actor, id int64) (*model.Artist, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Artist)
	return out, ret.Error(1)
}

func (m *mockService) RestoreArtist(ctx context.Context, actor *authz.Actor, id int64) (*model.Artist, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Artist)
	return out, ret.Error(1)
}

func (m *mockService) ListReleases(ctx context.Context, actor *authz.Actor, artistSlug string) ([]*model.Release, error) {
	ret := m.Called(ctx, actor, artistSlug)
	out, _ := ret.Get(0).([]*model.Release)
	return out, ret.Error(1)
}

func (m *mockService) GetNextScheduledRelease(ctx context.Context, actor *authz.Actor, labelID int64) (*model.Release, error) {
	ret := m.Called(ctx, actor, labelID)
	out, _ := ret.Get(0).(*model.Release)
	return out, ret.Error(1)
}

func (m *mockService) GetRelease(ctx context.Context, actor *authz.Actor, slug string) (*model.ReleaseWithArtists, error) {
	ret := m.Called(ctx, actor, slug)
	out, _ := ret.Get(0).(*model.ReleaseWithArtists)
	return out, ret.Error(1)
}

func (m *mockService) CreateRelease(ctx context.Context, actor *authz.Actor, in model.ReleaseInput) (*model.ReleaseWithArtists, error) {
	ret := m.Called(ctx, actor, in)
	out, _ := ret.Get(0).(*model.ReleaseWithArtists)
	return out, ret.Error(1)
}

func (m *mockService) UpdateRelease(ctx context.Context, actor *authz.Actor, id int64, in model.ReleaseInput) (*model.ReleaseWithArtists, error) {
	ret := m.Called(ctx, actor, id, in)
	out, _ := ret.Get(0).(*model.ReleaseWithArtists)
	return out, ret.Error(1)
}

func (m *mockService) DeleteRelease(ctx context.Context, actor *authz.Actor, id int64) (*model.Release, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Release)
	return out, ret.Error(1)
}

func (m *mockService) RestoreRelease(ctx context.Context, actor *authz.Actor, id int64) (*model.Release, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Release)
	return out, ret.Error(1)
}

func (m *mockService) ListTracks(ctx context.Context, actor *authz.Actor, releaseSlug string) ([]*model.Track, error) {
	ret := m.Called(ctx, actor, releaseSlug)
	out, _ := ret.Get(0).([]*model.Track)
	return out, ret.Error(1)
}

func (m *mockService) GetTrack(ctx context.Context, actor *authz.Actor, slug string) (*model.TrackWithRelations, error) {
	ret := m.Called(ctx, actor, slug)
	out, _ := ret.Get(0).(*model.TrackWithRelations)
	return out, ret.Error(1)
}

func (m *mockService) CreateTrack(ctx context.Context, actor *authz.Actor, in model.TrackInput) (*model.TrackWithRelations, error) {
	ret := m.Called(ctx, actor, in)
	out, _ := ret.Get(0).(*model.TrackWithRelations)
	return out, ret.Error(1)
}

func (m *mockService) UpdateTrack(ctx context.Context, actor *authz.Actor, id int64, in model.TrackInput) (*model.TrackWithRelations, error) {
	ret := m.Called(ctx, actor, id, in)
	out, _ := ret.Get(0).(*model.TrackWithRelations)
	return out, ret.Error(1)
}

func (m *mockService) DeleteTrack(ctx context.Context, actor *authz.Actor, id int64) (*model.Track, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Track)
	return out, ret.Error(1)
}

func (m *mockService) RestoreTrack(ctx context.Context, actor *authz.Actor, id int64) (*model.Track, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Track)
	return out, ret.Error(1)
}

func (m *mockService) ListPages(ctx context.Context, actor *authz.Actor, labelID int64) ([]*model.Page, error) {
	ret := m.Called(ctx, actor, labelID)
	out, _ := ret.Get(0).([]*model.Page)
	return out, ret.Error(1)
}

func (m *mockService) GetPage(ctx context.Context, actor *authz.Actor, slug string) (*model.Page, error) {
	ret := m.Called(ctx, actor, slug)
	out, _ := ret.Get(0).(*model.Page)
	return out, ret.Error(1)
}

func (m *mockService) CreatePage(ctx context.Context, actor *authz.Actor, in model.PageInput) (*model.Page, error) {
	ret := m.Called(ctx, actor, in)
	out, _ := ret.Get(0).(*model.Page)
	return out, ret.Error(1)
}

func (m *mockService) UpdatePage(ctx context.Context, actor *authz.Actor, id int64, in model.PageInput) (*model.Page, error) {
	ret := m.Called(ctx, actor, id, in)
	out, _ := ret.Get(0).(*model.Page)
	return out, ret.Error(1)
}

func (m *mockService) DeletePage(ctx context.Context, actor *authz.Actor, id int64) (*model.Page, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Page)
	return out, ret.Error(1)
}

func (m *mockService) RestorePage(ctx context.Context, actor *authz.Actor, id int64) (*model.Page, error) {
	ret := m.Called(ctx, actor, id)
	out, _ := ret.Get(0).(*model.Page)
	return out, ret.Error(1)
}

func (m *mockService) SetReleaseArtists(ctx context.Context, actor *authz.Actor, id int64, artistIDs []int64, primaryID int64) (*model.ReleaseWithArtists, error) {
	ret := m.Called(ctx, actor, id, artistIDs, primaryID)
	out, _ := ret.Get(0).(*model.ReleaseWithArtists)
	return out, ret.Error(1)
}

func (m *mockService) SetTrackArtists(ctx context.Context, actor *authz.Actor, id int64, artistIDs []int64) (*model.TrackWithRelations, error) {
	ret := m.Called(ctx, actor, id, artistIDs)
	out, _ := ret.Get(0).(*model.TrackWithRelations)
	return out, ret.Error(1)
}
