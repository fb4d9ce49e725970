package service

import (
	"context"
	"sort"
	"time"

	"recordlabel-backend/internal/domains/catalog/model"
)

// memStore is an in-memory stand-in for the Postgres repositories.
type memStore struct {
	nextID   int64
	clock    func() time.Time
	labels   map[int64]*model.RecordLabel
	artists  map[int64]*model.Artist
	releases map[int64]*model.Release
	tracks   map[int64]*model.Track
	pages    map[int64]*model.Page
	members  map[string]map[int64][]model.Member
	failNext error
}

func newMemStore(clock func() time.Time) *memStore {
	return &memStore{
		clock:    clock,
		labels:   map[int64]*model.RecordLabel{},
		artists:  map[int64]*model.Artist{},
		releases: map[int64]*model.Release{},
		tracks:   map[int64]*model.Track{},
		pages:    map[int64]*model.Page{},
		members:  map[string]map[int64][]model.Member{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *memStore) setMembers(ms model.Membership, ownerID int64, members []model.Member) {
	if m.members[ms.Table] == nil {
		m.members[ms.Table] = map[int64][]model.Member{}
	}
	m.members[ms.Table][ownerID] = append([]model.Member(nil), members...)
}

func (m *memStore) memberIDs(ms model.Membership, ownerID int64) []int64 {
	return model.MemberIDs(m.members[ms.Table][ownerID])
}

// ownersOf returns the owners whose membership in ms contains memberID.
func (m *memStore) ownersOf(ms model.Membership, memberID int64) []int64 {
	var owners []int64
	for owner, members := range m.members[ms.Table] {
		for _, member := range members {
			if member.ID == memberID {
				owners = append(owners, owner)
			}
		}
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
	return owners
}

func copyOf[T any](v *T) *T {
	c := *v
	return &c
}

// ---- labels ----

type memLabels struct{ *memStore }

func (r memLabels) GetFirst(context.Context) (*model.RecordLabel, error) {
	var first *model.RecordLabel
	for _, l := range r.labels {
		if first == nil || l.ID < first.ID {
			first = l
		}
	}
	if first == nil {
		return nil, model.NewNotFound(model.KindLabel, "first")
	}
	return copyOf(first), nil
}

func (r memLabels) GetByID(_ context.Context, id int64) (*model.RecordLabel, error) {
	if l, ok := r.labels[id]; ok {
		return copyOf(l), nil
	}
	return nil, model.NewNotFound(model.KindLabel, id)
}

func (r memLabels) GetBySlug(_ context.Context, slug string) (*model.RecordLabel, error) {
	for _, l := range r.labels {
		if l.Slug == slug {
			return copyOf(l), nil
		}
	}
	return nil, model.NewNotFound(model.KindLabel, slug)
}

func (r memLabels) Create(_ context.Context, l *model.RecordLabel) (*model.RecordLabel, error) {
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	c := copyOf(l)
	c.ID = r.id()
	c.CreatedAt, c.UpdatedAt = r.clock(), r.clock()
	r.labels[c.ID] = c
	return copyOf(c), nil
}

func (r memLabels) Update(_ context.Context, l *model.RecordLabel) (*model.RecordLabel, error) {
	c := copyOf(l)
	c.UpdatedAt = r.clock()
	r.labels[c.ID] = c
	return copyOf(c), nil
}

// ---- artists ----

type memArtists struct{ *memStore }

func (r memArtists) GetByID(_ context.Context, id int64) (*model.Artist, error) {
	if a, ok := r.artists[id]; ok {
		return copyOf(a), nil
	}
	return nil, model.NewNotFound(model.KindArtist, id)
}

func (r memArtists) GetBySlug(_ context.Context, slug string) (*model.Artist, error) {
	for _, a := range r.artists {
		if a.Slug == slug {
			return copyOf(a), nil
		}
	}
	return nil, model.NewNotFound(model.KindArtist, slug)
}

func (r memArtists) ListByLabel(_ context.Context, labelID int64) ([]*model.Artist, error) {
	var out []*model.Artist
	for _, a := range r.artists {
		if a.LabelID == labelID {
			out = append(out, copyOf(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memArtists) byIDs(ids []int64) []*model.Artist {
	out := make([]*model.Artist, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.artists[id]; ok {
			out = append(out, copyOf(a))
		}
	}
	return out
}

func (r memArtists) ListByRelease(_ context.Context, releaseID int64) ([]*model.Artist, error) {
	return r.byIDs(r.memberIDs(model.ReleaseArtists, releaseID)), nil
}

func (r memArtists) ListByTrack(_ context.Context, trackID int64) ([]*model.Artist, error) {
	return r.byIDs(r.memberIDs(model.TrackArtists, trackID)), nil
}

func (r memArtists) Create(_ context.Context, a *model.Artist) (*model.Artist, error) {
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	c := copyOf(a)
	c.ID = r.id()
	c.CreatedAt, c.UpdatedAt = r.clock(), r.clock()
	r.artists[c.ID] = c
	return copyOf(c), nil
}

func (r memArtists) Update(_ context.Context, a *model.Artist) (*model.Artist, error) {
	c := copyOf(a)
	c.UpdatedAt = r.clock()
	r.artists[c.ID] = c
	return copyOf(c), nil
}

func (r memArtists) SoftDelete(_ context.Context, id int64, at time.Time) (*model.Artist, error) {
	a := r.artists[id]
	a.DeletedAt = &at
	return copyOf(a), nil
}

func (r memArtists) Restore(_ context.Context, id int64) (*model.Artist, error) {
	a := r.artists[id]
	a.DeletedAt = nil
	return copyOf(a), nil
}

// ---- releases ----

type memReleases struct{ *memStore }

func (r memReleases) GetByID(_ context.Context, id int64) (*model.Release, error) {
	if rel, ok := r.releases[id]; ok {
		return copyOf(rel), nil
	}
	return nil, model.NewNotFound(model.KindRelease, id)
}

func (r memReleases) GetBySlug(_ context.Context, slug string) (*model.Release, error) {
	for _, rel := range r.releases {
		if rel.Slug == slug {
			return copyOf(rel), nil
		}
	}
	return nil, model.NewNotFound(model.KindRelease, slug)
}

func (r memReleases) byIDs(ids []int64) []*model.Release {
	out := make([]*model.Release, 0, len(ids))
	for _, id := range ids {
		if rel, ok := r.releases[id]; ok {
			out = append(out, copyOf(rel))
		}
	}
	return out
}

func (r memReleases) ListByArtist(_ context.Context, artistID int64) ([]*model.Release, error) {
	return r.byIDs(r.ownersOf(model.ReleaseArtists, artistID)), nil
}

func (r memReleases) ListByTrack(_ context.Context, trackID int64) ([]*model.Release, error) {
	return r.byIDs(r.memberIDs(model.TrackReleases, trackID)), nil
}

func (r memReleases) NextScheduled(_ context.Context, labelID int64, now time.Time) (*model.Release, error) {
	var next *model.Release
	for _, rel := range r.releases {
		if rel.LabelID != labelID || rel.DeletedAt != nil || rel.ReleaseDate == nil || !rel.ReleaseDate.After(now) {
			continue
		}
		if next == nil || rel.ReleaseDate.Before(*next.ReleaseDate) {
			next = rel
		}
	}
	if next == nil {
		return nil, nil
	}
	return copyOf(next), nil
}

func (r memReleases) Create(_ context.Context, rel *model.Release, artists []model.Member) (*model.Release, error) {
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	c := copyOf(rel)
	c.ID = r.id()
	c.CreatedAt, c.UpdatedAt = r.clock(), r.clock()
	r.releases[c.ID] = c
	r.setMembers(model.ReleaseArtists, c.ID, artists)
	return copyOf(c), nil
}

func (r memReleases) Update(_ context.Context, rel *model.Release, artists []model.Member) (*model.Release, error) {
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	c := copyOf(rel)
	c.UpdatedAt = r.clock()
	r.releases[c.ID] = c
	r.setMembers(model.ReleaseArtists, c.ID, artists)
	return copyOf(c), nil
}

func (r memReleases) SoftDelete(_ context.Context, id int64, at time.Time) (*model.Release, error) {
	rel := r.releases[id]
	rel.DeletedAt = &at
	return copyOf(rel), nil
}

func (r memReleases) Restore(_ context.Context, id int64) (*model.Release, error) {
	rel := r.releases[id]
	rel.DeletedAt = nil
	return copyOf(rel), nil
}

// ---- tracks ----

type memTracks struct{ *memStore }

func (r memTracks) GetByID(_ context.Context, id int64) (*model.Track, error) {
	if t, ok := r.tracks[id]; ok {
		return copyOf(t), nil
	}
	return nil, model.NewNotFound(model.KindTrack, id)
}

func (r memTracks) GetBySlug(_ context.Context, slug string) (*model.Track, error) {
	for _, t := range r.tracks {
		if t.Slug == slug {
			return copyOf(t), nil
		}
	}
	return nil, model.NewNotFound(model.KindTrack, slug)
}

func (r memTracks) ListByRelease(_ context.Context, releaseID int64) ([]*model.Track, error) {
	var out []*model.Track
	for _, id := range r.ownersOf(model.TrackReleases, releaseID) {
		out = append(out, copyOf(r.tracks[id]))
	}
	return out, nil
}

func (r memTracks) Create(_ context.Context, t *model.Track, artists, releases []model.Member) (*model.Track, error) {
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	c := copyOf(t)
	c.ID = r.id()
	c.CreatedAt, c.UpdatedAt = r.clock(), r.clock()
	r.tracks[c.ID] = c
	r.setMembers(model.TrackArtists, c.ID, artists)
	r.setMembers(model.TrackReleases, c.ID, releases)
	return copyOf(c), nil
}

func (r memTracks) Update(_ context.Context, t *model.Track, artists, releases []model.Member) (*model.Track, error) {
	c := copyOf(t)
	c.UpdatedAt = r.clock()
	r.tracks[c.ID] = c
	r.setMembers(model.TrackArtists, c.ID, artists)
	r.setMembers(model.TrackReleases, c.ID, releases)
	return copyOf(c), nil
}

func (r memTracks) SoftDelete(_ context.Context, id int64, at time.Time) (*model.Track, error) {
	t := r.tracks[id]
	t.DeletedAt = &at
	return copyOf(t), nil
}

func (r memTracks) Restore(_ context.Context, id int64) (*model.Track, error) {
	t := r.tracks[id]
	t.DeletedAt = nil
	return copyOf(t), nil
}

// ---- pages ----

type memPages struct{ *memStore }

func (r memPages) GetByID(_ context.Context, id int64) (*model.Page, error) {
	if p, ok := r.pages[id]; ok {
		return copyOf(p), nil
	}
	return nil, model.NewNotFound(model.KindPage, id)
}

func (r memPages) GetBySlug(_ context.Context, slug string) (*model.Page, error) {
	for _, p := range r.pages {
		if p.Slug == slug {
			return copyOf(p), nil
		}
	}
	return nil, model.NewNotFound(model.KindPage, slug)
}

func (r memPages) ListByLabel(_ context.Context, labelID int64) ([]*model.Page, error) {
	var out []*model.Page
	for _, p := range r.pages {
		if p.LabelID == labelID {
			out = append(out, copyOf(p))
		}
	}
	return out, nil
}

func (r memPages) Create(_ context.Context, p *model.Page) (*model.Page, error) {
	c := copyOf(p)
	c.ID = r.id()
	c.CreatedAt, c.UpdatedAt = r.clock(), r.clock()
	r.pages[c.ID] = c
	return copyOf(c), nil
}

func (r memPages) Update(_ context.Context, p *model.Page) (*model.Page, error) {
	c := copyOf(p)
	c.UpdatedAt = r.clock()
	r.pages[c.ID] = c
	return copyOf(c), nil
}

func (r memPages) SoftDelete(_ context.Context, id int64, at time.Time) (*model.Page, error) {
	p := r.pages[id]
	p.DeletedAt = &at
	return copyOf(p), nil
}

func (r memPages) Restore(_ context.Context, id int64) (*model.Page, error) {
	p := r.pages[id]
	p.DeletedAt = nil
	return copyOf(p), nil
}

// ---- lookup ----

type memLookup struct{ *memStore }

func (l memLookup) Exists(_ context.Context, kind model.EntityKind, id int64) (bool, error) {
	switch kind {
	case model.KindLabel:
		_, ok := l.labels[id]
		return ok, nil
	case model.KindArtist:
		_, ok := l.artists[id]
		return ok, nil
	case model.KindRelease:
		_, ok := l.releases[id]
		return ok, nil
	case model.KindTrack:
		_, ok := l.tracks[id]
		return ok, nil
	case model.KindPage:
		_, ok := l.pages[id]
		return ok, nil
	}
	return false, nil
}

func (l memLookup) SlugTaken(_ context.Context, kind model.EntityKind, slug string, excludeID int64) (bool, error) {
	taken := func(id int64, s string) bool { return id != excludeID && s == slug }
	switch kind {
	case model.KindLabel:
		for _, v := range l.labels {
			if taken(v.ID, v.Slug) {
				return true, nil
			}
		}
	case model.KindArtist:
		for _, v := range l.artists {
			if taken(v.ID, v.Slug) {
				return true, nil
			}
		}
	case model.KindRelease:
		for _, v := range l.releases {
			if taken(v.ID, v.Slug) {
				return true, nil
			}
		}
	case model.KindTrack:
		for _, v := range l.tracks {
			if taken(v.ID, v.Slug) {
				return true, nil
			}
		}
	case model.KindPage:
		for _, v := range l.pages {
			if taken(v.ID, v.Slug) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (l memLookup) CatalogueNumberTaken(_ context.Context, labelID int64, number string, excludeID int64) (bool, error) {
	for _, r := range l.releases {
		if r.ID != excludeID && r.LabelID == labelID && r.CatalogueNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (l memLookup) TrackNumberTaken(_ context.Context, releaseID int64, number int, excludeID int64) (bool, error) {
	for _, t := range l.tracks {
		if t.ID != excludeID && t.ReleaseID == releaseID && t.TrackNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (l memLookup) ISRCTaken(_ context.Context, isrc string, excludeID int64) (bool, error) {
	for _, t := range l.tracks {
		if t.ID != excludeID && t.ISRCCode != nil && *t.ISRCCode == isrc {
			return true, nil
		}
	}
	return false, nil
}

// ---- memberships ----

type memMemberships struct{ *memStore }

// Replace mirrors the foreign-key rejection of a member that does not exist.
func (r memMemberships) Replace(_ context.Context, ms model.Membership, ownerID int64, members []model.Member) error {
	if len(members) == 0 {
		return model.NewValidationError(ms.MemberField, ms.EmptyMsg)
	}
	for _, member := range members {
		if _, ok := r.artists[member.ID]; ms.MemberKind == model.KindArtist && !ok {
			return model.NewValidationError(ms.MemberField, "Artist does not exist.")
		}
	}
	r.setMembers(ms, ownerID, members)
	return nil
}

func (r memMemberships) MemberIDs(_ context.Context, ms model.Membership, ownerID int64) ([]int64, error) {
	return r.memberIDs(ms, ownerID), nil
}
