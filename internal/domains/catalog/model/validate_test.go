package model

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup answers validator queries from in-memory slices.
type fakeLookup struct {
	ids      map[EntityKind][]int64
	slugs    map[EntityKind]map[string]int64
	releases []*Release
	tracks   []*Track
	err      error
	calls    int
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		ids:   map[EntityKind][]int64{},
		slugs: map[EntityKind]map[string]int64{},
	}
}

func (f *fakeLookup) Exists(_ context.Context, kind EntityKind, id int64) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	for _, existing := range f.ids[kind] {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLookup) SlugTaken(_ context.Context, kind EntityKind, slug string, excludeID int64) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	owner, ok := f.slugs[kind][slug]
	return ok && owner != excludeID, nil
}

func (f *fakeLookup) CatalogueNumberTaken(_ context.Context, labelID int64, number string, excludeID int64) (bool, error) {
	f.calls++
	for _, r := range f.releases {
		if r.LabelID == labelID && r.CatalogueNumber == number && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLookup) TrackNumberTaken(_ context.Context, releaseID int64, number int, excludeID int64) (bool, error) {
	f.calls++
	for _, t := range f.tracks {
		if t.ReleaseID == releaseID && t.TrackNumber == number && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLookup) ISRCTaken(_ context.Context, isrc string, excludeID int64) (bool, error) {
	f.calls++
	for _, t := range f.tracks {
		if t.ISRCCode != nil && *t.ISRCCode == isrc && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLookup) addSlug(kind EntityKind, slug string, id int64) {
	if f.slugs[kind] == nil {
		f.slugs[kind] = map[string]int64{}
	}
	f.slugs[kind][slug] = id
}

func strPtr(s string) *string { return &s }

func TestValidateRelease_CatalogueNumberScopedToLabel(t *testing.T) {
	ctx := context.Background()
	lk := newFakeLookup()
	lk.ids[KindLabel] = []int64{1, 2}
	lk.releases = []*Release{{ID: 10, LabelID: 1, CatalogueNumber: "CAT001"}}

	sameLabel := &Release{Name: "Second", Slug: "second", LabelID: 1, CatalogueNumber: "CAT001"}
	err := ValidateRelease(ctx, sameLabel, lk)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Equal(t, "catalogue_number", FieldOf(err))
	assert.Equal(t, "Catalogue number must be unique.", GetErrorMessage(err))

	otherLabel := &Release{Name: "Second", Slug: "second", LabelID: 2, CatalogueNumber: "CAT001"}
	assert.NoError(t, ValidateRelease(ctx, otherLabel, lk))

	// updating the original row does not collide with itself
	self := &Release{ID: 10, Name: "First", Slug: "first", LabelID: 1, CatalogueNumber: "CAT001"}
	assert.NoError(t, ValidateRelease(ctx, self, lk))
}

func TestValidateRelease_Order(t *testing.T) {
	ctx := context.Background()
	lk := newFakeLookup()
	lk.addSlug(KindRelease, "taken", 5)

	tests := []struct {
		name    string
		release Release
		field   string
		message string
	}{
		{"name required", Release{Slug: "x", LabelID: 1}, "name", "Name is required."},
		{"blank name", Release{Name: "   ", Slug: "x", LabelID: 1}, "name", "Name is required."},
		{"label required", Release{Name: "n", Slug: "n"}, "label_id", "Record label is required."},
		{
			"name too long beats slug conflict",
			Release{Name: strings.Repeat("a", 256), Slug: "taken", LabelID: 1},
			"name", "Name must be less than 255 characters.",
		},
		{"slug conflict beats missing label", Release{Name: "Taken", Slug: "taken", LabelID: 99}, "slug", "Slug must be unique."},
		{"missing label", Release{Name: "Fresh", Slug: "fresh", LabelID: 99}, "label_id", "Record Label with id 99 does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelease(ctx, &tt.release, lk)
			require.Error(t, err)
			assert.Equal(t, tt.field, FieldOf(err))
			assert.Equal(t, tt.message, GetErrorMessage(err))
		})
	}
}

func TestValidateTrack_ISRC(t *testing.T) {
	ctx := context.Background()
	base := func() *Track {
		return &Track{Name: "Song", Slug: "song", PrimaryArtistID: 1, ReleaseID: 1, TrackNumber: 1}
	}

	t.Run("13 characters rejected before any lookup", func(t *testing.T) {
		lk := newFakeLookup()
		tr := base()
		tr.ISRCCode = strPtr("USABC12345678")

		err := ValidateTrack(ctx, tr, lk)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "isrc_code", FieldOf(err))
		assert.Equal(t, "ISRC code must be 12 characters.", GetErrorMessage(err))
		assert.Zero(t, lk.calls)
	})

	t.Run("colliding 12 characters is a conflict", func(t *testing.T) {
		lk := newFakeLookup()
		lk.ids[KindArtist] = []int64{1}
		lk.ids[KindRelease] = []int64{1}
		lk.tracks = []*Track{{ID: 7, ReleaseID: 2, TrackNumber: 1, ISRCCode: strPtr("USABC1234567")}}
		tr := base()
		tr.ISRCCode = strPtr("USABC1234567")

		err := ValidateTrack(ctx, tr, lk)
		require.Error(t, err)
		assert.True(t, IsConflict(err))
		assert.Equal(t, "isrc_code", FieldOf(err))
	})

	t.Run("unique 12 characters validates", func(t *testing.T) {
		lk := newFakeLookup()
		lk.ids[KindArtist] = []int64{1}
		lk.ids[KindRelease] = []int64{1}
		tr := base()
		tr.ISRCCode = strPtr("USABC7654321")

		assert.NoError(t, ValidateTrack(ctx, tr, lk))
	})
}

func TestValidateTrack_Rules(t *testing.T) {
	ctx := context.Background()
	lk := newFakeLookup()
	lk.ids[KindArtist] = []int64{1}
	lk.ids[KindRelease] = []int64{1}
	lk.tracks = []*Track{{ID: 3, ReleaseID: 1, TrackNumber: 2}}

	bpm := func(v int) *int { return &v }

	tests := []struct {
		name  string
		edit  func(*Track)
		field string
	}{
		{"track number zero", func(t *Track) { t.TrackNumber = 0 }, "track_number"},
		{"track number negative", func(t *Track) { t.TrackNumber = -1 }, "track_number"},
		{"bpm zero", func(t *Track) { t.BPM = bpm(0) }, "bpm"},
		{"bpm too fast", func(t *Track) { t.BPM = bpm(1000) }, "bpm"},
		{"track number taken on release", func(t *Track) { t.TrackNumber = 2 }, "track_number"},
		{"missing artist", func(t *Track) { t.PrimaryArtistID = 42 }, "primary_artist_id"},
		{"missing release", func(t *Track) { t.ReleaseID = 42 }, "release_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Track{Name: "Song", Slug: "song", PrimaryArtistID: 1, ReleaseID: 1, TrackNumber: 1, BPM: bpm(120)}
			tt.edit(tr)
			err := ValidateTrack(ctx, tr, lk)
			require.Error(t, err)
			assert.Equal(t, tt.field, FieldOf(err))
		})
	}
}

func TestValidateArtist(t *testing.T) {
	ctx := context.Background()
	lk := newFakeLookup()
	lk.ids[KindLabel] = []int64{1}
	lk.addSlug(KindArtist, "massive-attack", 4)

	assert.NoError(t, ValidateArtist(ctx, &Artist{Name: "Portishead", Slug: "portishead", LabelID: 1}, lk))
	assert.NoError(t, ValidateArtist(ctx, &Artist{ID: 4, Name: "Massive Attack", Slug: "massive-attack", LabelID: 1}, lk))

	err := ValidateArtist(ctx, &Artist{Name: "Massive Attack", Slug: "massive-attack", LabelID: 1}, lk)
	assert.True(t, IsConflict(err))

	err = ValidateArtist(ctx, &Artist{Name: "!!!", Slug: "", LabelID: 1}, lk)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "slug", FieldOf(err))
}

func TestValidateLabel(t *testing.T) {
	ctx := context.Background()
	lk := newFakeLookup()

	assert.NoError(t, ValidateLabel(ctx, &RecordLabel{Name: "Warp", Slug: "warp", ISRCBase: "GBWRP"}, lk))

	err := ValidateLabel(ctx, &RecordLabel{Name: "Warp", Slug: "warp", ISRCBase: "GB-WRP"}, lk)
	assert.Equal(t, "isrc_base", FieldOf(err))

	err = ValidateLabel(ctx, &RecordLabel{Name: "Warp", Slug: "warp", ISRCBase: "GBWRP12345678"}, lk)
	assert.Equal(t, "isrc_base", FieldOf(err))
}

func TestValidatePage(t *testing.T) {
	ctx := context.Background()
	lk := newFakeLookup()
	lk.ids[KindLabel] = []int64{1}

	assert.NoError(t, ValidatePage(ctx, &Page{Name: "About", Slug: "about", LabelID: 1, Body: "# About"}, lk))

	err := ValidatePage(ctx, &Page{Name: "About", Slug: "about", LabelID: 1, Description: strings.Repeat("x", 256)}, lk)
	assert.Equal(t, "description", FieldOf(err))
}

func TestValidate_LookupFailureIsPersistenceError(t *testing.T) {
	lk := newFakeLookup()
	lk.err = errors.New("connection reset")

	err := ValidateArtist(context.Background(), &Artist{Name: "A", Slug: "a", LabelID: 1}, lk)
	require.Error(t, err)
	assert.True(t, IsPersistence(err))
	assert.ErrorContains(t, err, "connection reset")
}
