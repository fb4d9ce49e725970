package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestIsVisible_TruthTable(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		v          Visibility
		public     bool
		privileged bool
	}{
		{"published yesterday", Visibility{PublishedAt: ptrTime(now.Add(-24 * time.Hour))}, true, true},
		{"scheduled tomorrow", Visibility{PublishedAt: ptrTime(now.Add(24 * time.Hour))}, false, true},
		{"published exactly now", Visibility{PublishedAt: ptrTime(now)}, false, true},
		{"never published", Visibility{}, false, true},
		{
			"published then deleted",
			Visibility{PublishedAt: ptrTime(now.Add(-24 * time.Hour)), DeletedAt: ptrTime(now.Add(-time.Hour))},
			false, true,
		},
		{"deleted and unpublished", Visibility{DeletedAt: ptrTime(now.Add(-time.Hour))}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.public, IsVisible(tt.v, now, false))
			assert.Equal(t, tt.privileged, IsVisible(tt.v, now, true))
		})
	}
}

func TestVisibleListing(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := ptrTime(now.Add(-48 * time.Hour))

	artists := []*Artist{
		{ID: 1, Name: "Zed", PublishedAt: past},
		{ID: 2, Name: "Alpha", PublishedAt: past},
		{ID: 3, Name: "Mid", PublishedAt: past, DeletedAt: ptrTime(now.Add(-2 * time.Hour))},
		{ID: 4, Name: "Beta", PublishedAt: ptrTime(now.Add(time.Hour))},
		{ID: 5, Name: "Old", DeletedAt: ptrTime(now.Add(-10 * time.Hour))},
	}

	ids := func(items []*Artist) []int64 {
		out := make([]int64, 0, len(items))
		for _, a := range items {
			out = append(out, a.ID)
		}
		return out
	}

	public := VisibleListing(artists, now, false)
	assert.Equal(t, []int64{2, 1}, ids(public))

	all := VisibleListing(artists, now, true)
	require.Len(t, all, 5)
	assert.Equal(t, []int64{3, 5, 2, 4, 1}, ids(all))

	// input order untouched
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(artists))
}
