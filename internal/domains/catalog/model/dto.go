package model

import (
	"strings"
	"time"
)

// ============================================
// USE-CASE INPUTS
// ============================================
// Inputs carry what a form submits. The service trims them, derives the slug
// from Name and copies the result onto the entity before validating.

type LabelInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ISRCBase    string `json:"isrc_base"`
}

type ArtistInput struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	LabelID      int64      `json:"label_id"`
	PrimaryImage *string    `json:"primary_image"`
	PublishedAt  *time.Time `json:"published_at"`
}

type ReleaseInput struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	CatalogueNumber string     `json:"catalogue_number"`
	LabelID         int64      `json:"label_id"`
	PrimaryImage    *string    `json:"primary_image"`
	ReleaseDate     *time.Time `json:"release_date"`
	PublishedAt     *time.Time `json:"published_at"`

	// ArtistIDs is the full desired membership in display order.
	// PrimaryArtistID defaults to the first of them.
	ArtistIDs       []int64 `json:"artist_ids"`
	PrimaryArtistID int64   `json:"primary_artist_id"`
}

type TrackInput struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	PrimaryArtistID int64      `json:"primary_artist_id"`
	ReleaseID       int64      `json:"release_id"`
	TrackNumber     int        `json:"track_number"`
	ISRCCode        *string    `json:"isrc_code"`
	BPM             *int       `json:"bpm"`
	PrimaryImage    *string    `json:"primary_image"`
	PublishedAt     *time.Time `json:"published_at"`

	// The primary artist and the home release are always members, added first when missing.
	ArtistIDs  []int64 `json:"artist_ids"`
	ReleaseIDs []int64 `json:"release_ids"`
}

// ArtistsInput replaces an artist membership on its own. PrimaryArtistID is
// ignored for tracks, whose primary artist lives on the track row.
type ArtistsInput struct {
	ArtistIDs       []int64 `json:"artist_ids"`
	PrimaryArtistID int64   `json:"primary_artist_id"`
}

type PageInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	LabelID     int64      `json:"label_id"`
	PublishedAt *time.Time `json:"published_at"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Apply copies the input onto l. Slug is left to the caller.
func (in LabelInput) Apply(l *RecordLabel) {
	l.Name = strings.TrimSpace(in.Name)
	l.Description = strings.TrimSpace(in.Description)
	l.ISRCBase = strings.ToUpper(strings.TrimSpace(in.ISRCBase))
}

func (in ArtistInput) Apply(a *Artist) {
	a.Name = strings.TrimSpace(in.Name)
	a.Description = strings.TrimSpace(in.Description)
	a.LabelID = in.LabelID
	a.PrimaryImage = trimPtr(in.PrimaryImage)
	a.PublishedAt = in.PublishedAt
}

func (in ReleaseInput) Apply(r *Release) {
	r.Name = strings.TrimSpace(in.Name)
	r.Description = strings.TrimSpace(in.Description)
	r.CatalogueNumber = strings.TrimSpace(in.CatalogueNumber)
	r.LabelID = in.LabelID
	r.PrimaryImage = trimPtr(in.PrimaryImage)
	r.ReleaseDate = in.ReleaseDate
	r.PublishedAt = in.PublishedAt
}

func (in TrackInput) Apply(t *Track) {
	t.Name = strings.TrimSpace(in.Name)
	t.Description = strings.TrimSpace(in.Description)
	t.PrimaryArtistID = in.PrimaryArtistID
	t.ReleaseID = in.ReleaseID
	t.TrackNumber = in.TrackNumber
	t.ISRCCode = trimPtr(in.ISRCCode)
	if t.ISRCCode != nil {
		isrc := strings.ToUpper(*t.ISRCCode)
		t.ISRCCode = &isrc
	}
	t.BPM = in.BPM
	t.PrimaryImage = trimPtr(in.PrimaryImage)
	t.PublishedAt = in.PublishedAt
}

func (in PageInput) Apply(p *Page) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.Body = in.Body
	p.LabelID = in.LabelID
	p.PublishedAt = in.PublishedAt
}

// ReleaseMembers normalizes the release's artist list.
func (in ReleaseInput) ReleaseMembers() ([]Member, error) {
	return NormalizeMembers(ReleaseArtists, in.ArtistIDs, in.PrimaryArtistID)
}

// TrackMembers normalizes both track memberships. An empty artist list is
// rejected before the primary artist is merged in.
func (in TrackInput) TrackMembers() (artists, releases []Member, err error) {
	if len(in.ArtistIDs) == 0 {
		return nil, nil, NewValidationError(TrackArtists.MemberField, TrackArtists.EmptyMsg)
	}
	artists, err = NormalizeMembers(TrackArtists, withLeading(in.PrimaryArtistID, in.ArtistIDs), in.PrimaryArtistID)
	if err != nil {
		return nil, nil, err
	}
	releases, err = NormalizeMembers(TrackReleases, withLeading(in.ReleaseID, in.ReleaseIDs), in.ReleaseID)
	if err != nil {
		return nil, nil, err
	}
	return artists, releases, nil
}

// withLeading puts id first unless it is already in ids.
func withLeading(id int64, ids []int64) []int64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append([]int64{id}, ids...)
}
