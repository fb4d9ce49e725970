package model

import "time"

// EntityKind names a catalog entity type. Used for not-found errors and slug scopes.
type EntityKind string

const (
	KindLabel   EntityKind = "record_label"
	KindArtist  EntityKind = "artist"
	KindRelease EntityKind = "release"
	KindTrack   EntityKind = "track"
	KindPage    EntityKind = "page"
)

// Title returns the display name used in messages ("Record Label", "Artist", ...).
func (k EntityKind) Title() string {
	switch k {
	case KindLabel:
		return "Record Label"
	case KindArtist:
		return "Artist"
	case KindRelease:
		return "Release"
	case KindTrack:
		return "Track"
	case KindPage:
		return "Page"
	default:
		return string(k)
	}
}

type RecordLabel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ISRCBase    string    `json:"isrc_base"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Artist struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	LabelID      int64      `json:"label_id"`
	PrimaryImage *string    `json:"primary_image,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (a Artist) Visibility() Visibility {
	return Visibility{PublishedAt: a.PublishedAt, DeletedAt: a.DeletedAt}
}

func (a Artist) SortName() string { return a.Name }

type Release struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	CatalogueNumber string     `json:"catalogue_number"`
	LabelID         int64      `json:"label_id"`
	PrimaryImage    *string    `json:"primary_image,omitempty"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (r Release) Visibility() Visibility {
	return Visibility{PublishedAt: r.PublishedAt, DeletedAt: r.DeletedAt}
}

func (r Release) SortName() string { return r.Name }

type Track struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	PrimaryArtistID int64      `json:"primary_artist_id"`
	ReleaseID       int64      `json:"release_id"`
	TrackNumber     int        `json:"track_number"`
	ISRCCode        *string    `json:"isrc_code,omitempty"`
	BPM             *int       `json:"bpm,omitempty"`
	PrimaryImage    *string    `json:"primary_image,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (t Track) Visibility() Visibility {
	return Visibility{PublishedAt: t.PublishedAt, DeletedAt: t.DeletedAt}
}

func (t Track) SortName() string { return t.Name }

// Page is a label-owned markdown page. Body is stored raw.
type Page struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	LabelID     int64      `json:"label_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p Page) Visibility() Visibility {
	return Visibility{PublishedAt: p.PublishedAt, DeletedAt: p.DeletedAt}
}

func (p Page) SortName() string { return p.Name }

// ReleaseWithArtists is a release plus its ordered artist membership.
type ReleaseWithArtists struct {
	Release *Release  `json:"release"`
	Artists []*Artist `json:"artists"`
}

// TrackWithRelations is a track plus its contributing artists and the releases it appears on.
type TrackWithRelations struct {
	Track    *Track     `json:"track"`
	Artists  []*Artist  `json:"artists"`
	Releases []*Release `json:"releases"`
}
