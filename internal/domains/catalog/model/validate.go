package model

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxNameLength        = 255
	MaxSlugLength        = 255
	MaxCatalogueLength   = 255
	MaxImagePathLength   = 255
	MaxDescriptionLength = 10000
	MaxPageSummaryLength = 255
	ISRCLength           = 12
	MaxISRCBaseLength    = 12
	MinBPM               = 1
	MaxBPM               = 999
)

// Lookup is the read side of the persistence port the validators need.
// Every *Taken method ignores the row whose id equals excludeID.
type Lookup interface {
	Exists(ctx context.Context, kind EntityKind, id int64) (bool, error)
	SlugTaken(ctx context.Context, kind EntityKind, slug string, excludeID int64) (bool, error)
	CatalogueNumberTaken(ctx context.Context, labelID int64, number string, excludeID int64) (bool, error)
	TrackNumberTaken(ctx context.Context, releaseID int64, number int, excludeID int64) (bool, error)
	ISRCTaken(ctx context.Context, isrc string, excludeID int64) (bool, error)
}

// fieldCheck is one local rule evaluation. Checks run in slice order and stop at
// the first failure, so callers list required, then length, then format checks.
type fieldCheck struct {
	field string
	value interface{}
	rules []validation.Rule
}

func check(field string, value interface{}, rules ...validation.Rule) fieldCheck {
	return fieldCheck{field: field, value: value, rules: rules}
}

func runChecks(checks ...fieldCheck) error {
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return NewValidationError(c.field, err.Error())
		}
	}
	return nil
}

// uniqueCheck and refCheck are the storage round-trips, run after every local check passed.
type uniqueCheck struct {
	field   string
	value   interface{}
	message string
	taken   func(ctx context.Context) (bool, error)
}

type refCheck struct {
	field string
	kind  EntityKind
	id    int64
}

func runStorageChecks(ctx context.Context, lk Lookup, unique []uniqueCheck, refs []refCheck) error {
	for _, u := range unique {
		taken, err := u.taken(ctx)
		if err != nil {
			return NewPersistenceError("check "+u.field, err)
		}
		if taken {
			return NewConflict(u.field, u.value, u.message)
		}
	}
	for _, r := range refs {
		ok, err := lk.Exists(ctx, r.kind, r.id)
		if err != nil {
			return NewPersistenceError("check "+r.field, err)
		}
		if !ok {
			return NewValidationError(r.field, fmt.Sprintf("%s with id %d does not exist.", r.kind.Title(), r.id))
		}
	}
	return nil
}

func nameRequired(name string) fieldCheck {
	return check("name", strings.TrimSpace(name), validation.Required.Error("Name is required."))
}

func slugRequired(slug string) fieldCheck {
	return check("slug", slug, validation.Required.Error("Name must contain at least one letter or digit."))
}

func maxLen(field string, value interface{}, max int, message string) fieldCheck {
	return check(field, value, validation.RuneLength(0, max).Error(message))
}

func slugUnique(lk Lookup, kind EntityKind, slug string, selfID int64) uniqueCheck {
	return uniqueCheck{
		field:   "slug",
		value:   slug,
		message: "Slug must be unique.",
		taken: func(ctx context.Context) (bool, error) {
			return lk.SlugTaken(ctx, kind, slug, selfID)
		},
	}
}

// ValidateLabel checks a record label before it is written.
func ValidateLabel(ctx context.Context, l *RecordLabel, lk Lookup) error {
	if err := runChecks(
		nameRequired(l.Name),
		slugRequired(l.Slug),
		check("isrc_base", l.ISRCBase, validation.Required.Error("ISRC base is required.")),
		maxLen("name", l.Name, MaxNameLength, "Name must be less than 255 characters."),
		maxLen("slug", l.Slug, MaxSlugLength, "Slug must be less than 255 characters."),
		maxLen("description", l.Description, MaxDescriptionLength, "Description is too long."),
		maxLen("isrc_base", l.ISRCBase, MaxISRCBaseLength, "ISRC base must be at most 12 characters."),
		check("isrc_base", l.ISRCBase, is.Alphanumeric.Error("ISRC base must be alphanumeric.")),
	); err != nil {
		return err
	}

	return runStorageChecks(ctx, lk,
		[]uniqueCheck{slugUnique(lk, KindLabel, l.Slug, l.ID)},
		nil,
	)
}

// ValidateArtist checks an artist before it is written.
func ValidateArtist(ctx context.Context, a *Artist, lk Lookup) error {
	if err := runChecks(
		nameRequired(a.Name),
		slugRequired(a.Slug),
		check("label_id", a.LabelID, validation.Required.Error("Record label is required.")),
		maxLen("name", a.Name, MaxNameLength, "Name must be less than 255 characters."),
		maxLen("slug", a.Slug, MaxSlugLength, "Slug must be less than 255 characters."),
		maxLen("description", a.Description, MaxDescriptionLength, "Description is too long."),
		maxLen("primary_image", a.PrimaryImage, MaxImagePathLength, "Image path must be less than 255 characters."),
	); err != nil {
		return err
	}

	return runStorageChecks(ctx, lk,
		[]uniqueCheck{slugUnique(lk, KindArtist, a.Slug, a.ID)},
		[]refCheck{{field: "label_id", kind: KindLabel, id: a.LabelID}},
	)
}

// ValidateRelease checks a release before it is written.
// Catalogue numbers are unique within the owning label only.
func ValidateRelease(ctx context.Context, r *Release, lk Lookup) error {
	if err := runChecks(
		nameRequired(r.Name),
		slugRequired(r.Slug),
		check("label_id", r.LabelID, validation.Required.Error("Record label is required.")),
		maxLen("name", r.Name, MaxNameLength, "Name must be less than 255 characters."),
		maxLen("slug", r.Slug, MaxSlugLength, "Slug must be less than 255 characters."),
		maxLen("description", r.Description, MaxDescriptionLength, "Description is too long."),
		maxLen("catalogue_number", r.CatalogueNumber, MaxCatalogueLength, "Catalogue number must be less than 255 characters."),
		maxLen("primary_image", r.PrimaryImage, MaxImagePathLength, "Image path must be less than 255 characters."),
	); err != nil {
		return err
	}

	unique := []uniqueCheck{slugUnique(lk, KindRelease, r.Slug, r.ID)}
	if r.CatalogueNumber != "" {
		unique = append(unique, uniqueCheck{
			field:   "catalogue_number",
			value:   r.CatalogueNumber,
			message: "Catalogue number must be unique.",
			taken: func(ctx context.Context) (bool, error) {
				return lk.CatalogueNumberTaken(ctx, r.LabelID, r.CatalogueNumber, r.ID)
			},
		})
	}

	return runStorageChecks(ctx, lk, unique,
		[]refCheck{{field: "label_id", kind: KindLabel, id: r.LabelID}},
	)
}

// ValidateTrack checks a track before it is written. The ISRC shape is checked
// before any uniqueness lookup runs.
func ValidateTrack(ctx context.Context, t *Track, lk Lookup) error {
	bpm := 0
	if t.BPM != nil {
		bpm = *t.BPM
	}
	bpmMsg := fmt.Sprintf("BPM must be between %d and %d.", MinBPM, MaxBPM)

	if err := runChecks(
		nameRequired(t.Name),
		slugRequired(t.Slug),
		check("primary_artist_id", t.PrimaryArtistID, validation.Required.Error("Primary artist is required.")),
		check("release_id", t.ReleaseID, validation.Required.Error("Release is required.")),
		check("track_number", t.TrackNumber, validation.Required.Error("Track number is required.")),
		maxLen("name", t.Name, MaxNameLength, "Name must be less than 255 characters."),
		maxLen("slug", t.Slug, MaxSlugLength, "Slug must be less than 255 characters."),
		maxLen("description", t.Description, MaxDescriptionLength, "Description is too long."),
		maxLen("primary_image", t.PrimaryImage, MaxImagePathLength, "Image path must be less than 255 characters."),
		check("isrc_code", t.ISRCCode, validation.RuneLength(ISRCLength, ISRCLength).Error("ISRC code must be 12 characters.")),
		check("track_number", t.TrackNumber, validation.Min(1).Error("Track number must be at least 1.")),
		check("bpm", bpm, validation.When(t.BPM != nil,
			validation.Required.Error(bpmMsg),
			validation.Min(MinBPM).Error(bpmMsg),
			validation.Max(MaxBPM).Error(bpmMsg),
		)),
	); err != nil {
		return err
	}

	unique := []uniqueCheck{
		slugUnique(lk, KindTrack, t.Slug, t.ID),
		{
			field:   "track_number",
			value:   t.TrackNumber,
			message: "Track number must be unique within the release.",
			taken: func(ctx context.Context) (bool, error) {
				return lk.TrackNumberTaken(ctx, t.ReleaseID, t.TrackNumber, t.ID)
			},
		},
	}
	if t.ISRCCode != nil {
		isrc := *t.ISRCCode
		unique = append(unique, uniqueCheck{
			field:   "isrc_code",
			value:   isrc,
			message: "ISRC code must be unique.",
			taken: func(ctx context.Context) (bool, error) {
				return lk.ISRCTaken(ctx, isrc, t.ID)
			},
		})
	}

	return runStorageChecks(ctx, lk, unique, []refCheck{
		{field: "primary_artist_id", kind: KindArtist, id: t.PrimaryArtistID},
		{field: "release_id", kind: KindRelease, id: t.ReleaseID},
	})
}

// ValidatePage checks a label page before it is written.
func ValidatePage(ctx context.Context, p *Page, lk Lookup) error {
	if err := runChecks(
		nameRequired(p.Name),
		slugRequired(p.Slug),
		check("label_id", p.LabelID, validation.Required.Error("Record label is required.")),
		maxLen("name", p.Name, MaxNameLength, "Name must be less than 255 characters."),
		maxLen("slug", p.Slug, MaxSlugLength, "Slug must be less than 255 characters."),
		maxLen("description", p.Description, MaxPageSummaryLength, "Description must be less than 255 characters."),
	); err != nil {
		return err
	}

	return runStorageChecks(ctx, lk,
		[]uniqueCheck{slugUnique(lk, KindPage, p.Slug, p.ID)},
		[]refCheck{{field: "label_id", kind: KindLabel, id: p.LabelID}},
	)
}
