package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/pkg/database"
)

// readError turns a single-row read failure into NOT_FOUND or PERSISTENCE_ERROR.
func readError(err error, kind model.EntityKind, key interface{}, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NewNotFound(kind, key)
	}
	return model.NewPersistenceError(op, err)
}

// constraintFields maps unique and foreign-key constraint names to form fields.
// Validators catch these first; the database is the last line when two writers race.
var constraintFields = map[string]string{
	"record_labels_slug_key":         "slug",
	"artists_slug_key":               "slug",
	"releases_slug_key":              "slug",
	"tracks_slug_key":                "slug",
	"pages_slug_key":                 "slug",
	"uq_releases_label_catalogue":    "catalogue_number",
	"uq_tracks_release_number":       "track_number",
	"tracks_isrc_code_key":           "isrc_code",
	"artists_label_id_fkey":          "label_id",
	"releases_label_id_fkey":         "label_id",
	"pages_label_id_fkey":            "label_id",
	"tracks_primary_artist_id_fkey":  "primary_artist_id",
	"tracks_release_id_fkey":         "release_id",
	"release_artists_artist_id_fkey": "artist_ids",
	"track_artists_artist_id_fkey":   "artist_ids",
	"release_tracks_release_id_fkey": "release_ids",
}

// writeError translates constraint violations into CONFLICT / VALIDATION_FAILED.
func writeError(err error, op string) error {
	var catErr *model.CatalogError
	if errors.As(err, &catErr) {
		return err
	}

	constraint := database.ConstraintName(err)
	field, known := constraintFields[constraint]
	if !known {
		field = strings.TrimSuffix(constraint, "_key")
	}

	switch {
	case database.IsUniqueViolation(err):
		return &model.CatalogError{
			Code:    model.CodeConflict,
			Field:   field,
			Message: "Value must be unique.",
			Err:     err,
		}
	case database.IsForeignKeyViolation(err):
		return &model.CatalogError{
			Code:    model.CodeValidation,
			Field:   field,
			Message: "Referenced record does not exist.",
			Err:     err,
		}
	}
	return model.NewPersistenceError(op, err)
}
