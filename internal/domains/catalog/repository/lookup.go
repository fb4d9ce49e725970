package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/pkg/database"
)

var kindTables = map[model.EntityKind]string{
	model.KindLabel:   "record_labels",
	model.KindArtist:  "artists",
	model.KindRelease: "releases",
	model.KindTrack:   "tracks",
	model.KindPage:    "pages",
}

// postgresLookup answers the storage-backed questions the validators ask.
// Soft-deleted rows count: a deleted artist still owns its slug.
type postgresLookup struct {
	q database.Querier
}

func NewPostgresLookup(pool *pgxpool.Pool) model.Lookup {
	return &postgresLookup{q: pool}
}

func (l *postgresLookup) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var found bool
	if err := l.q.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (l *postgresLookup) Exists(ctx context.Context, kind model.EntityKind, id int64) (bool, error) {
	table, ok := kindTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown entity kind %q", kind)
	}
	return l.exists(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table), id)
}

func (l *postgresLookup) SlugTaken(ctx context.Context, kind model.EntityKind, slug string, excludeID int64) (bool, error) {
	table, ok := kindTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown entity kind %q", kind)
	}
	return l.exists(ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE slug = $1 AND id <> $2)`, table),
		slug, excludeID)
}

func (l *postgresLookup) CatalogueNumberTaken(ctx context.Context, labelID int64, number string, excludeID int64) (bool, error) {
	return l.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM releases WHERE label_id = $1 AND catalogue_number = $2 AND id <> $3)`,
		labelID, number, excludeID)
}

func (l *postgresLookup) TrackNumberTaken(ctx context.Context, releaseID int64, number int, excludeID int64) (bool, error) {
	return l.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM tracks WHERE release_id = $1 AND track_number = $2 AND id <> $3)`,
		releaseID, number, excludeID)
}

func (l *postgresLookup) ISRCTaken(ctx context.Context, isrc string, excludeID int64) (bool, error) {
	return l.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM tracks WHERE isrc_code = $1 AND id <> $2)`,
		isrc, excludeID)
}
