package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	catalogmodel "recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/internal/domains/link/model"
	"recordlabel-backend/pkg/database"
)

// Repository stores one vocabulary's links.
type Repository[P model.Platform] interface {
	ListByArtist(ctx context.Context, artistID int64) ([]model.Link[P], error)
	// Apply runs the plan in one transaction. Nothing is written when any step fails.
	Apply(ctx context.Context, artistID int64, plan model.Plan[P]) error
}

type postgresRepository[P model.Platform] struct {
	pool  *pgxpool.Pool
	vocab model.Vocabulary[P]
}

func NewPostgresRepository[P model.Platform](pool *pgxpool.Pool, vocab model.Vocabulary[P]) Repository[P] {
	return &postgresRepository[P]{pool: pool, vocab: vocab}
}

func (r *postgresRepository[P]) ListByArtist(ctx context.Context, artistID int64) ([]model.Link[P], error) {
	query := fmt.Sprintf(`
        SELECT id, artist_id, platform, url, created_at, updated_at
        FROM %s
        WHERE artist_id = $1
        ORDER BY platform`, r.vocab.Table)

	rows, err := r.pool.Query(ctx, query, artistID)
	if err != nil {
		return nil, catalogmodel.NewPersistenceError("list "+r.vocab.Name, err)
	}
	defer rows.Close()

	links := make([]model.Link[P], 0)
	for rows.Next() {
		var (
			l   model.Link[P]
			key string
		)
		if err := rows.Scan(&l.ID, &l.ArtistID, &key, &l.URL, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, catalogmodel.NewPersistenceError("scan "+r.vocab.Name, err)
		}
		p, ok := r.vocab.Parse(key)
		if !ok {
			log.Warn().Str("table", r.vocab.Table).Str("platform", key).Int64("link_id", l.ID).
				Msg("[LINKS] Skipping row with unknown platform")
			continue
		}
		l.Platform = p
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, catalogmodel.NewPersistenceError("list "+r.vocab.Name, err)
	}
	return links, nil
}

func (r *postgresRepository[P]) Apply(ctx context.Context, artistID int64, plan model.Plan[P]) error {
	if plan.Empty() {
		return nil
	}
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return model.ApplyPlan(ctx, plan, &txWriter[P]{q: tx, table: r.vocab.Table, artistID: artistID})
	})
}

// txWriter binds single-row writes to one artist and one transaction.
type txWriter[P model.Platform] struct {
	q        database.Querier
	table    string
	artistID int64
}

func (w *txWriter[P]) Insert(ctx context.Context, platform P, url string) error {
	query := fmt.Sprintf(`INSERT INTO %s (artist_id, platform, url) VALUES ($1, $2, $3)`, w.table)
	if _, err := w.q.Exec(ctx, query, w.artistID, platform.StorageKey(), url); err != nil {
		return writeError(err, platform)
	}
	return nil
}

func (w *txWriter[P]) Update(ctx context.Context, platform P, url string) error {
	query := fmt.Sprintf(`
        UPDATE %s SET url = $3, updated_at = NOW()
        WHERE artist_id = $1 AND platform = $2`, w.table)
	tag, err := w.q.Exec(ctx, query, w.artistID, platform.StorageKey(), url)
	if err != nil {
		return writeError(err, platform)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no %s link stored for artist %d", platform.StorageKey(), w.artistID)
	}
	return nil
}

func (w *txWriter[P]) Delete(ctx context.Context, platform P) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE artist_id = $1 AND platform = $2`, w.table)
	if _, err := w.q.Exec(ctx, query, w.artistID, platform.StorageKey()); err != nil {
		return writeError(err, platform)
	}
	return nil
}

func writeError[P model.Platform](err error, platform P) error {
	switch {
	case database.IsUniqueViolation(err):
		return catalogmodel.NewConflict(model.FieldName(platform), platform.StorageKey(),
			"A link for this platform already exists.")
	case database.IsForeignKeyViolation(err):
		return catalogmodel.NewValidationError("artist_id", "Artist does not exist.")
	}
	return catalogmodel.NewPersistenceError("write "+platform.StorageKey()+" link", err)
}
