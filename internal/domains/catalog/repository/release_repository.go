package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/pkg/database"
)

const releaseColumns = `r.id, r.name, r.slug, r.description, r.catalogue_number, r.label_id,
        r.primary_image, r.release_date, r.published_at, r.deleted_at, r.created_at, r.updated_at`

type releaseRepository struct {
	pool *pgxpool.Pool
}

func NewReleaseRepository(pool *pgxpool.Pool) ReleaseRepository {
	return &releaseRepository{pool: pool}
}

func scanRelease(row pgx.Row) (*model.Release, error) {
	var r model.Release
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Slug,
		&r.Description,
		&r.CatalogueNumber,
		&r.LabelID,
		&r.PrimaryImage,
		&r.ReleaseDate,
		&r.PublishedAt,
		&r.DeletedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *releaseRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]*model.Release, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, model.NewPersistenceError(op, err)
	}
	defer rows.Close()

	releases := make([]*model.Release, 0)
	for rows.Next() {
		rel, err := scanRelease(rows)
		if err != nil {
			return nil, model.NewPersistenceError(op, err)
		}
		releases = append(releases, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewPersistenceError(op, err)
	}
	return releases, nil
}

func (r *releaseRepository) GetByID(ctx context.Context, id int64) (*model.Release, error) {
	query := `SELECT ` + releaseColumns + ` FROM releases r WHERE r.id = $1`
	rel, err := scanRelease(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindRelease, id, "get release")
	}
	return rel, nil
}

func (r *releaseRepository) GetBySlug(ctx context.Context, slug string) (*model.Release, error) {
	query := `SELECT ` + releaseColumns + ` FROM releases r WHERE r.slug = $1`
	rel, err := scanRelease(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, readError(err, model.KindRelease, slug, "get release")
	}
	return rel, nil
}

func (r *releaseRepository) ListByArtist(ctx context.Context, artistID int64) ([]*model.Release, error) {
	query := `
        SELECT ` + releaseColumns + `
        FROM releases r
        JOIN release_artists ra ON ra.release_id = r.id
        WHERE ra.artist_id = $1
        ORDER BY r.name`
	return r.list(ctx, "list artist releases", query, artistID)
}

func (r *releaseRepository) ListByTrack(ctx context.Context, trackID int64) ([]*model.Release, error) {
	query := `
        SELECT ` + releaseColumns + `
        FROM releases r
        JOIN release_tracks rt ON rt.release_id = r.id
        WHERE rt.track_id = $1
        ORDER BY rt.position, r.id`
	return r.list(ctx, "list track releases", query, trackID)
}

func (r *releaseRepository) NextScheduled(ctx context.Context, labelID int64, now time.Time) (*model.Release, error) {
	query := `
        SELECT ` + releaseColumns + `
        FROM releases r
        WHERE r.label_id = $1
          AND r.release_date > $2
          AND r.deleted_at IS NULL
        ORDER BY r.release_date ASC, r.id ASC
        LIMIT 1`

	rel, err := scanRelease(r.pool.QueryRow(ctx, query, labelID, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, model.NewPersistenceError("get next scheduled release", err)
	}
	return rel, nil
}

func (r *releaseRepository) Create(ctx context.Context, rel *model.Release, artists []model.Member) (*model.Release, error) {
	query := `
        INSERT INTO releases AS r (name, slug, description, catalogue_number, label_id,
            primary_image, release_date, published_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + releaseColumns

	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Release, error) {
		created, err := scanRelease(tx.QueryRow(ctx, query,
			rel.Name, rel.Slug, rel.Description, rel.CatalogueNumber, rel.LabelID,
			rel.PrimaryImage, rel.ReleaseDate, rel.PublishedAt))
		if err != nil {
			return nil, err
		}
		if err := replaceMembers(ctx, tx, model.ReleaseArtists, created.ID, artists); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		return nil, writeError(err, "create release")
	}
	return created, nil
}

func (r *releaseRepository) Update(ctx context.Context, rel *model.Release, artists []model.Member) (*model.Release, error) {
	query := `
        UPDATE releases AS r
        SET name = $2, slug = $3, description = $4, catalogue_number = $5, label_id = $6,
            primary_image = $7, release_date = $8, published_at = $9, updated_at = NOW()
        WHERE r.id = $1
        RETURNING ` + releaseColumns

	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Release, error) {
		updated, err := scanRelease(tx.QueryRow(ctx, query,
			rel.ID, rel.Name, rel.Slug, rel.Description, rel.CatalogueNumber, rel.LabelID,
			rel.PrimaryImage, rel.ReleaseDate, rel.PublishedAt))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.NewNotFound(model.KindRelease, rel.ID)
			}
			return nil, err
		}
		if err := replaceMembers(ctx, tx, model.ReleaseArtists, updated.ID, artists); err != nil {
			return nil, err
		}
		return updated, nil
	})
	if err != nil {
		return nil, writeError(err, "update release")
	}
	return updated, nil
}

func (r *releaseRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Release, error) {
	query := softDeleteQuery("releases", "r", releaseColumns)

	rel, err := scanRelease(r.pool.QueryRow(ctx, query, id, at))
	if err != nil {
		return nil, readError(err, model.KindRelease, id, "delete release")
	}
	return rel, nil
}

func (r *releaseRepository) Restore(ctx context.Context, id int64) (*model.Release, error) {
	query := restoreQuery("releases", "r", releaseColumns)

	rel, err := scanRelease(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindRelease, id, "restore release")
	}
	return rel, nil
}
