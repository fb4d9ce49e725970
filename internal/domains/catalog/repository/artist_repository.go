package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recordlabel-backend/internal/domains/catalog/model"
)

const artistColumns = `a.id, a.name, a.slug, a.description, a.label_id, a.primary_image,
        a.published_at, a.deleted_at, a.created_at, a.updated_at`

type artistRepository struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &artistRepository{pool: pool}
}

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var a model.Artist
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Slug,
		&a.Description,
		&a.LabelID,
		&a.PrimaryImage,
		&a.PublishedAt,
		&a.DeletedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *artistRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]*model.Artist, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, model.NewPersistenceError(op, err)
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, model.NewPersistenceError(op, err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewPersistenceError(op, err)
	}
	return artists, nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.id = $1`
	a, err := scanArtist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindArtist, id, "get artist")
	}
	return a, nil
}

func (r *artistRepository) GetBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.slug = $1`
	a, err := scanArtist(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, readError(err, model.KindArtist, slug, "get artist")
	}
	return a, nil
}

// ListByLabel returns every artist of the label, deleted and unpublished included.
// Visibility and ordering are decided by the caller.
func (r *artistRepository) ListByLabel(ctx context.Context, labelID int64) ([]*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.label_id = $1 ORDER BY a.name`
	return r.list(ctx, "list artists", query, labelID)
}

func (r *artistRepository) ListByRelease(ctx context.Context, releaseID int64) ([]*model.Artist, error) {
	query := `
        SELECT ` + artistColumns + `
        FROM artists a
        JOIN release_artists ra ON ra.artist_id = a.id
        WHERE ra.release_id = $1
        ORDER BY ra.position, a.id`
	return r.list(ctx, "list release artists", query, releaseID)
}

func (r *artistRepository) ListByTrack(ctx context.Context, trackID int64) ([]*model.Artist, error) {
	query := `
        SELECT ` + artistColumns + `
        FROM artists a
        JOIN track_artists ta ON ta.artist_id = a.id
        WHERE ta.track_id = $1
        ORDER BY ta.position, a.id`
	return r.list(ctx, "list track artists", query, trackID)
}

func (r *artistRepository) Create(ctx context.Context, a *model.Artist) (*model.Artist, error) {
	query := `
        INSERT INTO artists AS a (name, slug, description, label_id, primary_image, published_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + artistColumns

	created, err := scanArtist(r.pool.QueryRow(ctx, query,
		a.Name, a.Slug, a.Description, a.LabelID, a.PrimaryImage, a.PublishedAt))
	if err != nil {
		return nil, writeError(err, "create artist")
	}
	return created, nil
}

func (r *artistRepository) Update(ctx context.Context, a *model.Artist) (*model.Artist, error) {
	query := `
        UPDATE artists AS a
        SET name = $2, slug = $3, description = $4, label_id = $5,
            primary_image = $6, published_at = $7, updated_at = NOW()
        WHERE a.id = $1
        RETURNING ` + artistColumns

	updated, err := scanArtist(r.pool.QueryRow(ctx, query,
		a.ID, a.Name, a.Slug, a.Description, a.LabelID, a.PrimaryImage, a.PublishedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound(model.KindArtist, a.ID)
		}
		return nil, writeError(err, "update artist")
	}
	return updated, nil
}

func (r *artistRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Artist, error) {
	query := softDeleteQuery("artists", "a", artistColumns)

	a, err := scanArtist(r.pool.QueryRow(ctx, query, id, at))
	if err != nil {
		return nil, readError(err, model.KindArtist, id, "delete artist")
	}
	return a, nil
}

func (r *artistRepository) Restore(ctx context.Context, id int64) (*model.Artist, error) {
	query := restoreQuery("artists", "a", artistColumns)

	a, err := scanArtist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindArtist, id, "restore artist")
	}
	return a, nil
}
