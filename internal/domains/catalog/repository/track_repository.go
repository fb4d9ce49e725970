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

const trackColumns = `t.id, t.name, t.slug, t.description, t.primary_artist_id, t.release_id,
        t.track_number, t.isrc_code, t.bpm, t.primary_image, t.published_at, t.deleted_at,
        t.created_at, t.updated_at`

type trackRepository struct {
	pool *pgxpool.Pool
}

func NewTrackRepository(pool *pgxpool.Pool) TrackRepository {
	return &trackRepository{pool: pool}
}

func scanTrack(row pgx.Row) (*model.Track, error) {
	var t model.Track
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.Description,
		&t.PrimaryArtistID,
		&t.ReleaseID,
		&t.TrackNumber,
		&t.ISRCCode,
		&t.BPM,
		&t.PrimaryImage,
		&t.PublishedAt,
		&t.DeletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trackRepository) GetByID(ctx context.Context, id int64) (*model.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks t WHERE t.id = $1`
	t, err := scanTrack(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindTrack, id, "get track")
	}
	return t, nil
}

func (r *trackRepository) GetBySlug(ctx context.Context, slug string) (*model.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks t WHERE t.slug = $1`
	t, err := scanTrack(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, readError(err, model.KindTrack, slug, "get track")
	}
	return t, nil
}

func (r *trackRepository) ListByRelease(ctx context.Context, releaseID int64) ([]*model.Track, error) {
	query := `
        SELECT ` + trackColumns + `
        FROM tracks t
        JOIN release_tracks rt ON rt.track_id = t.id
        WHERE rt.release_id = $1
        ORDER BY t.track_number, t.id`

	rows, err := r.pool.Query(ctx, query, releaseID)
	if err != nil {
		return nil, model.NewPersistenceError("list release tracks", err)
	}
	defer rows.Close()

	tracks := make([]*model.Track, 0)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, model.NewPersistenceError("list release tracks", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewPersistenceError("list release tracks", err)
	}
	return tracks, nil
}

// writeMembership replaces both memberships of a track inside tx.
func writeMembership(ctx context.Context, tx pgx.Tx, trackID int64, artists, releases []model.Member) error {
	if err := replaceMembers(ctx, tx, model.TrackArtists, trackID, artists); err != nil {
		return err
	}
	return replaceMembers(ctx, tx, model.TrackReleases, trackID, releases)
}

func (r *trackRepository) Create(ctx context.Context, t *model.Track, artists, releases []model.Member) (*model.Track, error) {
	query := `
        INSERT INTO tracks AS t (name, slug, description, primary_artist_id, release_id,
            track_number, isrc_code, bpm, primary_image, published_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + trackColumns

	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Track, error) {
		created, err := scanTrack(tx.QueryRow(ctx, query,
			t.Name, t.Slug, t.Description, t.PrimaryArtistID, t.ReleaseID,
			t.TrackNumber, t.ISRCCode, t.BPM, t.PrimaryImage, t.PublishedAt))
		if err != nil {
			return nil, err
		}
		if err := writeMembership(ctx, tx, created.ID, artists, releases); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		return nil, writeError(err, "create track")
	}
	return created, nil
}

func (r *trackRepository) Update(ctx context.Context, t *model.Track, artists, releases []model.Member) (*model.Track, error) {
	query := `
        UPDATE tracks AS t
        SET name = $2, slug = $3, description = $4, primary_artist_id = $5, release_id = $6,
            track_number = $7, isrc_code = $8, bpm = $9, primary_image = $10,
            published_at = $11, updated_at = NOW()
        WHERE t.id = $1
        RETURNING ` + trackColumns

	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Track, error) {
		updated, err := scanTrack(tx.QueryRow(ctx, query,
			t.ID, t.Name, t.Slug, t.Description, t.PrimaryArtistID, t.ReleaseID,
			t.TrackNumber, t.ISRCCode, t.BPM, t.PrimaryImage, t.PublishedAt))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.NewNotFound(model.KindTrack, t.ID)
			}
			return nil, err
		}
		if err := writeMembership(ctx, tx, updated.ID, artists, releases); err != nil {
			return nil, err
		}
		return updated, nil
	})
	if err != nil {
		return nil, writeError(err, "update track")
	}
	return updated, nil
}

func (r *trackRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Track, error) {
	query := softDeleteQuery("tracks", "t", trackColumns)

	t, err := scanTrack(r.pool.QueryRow(ctx, query, id, at))
	if err != nil {
		return nil, readError(err, model.KindTrack, id, "delete track")
	}
	return t, nil
}

func (r *trackRepository) Restore(ctx context.Context, id int64) (*model.Track, error) {
	query := restoreQuery("tracks", "t", trackColumns)

	t, err := scanTrack(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindTrack, id, "restore track")
	}
	return t, nil
}
