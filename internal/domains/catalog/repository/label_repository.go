package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/pkg/cache"
)

// Cache key constants
const (
	labelFirstKey      = "label:first"
	labelCacheIDPrefix = "label:id:"
	labelSlugKeyPrefix = "label:slug:"
	labelCachePattern  = "label:*"
	labelCacheTTL      = 15 * time.Minute
)

const labelColumns = `id, name, slug, description, isrc_base, created_at, updated_at`

// labelRepository is read on every public page render, so reads go through the cache.
type labelRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewLabelRepository(pool *pgxpool.Pool, c cache.Cache) LabelRepository {
	return &labelRepository{pool: pool, cache: c}
}

func scanLabel(row pgx.Row) (*model.RecordLabel, error) {
	var l model.RecordLabel
	err := row.Scan(&l.ID, &l.Name, &l.Slug, &l.Description, &l.ISRCBase, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *labelRepository) cached(ctx context.Context, key string, load func() (*model.RecordLabel, error)) (*model.RecordLabel, error) {
	var l model.RecordLabel
	if found, err := r.cache.Get(ctx, key, &l); err == nil && found {
		return &l, nil
	} else if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] read failed")
	}

	label, err := load()
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, label, labelCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[CACHE] write failed")
	}
	return label, nil
}

func (r *labelRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, labelCachePattern); err != nil {
		log.Warn().Err(err).Msg("[CACHE] label invalidation failed")
	}
}

// GetFirst returns the lowest-id label. The site runs a single label.
func (r *labelRepository) GetFirst(ctx context.Context) (*model.RecordLabel, error) {
	return r.cached(ctx, labelFirstKey, func() (*model.RecordLabel, error) {
		query := `SELECT ` + labelColumns + ` FROM record_labels ORDER BY id LIMIT 1`
		label, err := scanLabel(r.pool.QueryRow(ctx, query))
		if err != nil {
			return nil, readError(err, model.KindLabel, "first", "get record label")
		}
		return label, nil
	})
}

func (r *labelRepository) GetByID(ctx context.Context, id int64) (*model.RecordLabel, error) {
	return r.cached(ctx, fmt.Sprintf("%s%d", labelCacheIDPrefix, id), func() (*model.RecordLabel, error) {
		query := `SELECT ` + labelColumns + ` FROM record_labels WHERE id = $1`
		label, err := scanLabel(r.pool.QueryRow(ctx, query, id))
		if err != nil {
			return nil, readError(err, model.KindLabel, id, "get record label")
		}
		return label, nil
	})
}

func (r *labelRepository) GetBySlug(ctx context.Context, slug string) (*model.RecordLabel, error) {
	return r.cached(ctx, labelSlugKeyPrefix+slug, func() (*model.RecordLabel, error) {
		query := `SELECT ` + labelColumns + ` FROM record_labels WHERE slug = $1`
		label, err := scanLabel(r.pool.QueryRow(ctx, query, slug))
		if err != nil {
			return nil, readError(err, model.KindLabel, slug, "get record label")
		}
		return label, nil
	})
}

func (r *labelRepository) Create(ctx context.Context, l *model.RecordLabel) (*model.RecordLabel, error) {
	query := `
        INSERT INTO record_labels (name, slug, description, isrc_base)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + labelColumns

	created, err := scanLabel(r.pool.QueryRow(ctx, query, l.Name, l.Slug, l.Description, l.ISRCBase))
	if err != nil {
		return nil, writeError(err, "create record label")
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *labelRepository) Update(ctx context.Context, l *model.RecordLabel) (*model.RecordLabel, error) {
	query := `
        UPDATE record_labels
        SET name = $2, slug = $3, description = $4, isrc_base = $5, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + labelColumns

	updated, err := scanLabel(r.pool.QueryRow(ctx, query, l.ID, l.Name, l.Slug, l.Description, l.ISRCBase))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound(model.KindLabel, l.ID)
		}
		return nil, writeError(err, "update record label")
	}

	r.invalidate(ctx)
	return updated, nil
}
