package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recordlabel-backend/internal/domains/catalog/model"
)

const pageColumns = `p.id, p.name, p.slug, p.description, p.body, p.label_id,
        p.published_at, p.deleted_at, p.created_at, p.updated_at`

type pageRepository struct {
	pool *pgxpool.Pool
}

func NewPageRepository(pool *pgxpool.Pool) PageRepository {
	return &pageRepository{pool: pool}
}

func scanPage(row pgx.Row) (*model.Page, error) {
	var p model.Page
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Body, &p.LabelID,
		&p.PublishedAt, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pageRepository) GetByID(ctx context.Context, id int64) (*model.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages p WHERE p.id = $1`
	p, err := scanPage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindPage, id, "get page")
	}
	return p, nil
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*model.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages p WHERE p.slug = $1`
	p, err := scanPage(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, readError(err, model.KindPage, slug, "get page")
	}
	return p, nil
}

func (r *pageRepository) ListByLabel(ctx context.Context, labelID int64) ([]*model.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages p WHERE p.label_id = $1 ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, labelID)
	if err != nil {
		return nil, model.NewPersistenceError("list pages", err)
	}
	defer rows.Close()

	pages := make([]*model.Page, 0)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, model.NewPersistenceError("list pages", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewPersistenceError("list pages", err)
	}
	return pages, nil
}

func (r *pageRepository) Create(ctx context.Context, p *model.Page) (*model.Page, error) {
	query := `
        INSERT INTO pages AS p (name, slug, description, body, label_id, published_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + pageColumns

	created, err := scanPage(r.pool.QueryRow(ctx, query,
		p.Name, p.Slug, p.Description, p.Body, p.LabelID, p.PublishedAt))
	if err != nil {
		return nil, writeError(err, "create page")
	}
	return created, nil
}

func (r *pageRepository) Update(ctx context.Context, p *model.Page) (*model.Page, error) {
	query := `
        UPDATE pages AS p
        SET name = $2, slug = $3, description = $4, body = $5, label_id = $6,
            published_at = $7, updated_at = NOW()
        WHERE p.id = $1
        RETURNING ` + pageColumns

	updated, err := scanPage(r.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Body, p.LabelID, p.PublishedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewNotFound(model.KindPage, p.ID)
		}
		return nil, writeError(err, "update page")
	}
	return updated, nil
}

func (r *pageRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (*model.Page, error) {
	query := softDeleteQuery("pages", "p", pageColumns)

	p, err := scanPage(r.pool.QueryRow(ctx, query, id, at))
	if err != nil {
		return nil, readError(err, model.KindPage, id, "delete page")
	}
	return p, nil
}

func (r *pageRepository) Restore(ctx context.Context, id int64) (*model.Page, error) {
	query := restoreQuery("pages", "p", pageColumns)

	p, err := scanPage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, readError(err, model.KindPage, id, "restore page")
	}
	return p, nil
}
