package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recordlabel-backend/internal/domains/catalog/model"
	"recordlabel-backend/pkg/database"
)

type membershipRepository struct {
	pool *pgxpool.Pool
}

func NewMembershipRepository(pool *pgxpool.Pool) MembershipRepository {
	return &membershipRepository{pool: pool}
}

// Replace is a full replace, not a diff. Concurrent calls for one owner are
// last-writer-wins; no application-level lock is taken.
func (r *membershipRepository) Replace(ctx context.Context, m model.Membership, ownerID int64, members []model.Member) error {
	if len(members) == 0 {
		return model.NewValidationError(m.MemberField, m.EmptyMsg)
	}
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return replaceMembers(ctx, tx, m, ownerID, members)
	})
}

func (r *membershipRepository) MemberIDs(ctx context.Context, m model.Membership, ownerID int64) ([]int64, error) {
	return memberIDs(ctx, r.pool, m, ownerID)
}

// replaceMembers runs inside the caller's transaction.
func replaceMembers(ctx context.Context, q database.Querier, m model.Membership, ownerID int64, members []model.Member) error {
	if len(members) == 0 {
		return model.NewValidationError(m.MemberField, m.EmptyMsg)
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, m.Table, m.OwnerColumn)
	if _, err := q.Exec(ctx, deleteQuery, ownerID); err != nil {
		return model.NewPersistenceError("clear "+m.Table, err)
	}

	insertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, position, is_primary) VALUES ($1, $2, $3, $4)`,
		m.Table, m.OwnerColumn, m.MemberColumn,
	)
	for _, member := range members {
		if _, err := q.Exec(ctx, insertQuery, ownerID, member.ID, member.Position, member.IsPrimary); err != nil {
			if database.IsForeignKeyViolation(err) {
				return model.NewValidationError(m.MemberField,
					fmt.Sprintf("%s with id %d does not exist.", m.MemberKind.Title(), member.ID))
			}
			return model.NewPersistenceError("insert into "+m.Table, err)
		}
	}
	return nil
}

func memberIDs(ctx context.Context, q database.Querier, m model.Membership, ownerID int64) ([]int64, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s = $1 ORDER BY position, %s`,
		m.MemberColumn, m.Table, m.OwnerColumn, m.MemberColumn,
	)
	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, model.NewPersistenceError("list "+m.Table, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, model.NewPersistenceError("scan "+m.Table, err)
	}
	return ids, nil
}
