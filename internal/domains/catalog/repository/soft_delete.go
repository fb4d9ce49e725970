package repository

import "fmt"

// softDeleteQuery keeps the first deletion time: deleting an already deleted
// row must not move it in the "latest deletion first" listing.
// $1 is the id, $2 the deletion time.
func softDeleteQuery(table, alias, columns string) string {
	return fmt.Sprintf(`
        UPDATE %[1]s AS %[2]s SET deleted_at = COALESCE(%[2]s.deleted_at, $2), updated_at = NOW()
        WHERE %[2]s.id = $1
        RETURNING %[3]s`, table, alias, columns)
}

// restoreQuery clears deleted_at only; published_at is left alone.
func restoreQuery(table, alias, columns string) string {
	return fmt.Sprintf(`
        UPDATE %[1]s AS %[2]s SET deleted_at = NULL, updated_at = NOW()
        WHERE %[2]s.id = $1
        RETURNING %[3]s`, table, alias, columns)
}
