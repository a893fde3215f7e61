package postgres

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/store"
)

// limitArg returns the LIMIT argument for page. PostgreSQL treats
// LIMIT NULL as no limit.
func limitArg(page store.Page) any {
	if page.Unbounded() {
		return nil
	}
	return page.Limit
}

// inList renders "$start, $start+1, ..." for n placeholders.
func inList(start, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(start + i))
	}
	return b.String()
}

func uuidArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// nullableString converts a NULL-able text column to a pointer.
// Empty strings are kept.
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
