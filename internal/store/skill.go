package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
)

// SkillStore defines read access to skills.
//
// Every skill returned carries its joined type row and its complete
// sub-skill tree, so callers never issue follow-up queries per skill.
type SkillStore interface {
	// ListTopLevel returns skills without a parent, ordered by name then ID,
	// restricted to page.
	ListTopLevel(ctx context.Context, page Page) ([]*domain.Skill, error)

	// CountTopLevel returns the number of skills without a parent.
	CountTopLevel(ctx context.Context) (int, error)

	// GetByID retrieves a skill, top-level or not, by its ID.
	// Returns ErrSkillNotFound if the skill does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error)

	// WithTx returns a SkillStore that runs its queries on tx.
	WithTx(tx *sql.Tx) SkillStore
}
