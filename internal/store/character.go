package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
)

// CharacterStore defines read access to characters.
//
// Characters are returned with their skills (each with its type row, without
// sub-skills) and with both directions of their relation edges: outgoing
// rows first, then incoming rows, each in storage order.
type CharacterStore interface {
	// List returns characters ordered by name then ID, restricted to page.
	List(ctx context.Context, page Page) ([]*domain.Character, error)

	// Count returns the number of characters.
	Count(ctx context.Context) (int, error)

	// GetByID retrieves a character by its ID.
	// Returns ErrCharacterNotFound if the character does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Character, error)

	// WithTx returns a CharacterStore that runs its queries on tx.
	WithTx(tx *sql.Tx) CharacterStore
}
