package domain

import (
	"github.com/google/uuid"
)

// RelationTypeID identifies a row of the character_types lookup table,
// which tags character relation edges.
type RelationTypeID int

// Known relation types. Values match the seeded character_types rows.
const (
	RelationEnemy RelationTypeID = 1
	RelationAlly  RelationTypeID = 2
)

// String returns the seeded description for known relation types.
func (t RelationTypeID) String() string {
	switch t {
	case RelationEnemy:
		return "Enemy"
	case RelationAlly:
		return "Ally"
	default:
		return "Unknown"
	}
}

// EdgeDirection tells which end of a stored relation row the owning
// character sits on.
type EdgeDirection int

const (
	// EdgeOutgoing means the owning character is the row's character_id.
	EdgeOutgoing EdgeDirection = iota
	// EdgeIncoming means the owning character is the row's relation_id.
	EdgeIncoming
)

// CharacterRef is the minimal view of the character on the other end of an edge.
type CharacterRef struct {
	ID   uuid.UUID
	Name string
}

// RelationEdge is one character_relations row seen from a particular
// character. Other is nil when the referenced character no longer exists.
type RelationEdge struct {
	ID          int64
	CharacterID uuid.UUID
	RelatedID   uuid.UUID
	TypeID      RelationTypeID
	Direction   EdgeDirection
	Other       *CharacterRef
}

// Character is a characters row with its joined skills and relation edges.
// Relations holds outgoing edges first, then incoming edges, each group in
// storage order.
type Character struct {
	ID          uuid.UUID
	Name        string `validate:"required"`
	Description *string
	ImageURL    *string
	SourceURL   *string
	Skills      []*Skill
	Relations   []RelationEdge
}

// Validate checks the character row and its joined skills.
func (c *Character) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("ID", "cannot be empty", ErrInvalidID)
	}
	if err := validate.Struct(c); err != nil {
		return structError(err)
	}
	for _, s := range c.Skills {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
