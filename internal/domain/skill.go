package domain

import (
	"github.com/google/uuid"
)

// MaxSkillDepth bounds how many sub-skill levels BuildSkillForest descends.
// The seeded taxonomy is two levels deep.
const MaxSkillDepth = 16

// SkillTypeID identifies a row of the skill_types lookup table.
type SkillTypeID int

// Known skill types. Values match the seeded skill_types rows.
const (
	SkillTypeBending SkillTypeID = 1
	SkillTypeOther   SkillTypeID = 2
)

// String returns the seeded description for known types.
func (t SkillTypeID) String() string {
	switch t {
	case SkillTypeBending:
		return "Bending"
	case SkillTypeOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// SkillType is a joined skill_types row.
type SkillType struct {
	ID          SkillTypeID `validate:"gt=0"`
	Description string
}

// Skill is a skills row with its joined type and, when loaded, its
// descendants. A skill with a ParentID is a sub-skill.
type Skill struct {
	ID          uuid.UUID
	Name        string `validate:"required"`
	Description *string
	ImageURL    *string
	SourceURL   *string
	TypeID      SkillTypeID `validate:"gt=0"`
	Type        *SkillType
	ParentID    *uuid.UUID
	SubSkills   []*Skill
}

// IsTopLevel reports whether the skill has no parent skill.
func (s *Skill) IsTopLevel() bool {
	return s.ParentID == nil
}

// Validate checks the fields the mappers rely on.
func (s *Skill) Validate() error {
	if s.ID == uuid.Nil {
		return NewValidationError("ID", "cannot be empty", ErrInvalidID)
	}
	if s.ParentID != nil && *s.ParentID == s.ID {
		return NewValidationError("ParentID", "cannot reference the skill itself", ErrValidation)
	}
	if err := validate.Struct(s); err != nil {
		return structError(err)
	}
	return nil
}

// BuildSkillForest links the flat node list into trees and returns the nodes
// named by rootIDs in rootIDs order. nodes is treated as an arena: children
// are indexed by parent once, keeping the relative order they appear in
// nodes. Root IDs missing from nodes are skipped.
//
// Descending more than MaxSkillDepth levels returns ErrSkillHierarchyTooDeep
// instead of looping on a cyclic parent chain.
func BuildSkillForest(rootIDs []uuid.UUID, nodes []*Skill) ([]*Skill, error) {
	byID := make(map[uuid.UUID]*Skill, len(nodes))
	children := make(map[uuid.UUID][]*Skill)
	for _, n := range nodes {
		if _, seen := byID[n.ID]; seen {
			continue
		}
		byID[n.ID] = n
		if n.ParentID != nil {
			children[*n.ParentID] = append(children[*n.ParentID], n)
		}
	}

	var attach func(n *Skill, depth int) error
	attach = func(n *Skill, depth int) error {
		if depth > MaxSkillDepth {
			return ErrSkillHierarchyTooDeep
		}
		kids := children[n.ID]
		n.SubSkills = make([]*Skill, 0, len(kids))
		for _, kid := range kids {
			if err := attach(kid, depth+1); err != nil {
				return err
			}
			n.SubSkills = append(n.SubSkills, kid)
		}
		return nil
	}

	roots := make([]*Skill, 0, len(rootIDs))
	for _, id := range rootIDs {
		root, ok := byID[id]
		if !ok {
			continue
		}
		if err := attach(root, 0); err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}
