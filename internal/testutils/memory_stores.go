package testutils

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/store"
)

// MemorySkillStore implements store.SkillStore over a Dataset.
type MemorySkillStore struct {
	data *Dataset
}

var _ store.SkillStore = (*MemorySkillStore)(nil)

// ListTopLevel implements store.SkillStore.ListTopLevel
func (s *MemorySkillStore) ListTopLevel(ctx context.Context, page store.Page) ([]*domain.Skill, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()
	if s.data.err != nil {
		return nil, s.data.err
	}

	var roots []*domain.Skill
	for _, sk := range s.data.skills {
		if sk.IsTopLevel() {
			roots = append(roots, sk)
		}
	}
	sortByNameThenID(roots, func(sk *domain.Skill) (string, uuid.UUID) { return sk.Name, sk.ID })
	roots = applyPage(roots, page)

	rootIDs := make([]uuid.UUID, len(roots))
	for i, r := range roots {
		rootIDs[i] = r.ID
	}
	return domain.BuildSkillForest(rootIDs, s.data.skillNodes())
}

// CountTopLevel implements store.SkillStore.CountTopLevel
func (s *MemorySkillStore) CountTopLevel(ctx context.Context) (int, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()
	if s.data.err != nil {
		return 0, s.data.err
	}

	n := 0
	for _, sk := range s.data.skills {
		if sk.IsTopLevel() {
			n++
		}
	}
	return n, nil
}

// GetByID implements store.SkillStore.GetByID
func (s *MemorySkillStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()
	if s.data.err != nil {
		return nil, s.data.err
	}

	if s.data.skillByID(id) == nil {
		return nil, store.ErrSkillNotFound
	}
	forest, err := domain.BuildSkillForest([]uuid.UUID{id}, s.data.skillNodes())
	if err != nil {
		return nil, err
	}
	return forest[0], nil
}

// WithTx implements store.SkillStore.WithTx. The transaction is ignored.
func (s *MemorySkillStore) WithTx(tx *sql.Tx) store.SkillStore {
	return s
}

// MemoryCharacterStore implements store.CharacterStore over a Dataset.
type MemoryCharacterStore struct {
	data *Dataset
}

var _ store.CharacterStore = (*MemoryCharacterStore)(nil)

// List implements store.CharacterStore.List
func (s *MemoryCharacterStore) List(ctx context.Context, page store.Page) ([]*domain.Character, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()
	if s.data.err != nil {
		return nil, s.data.err
	}

	rows := make([]*domain.Character, len(s.data.characters))
	copy(rows, s.data.characters)
	sortByNameThenID(rows, func(c *domain.Character) (string, uuid.UUID) { return c.Name, c.ID })
	rows = applyPage(rows, page)

	result := make([]*domain.Character, len(rows))
	for i, c := range rows {
		result[i] = s.data.loadCharacter(c)
	}
	return result, nil
}

// Count implements store.CharacterStore.Count
func (s *MemoryCharacterStore) Count(ctx context.Context) (int, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()
	if s.data.err != nil {
		return 0, s.data.err
	}
	return len(s.data.characters), nil
}

// GetByID implements store.CharacterStore.GetByID
func (s *MemoryCharacterStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	s.data.mu.RLock()
	defer s.data.mu.RUnlock()
	if s.data.err != nil {
		return nil, s.data.err
	}

	c := s.data.characterByID(id)
	if c == nil {
		return nil, store.ErrCharacterNotFound
	}
	return s.data.loadCharacter(c), nil
}

// WithTx implements store.CharacterStore.WithTx. The transaction is ignored.
func (s *MemoryCharacterStore) WithTx(tx *sql.Tx) store.CharacterStore {
	return s
}

// skillNodes returns fresh copies of every skill row with its type joined,
// ready for domain.BuildSkillForest to link.
func (d *Dataset) skillNodes() []*domain.Skill {
	nodes := make([]*domain.Skill, len(d.skills))
	for i, sk := range d.skills {
		nodes[i] = joinSkillType(sk)
	}
	return nodes
}

// loadCharacter copies c and attaches its skills and relation edges:
// outgoing rows first, then incoming rows.
func (d *Dataset) loadCharacter(c *domain.Character) *domain.Character {
	out := *c
	out.Skills = []*domain.Skill{}
	out.Relations = []domain.RelationEdge{}

	for _, cs := range d.characterSkills {
		if cs.characterID != c.ID {
			continue
		}
		if sk := d.skillByID(cs.skillID); sk != nil {
			out.Skills = append(out.Skills, joinSkillType(sk))
		}
	}

	for _, direction := range []domain.EdgeDirection{domain.EdgeOutgoing, domain.EdgeIncoming} {
		for _, r := range d.relations {
			otherID := r.relatedID
			owner := r.characterID
			if direction == domain.EdgeIncoming {
				otherID, owner = r.characterID, r.relatedID
			}
			if owner != c.ID {
				continue
			}

			edge := domain.RelationEdge{
				ID:          r.id,
				CharacterID: r.characterID,
				RelatedID:   r.relatedID,
				TypeID:      r.typeID,
				Direction:   direction,
			}
			if other := d.characterByID(otherID); other != nil {
				edge.Other = &domain.CharacterRef{ID: other.ID, Name: other.Name}
			}
			out.Relations = append(out.Relations, edge)
		}
	}
	return &out
}

func joinSkillType(sk *domain.Skill) *domain.Skill {
	node := *sk
	node.SubSkills = nil
	node.Type = &domain.SkillType{ID: sk.TypeID, Description: sk.TypeID.String()}
	return &node
}

func sortByNameThenID[T any](rows []T, key func(T) (string, uuid.UUID)) {
	sort.SliceStable(rows, func(i, j int) bool {
		ni, idi := key(rows[i])
		nj, idj := key(rows[j])
		if ni != nj {
			return ni < nj
		}
		return idi.String() < idj.String()
	})
}

func applyPage[T any](rows []T, page store.Page) []T {
	if page.Offset >= len(rows) {
		return rows[:0]
	}
	rows = rows[page.Offset:]
	if !page.Unbounded() && page.Limit < len(rows) {
		rows = rows[:page.Limit]
	}
	return rows
}
