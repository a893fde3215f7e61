package testutils

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/store"
)

// NoTxRunner is a store.TxRunner that calls fn with a nil transaction. The
// in-memory stores ignore the transaction they are bound to.
var NoTxRunner store.TxRunner = func(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

type characterSkillRow struct {
	characterID uuid.UUID
	skillID     uuid.UUID
}

type relationRow struct {
	id          int64
	characterID uuid.UUID
	relatedID   uuid.UUID
	typeID      domain.RelationTypeID
}

// Dataset is an in-memory copy of the skills, characters, character_skills
// and character_relations tables. Rows keep insertion order, which stands in
// for storage order. It is safe for concurrent use.
type Dataset struct {
	mu sync.RWMutex

	skills          []*domain.Skill
	characters      []*domain.Character
	characterSkills []characterSkillRow
	relations       []relationRow

	err error
}

// NewDataset creates an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

// FailWith makes every store query return err until it is called with nil.
func (d *Dataset) FailWith(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// AddSkill inserts a skill and returns its generated ID. parent is nil for
// a top-level skill.
func (d *Dataset) AddSkill(name string, typ domain.SkillTypeID, parent *uuid.UUID) uuid.UUID {
	id := uuid.New()
	d.InsertSkill(&domain.Skill{ID: id, Name: name, TypeID: typ, ParentID: parent})
	return id
}

// InsertSkill inserts s as given. SubSkills and Type are ignored; they are
// derived on every read.
func (d *Dataset) InsertSkill(s *domain.Skill) {
	d.mu.Lock()
	defer d.mu.Unlock()

	row := *s
	row.SubSkills = nil
	row.Type = nil
	d.skills = append(d.skills, &row)
}

// AddCharacter inserts a character and returns its generated ID.
func (d *Dataset) AddCharacter(name string) uuid.UUID {
	id := uuid.New()
	d.InsertCharacter(&domain.Character{ID: id, Name: name})
	return id
}

// InsertCharacter inserts c as given. Skills and Relations are ignored; use
// AddCharacterSkill and AddRelation.
func (d *Dataset) InsertCharacter(c *domain.Character) {
	d.mu.Lock()
	defer d.mu.Unlock()

	row := *c
	row.Skills = nil
	row.Relations = nil
	d.characters = append(d.characters, &row)
}

// AddCharacterSkill links a character to a skill.
func (d *Dataset) AddCharacterSkill(characterID, skillID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.characterSkills = append(d.characterSkills, characterSkillRow{characterID: characterID, skillID: skillID})
}

// AddRelation stores a relation row from characterID to relatedID. Either
// side may name a character that does not exist.
func (d *Dataset) AddRelation(characterID, relatedID uuid.UUID, typ domain.RelationTypeID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.relations = append(d.relations, relationRow{
		id:          int64(len(d.relations) + 1),
		characterID: characterID,
		relatedID:   relatedID,
		typeID:      typ,
	})
}

// SkillStore returns a store.SkillStore backed by the dataset.
func (d *Dataset) SkillStore() store.SkillStore {
	return &MemorySkillStore{data: d}
}

// CharacterStore returns a store.CharacterStore backed by the dataset.
func (d *Dataset) CharacterStore() store.CharacterStore {
	return &MemoryCharacterStore{data: d}
}

// Seed returns a Dataset holding a trimmed copy of the migration seed:
// five top-level bending skills, two earthbending sub-skills, and Aang,
// Katara and Zuko with one skill each and an Aang to Katara ally relation.
func Seed() *Dataset {
	d := NewDataset()

	air := d.AddSkill("Airbending", domain.SkillTypeBending, nil)
	fire := d.AddSkill("Firebending", domain.SkillTypeBending, nil)
	water := d.AddSkill("Waterbending", domain.SkillTypeBending, nil)
	earth := d.AddSkill("Earthbending", domain.SkillTypeBending, nil)
	d.AddSkill("Energybending", domain.SkillTypeBending, nil)
	d.AddSkill("Metalbending", domain.SkillTypeBending, &earth)
	d.AddSkill("Lavabending", domain.SkillTypeBending, &earth)

	aang := d.AddCharacter("Aang")
	katara := d.AddCharacter("Katara")
	zuko := d.AddCharacter("Zuko")

	d.AddCharacterSkill(aang, air)
	d.AddCharacterSkill(katara, water)
	d.AddCharacterSkill(zuko, fire)
	d.AddRelation(aang, katara, domain.RelationAlly)

	return d
}

func (d *Dataset) skillByID(id uuid.UUID) *domain.Skill {
	for _, s := range d.skills {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (d *Dataset) characterByID(id uuid.UUID) *domain.Character {
	for _, c := range d.characters {
		if c.ID == id {
			return c
		}
	}
	return nil
}
