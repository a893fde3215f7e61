package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/platform/logger"
	"github.com/phrazzld/avatar-api/internal/store"
)

const (
	listCharactersQuery = `
		SELECT id, name, description, image_url, source_url
		FROM characters
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`

	getCharacterQuery = `
		SELECT id, name, description, image_url, source_url
		FROM characters
		WHERE id = $1
	`

	countCharactersQuery = `SELECT COUNT(*) FROM characters`
)

// characterSkillsQuery loads the skills of a set of characters in
// character_skills row order. The %s is replaced with the ID placeholders.
const characterSkillsQuery = `
	SELECT cs.character_id, s.id, s.name, s.description, s.image_url, s.source_url,
	       s.type_id, s.skill_id, st.description
	FROM character_skills cs
	JOIN skills s ON s.id = cs.skill_id
	LEFT JOIN skill_types st ON st.id = s.type_id
	WHERE cs.character_id IN (%s)
	ORDER BY cs.id
`

// characterRelationsQuery loads both directions of the relation rows
// touching a set of characters. owner_id is the character the edge belongs
// to; the other side is left-joined so a dangling reference yields NULLs.
// Outgoing rows sort before incoming rows, each group in storage order.
const characterRelationsQuery = `
	SELECT 0 AS direction, cr.character_id AS owner_id, cr.id AS edge_id, cr.character_id,
	       cr.relation_id, cr.relation_type_id, other.id AS other_id, other.name AS other_name
	FROM character_relations cr
	LEFT JOIN characters other ON other.id = cr.relation_id
	WHERE cr.character_id IN (%[1]s)
	UNION ALL
	SELECT 1 AS direction, cr.relation_id AS owner_id, cr.id, cr.character_id,
	       cr.relation_id, cr.relation_type_id, other.id, other.name
	FROM character_relations cr
	LEFT JOIN characters other ON other.id = cr.character_id
	WHERE cr.relation_id IN (%[1]s)
	ORDER BY direction, edge_id
`

// PostgresCharacterStore implements the store.CharacterStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCharacterStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCharacterStore creates a new PostgreSQL implementation of the CharacterStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCharacterStore(db store.DBTX, logger *slog.Logger) *PostgresCharacterStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCharacterStore{
		db:     db,
		logger: logger.With(slog.String("component", "character_store")),
	}
}

// Ensure PostgresCharacterStore implements store.CharacterStore interface
var _ store.CharacterStore = (*PostgresCharacterStore)(nil)

// WithTx implements store.CharacterStore.WithTx
func (s *PostgresCharacterStore) WithTx(tx *sql.Tx) store.CharacterStore {
	return &PostgresCharacterStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.CharacterStore.List
func (s *PostgresCharacterStore) List(ctx context.Context, page store.Page) ([]*domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing characters",
		slog.Int("offset", page.Offset),
		slog.Int("limit", page.Limit))

	rows, err := s.db.QueryContext(ctx, listCharactersQuery, limitArg(page), page.Offset)
	if err != nil {
		log.Error("failed to list characters", slog.String("error", err.Error()))
		return nil, store.NewStoreError("character", "list", "failed to query characters", MapError(err))
	}

	characters, err := scanCharacters(rows)
	if err != nil {
		log.Error("failed to scan characters", slog.String("error", err.Error()))
		return nil, store.NewStoreError("character", "list", "failed to scan characters", err)
	}

	if err := s.attachAssociations(ctx, characters); err != nil {
		log.Error("failed to load character associations", slog.String("error", err.Error()))
		return nil, store.NewStoreError("character", "list", "failed to load associations", err)
	}

	log.Debug("listed characters", slog.Int("count", len(characters)))
	return characters, nil
}

// Count implements store.CharacterStore.Count
func (s *PostgresCharacterStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, countCharactersQuery).Scan(&count); err != nil {
		log.Error("failed to count characters", slog.String("error", err.Error()))
		return 0, store.NewStoreError("character", "count", "failed to count characters", MapError(err))
	}
	return count, nil
}

// GetByID implements store.CharacterStore.GetByID
// Returns store.ErrCharacterNotFound if the character does not exist.
func (s *PostgresCharacterStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving character by ID", slog.String("character_id", id.String()))

	rows, err := s.db.QueryContext(ctx, getCharacterQuery, id)
	if err != nil {
		log.Error("failed to retrieve character",
			slog.String("error", err.Error()),
			slog.String("character_id", id.String()))
		return nil, store.NewStoreError("character", "get", "failed to query character", MapError(err))
	}

	characters, err := scanCharacters(rows)
	if err != nil {
		return nil, store.NewStoreError("character", "get", "failed to scan character", err)
	}
	if len(characters) == 0 {
		log.Debug("character not found", slog.String("character_id", id.String()))
		return nil, store.ErrCharacterNotFound
	}

	if err := s.attachAssociations(ctx, characters); err != nil {
		log.Error("failed to load character associations",
			slog.String("error", err.Error()),
			slog.String("character_id", id.String()))
		return nil, store.NewStoreError("character", "get", "failed to load associations", err)
	}
	return characters[0], nil
}

// attachAssociations fills Skills and Relations for every character with
// one query each. Characters without rows get non-nil empty slices.
func (s *PostgresCharacterStore) attachAssociations(ctx context.Context, characters []*domain.Character) error {
	if len(characters) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Character, len(characters))
	ids := make([]uuid.UUID, 0, len(characters))
	for _, c := range characters {
		c.Skills = []*domain.Skill{}
		c.Relations = []domain.RelationEdge{}
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}
	args := uuidArgs(ids)
	placeholders := inList(1, len(ids))

	if err := s.loadSkills(ctx, byID, placeholders, args); err != nil {
		return err
	}
	if err := s.loadRelations(ctx, byID, placeholders, args); err != nil {
		return err
	}

	for _, c := range characters {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: character %s: %w", store.ErrInvalidEntity, c.ID, err)
		}
	}
	return nil
}

func (s *PostgresCharacterStore) loadSkills(
	ctx context.Context,
	byID map[uuid.UUID]*domain.Character,
	placeholders string,
	args []any,
) error {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(characterSkillsQuery, placeholders), args...)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			ownerID        uuid.UUID
			skill          domain.Skill
			description    sql.NullString
			imageURL       sql.NullString
			sourceURL      sql.NullString
			parentID       uuid.NullUUID
			typeDescriptor sql.NullString
		)
		if err := rows.Scan(
			&ownerID,
			&skill.ID,
			&skill.Name,
			&description,
			&imageURL,
			&sourceURL,
			&skill.TypeID,
			&parentID,
			&typeDescriptor,
		); err != nil {
			return MapError(err)
		}

		skill.Description = nullableString(description)
		skill.ImageURL = nullableString(imageURL)
		skill.SourceURL = nullableString(sourceURL)
		if parentID.Valid {
			pid := parentID.UUID
			skill.ParentID = &pid
		}
		if typeDescriptor.Valid {
			skill.Type = &domain.SkillType{ID: skill.TypeID, Description: typeDescriptor.String}
		}

		if owner, ok := byID[ownerID]; ok {
			owner.Skills = append(owner.Skills, &skill)
		}
	}
	return MapError(rows.Err())
}

func (s *PostgresCharacterStore) loadRelations(
	ctx context.Context,
	byID map[uuid.UUID]*domain.Character,
	placeholders string,
	args []any,
) error {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(characterRelationsQuery, placeholders), args...)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			direction int
			ownerID   uuid.UUID
			edge      domain.RelationEdge
			otherID   uuid.NullUUID
			otherName sql.NullString
		)
		if err := rows.Scan(
			&direction,
			&ownerID,
			&edge.ID,
			&edge.CharacterID,
			&edge.RelatedID,
			&edge.TypeID,
			&otherID,
			&otherName,
		); err != nil {
			return MapError(err)
		}

		edge.Direction = domain.EdgeOutgoing
		if direction == 1 {
			edge.Direction = domain.EdgeIncoming
		}
		if otherID.Valid {
			edge.Other = &domain.CharacterRef{ID: otherID.UUID, Name: otherName.String}
		}

		if owner, ok := byID[ownerID]; ok {
			owner.Relations = append(owner.Relations, edge)
		}
	}
	return MapError(rows.Err())
}

func scanCharacters(rows *sql.Rows) ([]*domain.Character, error) {
	defer func() { _ = rows.Close() }()

	characters := []*domain.Character{}
	for rows.Next() {
		var (
			c           domain.Character
			description sql.NullString
			imageURL    sql.NullString
			sourceURL   sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &description, &imageURL, &sourceURL); err != nil {
			return nil, MapError(err)
		}
		c.Description = nullableString(description)
		c.ImageURL = nullableString(imageURL)
		c.SourceURL = nullableString(sourceURL)
		characters = append(characters, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return characters, nil
}
