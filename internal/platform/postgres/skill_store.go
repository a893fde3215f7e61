package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/platform/logger"
	"github.com/phrazzld/avatar-api/internal/store"
)

// skillTreeColumns is the projection shared by the skill tree queries.
// The tree CTE must expose the skills columns plus depth.
const skillTreeColumns = `
	tree.id, tree.name, tree.description, tree.image_url, tree.source_url,
	tree.type_id, tree.skill_id, tree.depth, st.description`

// skillTreeQuery walks down from the rows selected by seed (which must
// yield skills.* columns) and returns every node up to one level beyond
// domain.MaxSkillDepth, so BuildSkillForest can detect overly deep chains.
// Rows are ordered by depth, then name and ID, which keeps roots in seed
// order and siblings sorted.
func skillTreeQuery(seed string, depthParam int) string {
	return fmt.Sprintf(`
		WITH RECURSIVE roots AS (
			%s
		), tree AS (
			SELECT s.id, s.name, s.description, s.image_url, s.source_url,
			       s.type_id, s.skill_id, 0 AS depth
			FROM skills s
			JOIN roots r ON r.id = s.id
			UNION ALL
			SELECT c.id, c.name, c.description, c.image_url, c.source_url,
			       c.type_id, c.skill_id, tree.depth + 1
			FROM skills c
			JOIN tree ON c.skill_id = tree.id
			WHERE tree.depth <= $%d
		)
		SELECT %s
		FROM tree
		LEFT JOIN skill_types st ON st.id = tree.type_id
		ORDER BY tree.depth, tree.name, tree.id
	`, seed, depthParam, skillTreeColumns)
}

var (
	listTopLevelSkillsQuery = skillTreeQuery(`
			SELECT id FROM skills
			WHERE skill_id IS NULL
			ORDER BY name, id
			LIMIT $1 OFFSET $2`, 3)

	getSkillTreeQuery = skillTreeQuery(`
			SELECT id FROM skills WHERE id = $1`, 2)
)

const countTopLevelSkillsQuery = `SELECT COUNT(*) FROM skills WHERE skill_id IS NULL`

// PostgresSkillStore implements the store.SkillStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSkillStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSkillStore creates a new PostgreSQL implementation of the SkillStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSkillStore(db store.DBTX, logger *slog.Logger) *PostgresSkillStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSkillStore{
		db:     db,
		logger: logger.With(slog.String("component", "skill_store")),
	}
}

// Ensure PostgresSkillStore implements store.SkillStore interface
var _ store.SkillStore = (*PostgresSkillStore)(nil)

// WithTx implements store.SkillStore.WithTx
func (s *PostgresSkillStore) WithTx(tx *sql.Tx) store.SkillStore {
	return &PostgresSkillStore{
		db:     tx,
		logger: s.logger,
	}
}

// ListTopLevel implements store.SkillStore.ListTopLevel
func (s *PostgresSkillStore) ListTopLevel(ctx context.Context, page store.Page) ([]*domain.Skill, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing top-level skills",
		slog.Int("offset", page.Offset),
		slog.Int("limit", page.Limit))

	skills, err := s.queryForest(ctx, listTopLevelSkillsQuery,
		limitArg(page), page.Offset, domain.MaxSkillDepth)
	if err != nil {
		log.Error("failed to list top-level skills", slog.String("error", err.Error()))
		return nil, store.NewStoreError("skill", "list", "failed to load skill trees", err)
	}

	log.Debug("listed top-level skills", slog.Int("count", len(skills)))
	return skills, nil
}

// CountTopLevel implements store.SkillStore.CountTopLevel
func (s *PostgresSkillStore) CountTopLevel(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, countTopLevelSkillsQuery).Scan(&count); err != nil {
		log.Error("failed to count top-level skills", slog.String("error", err.Error()))
		return 0, store.NewStoreError("skill", "count", "failed to count top-level skills", MapError(err))
	}
	return count, nil
}

// GetByID implements store.SkillStore.GetByID
// Returns store.ErrSkillNotFound if the skill does not exist.
func (s *PostgresSkillStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving skill by ID", slog.String("skill_id", id.String()))

	skills, err := s.queryForest(ctx, getSkillTreeQuery, id, domain.MaxSkillDepth)
	if err != nil {
		log.Error("failed to retrieve skill",
			slog.String("error", err.Error()),
			slog.String("skill_id", id.String()))
		return nil, store.NewStoreError("skill", "get", "failed to load skill tree", err)
	}
	if len(skills) == 0 {
		log.Debug("skill not found", slog.String("skill_id", id.String()))
		return nil, store.ErrSkillNotFound
	}
	return skills[0], nil
}

// queryForest runs a skill tree query and links the rows. Depth-zero rows
// are the roots, in query order.
func (s *PostgresSkillStore) queryForest(ctx context.Context, query string, args ...any) ([]*domain.Skill, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		nodes   []*domain.Skill
		rootIDs []uuid.UUID
	)
	for rows.Next() {
		skill, depth, err := scanSkillTreeRow(rows)
		if err != nil {
			return nil, err
		}
		if depth == 0 {
			rootIDs = append(rootIDs, skill.ID)
		}
		nodes = append(nodes, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	forest, err := domain.BuildSkillForest(rootIDs, nodes)
	if err != nil {
		if errors.Is(err, domain.ErrSkillHierarchyTooDeep) {
			s.logger.Error("skill hierarchy too deep, parent references may form a cycle",
				slog.Int("max_depth", domain.MaxSkillDepth))
		}
		return nil, err
	}
	return forest, nil
}

func scanSkillTreeRow(rows *sql.Rows) (*domain.Skill, int, error) {
	var (
		skill          domain.Skill
		description    sql.NullString
		imageURL       sql.NullString
		sourceURL      sql.NullString
		parentID       uuid.NullUUID
		depth          int
		typeDescriptor sql.NullString
	)
	if err := rows.Scan(
		&skill.ID,
		&skill.Name,
		&description,
		&imageURL,
		&sourceURL,
		&skill.TypeID,
		&parentID,
		&depth,
		&typeDescriptor,
	); err != nil {
		return nil, 0, MapError(err)
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

	if err := skill.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: skill %s: %w", store.ErrInvalidEntity, skill.ID, err)
	}
	return &skill, depth, nil
}
