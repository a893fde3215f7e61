package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/platform/logger"
	"github.com/phrazzld/avatar-api/internal/resource"
	"github.com/phrazzld/avatar-api/internal/store"
)

// SkillService provides read access to the skill taxonomy.
type SkillService interface {
	// FindAll returns a page of top-level skills with their sub-skill trees
	// and the total number of top-level skills. page and limit are optional:
	// limit caps the rows and page selects the window.
	FindAll(ctx context.Context, baseURL string, page, limit *int) (*resource.List[resource.Skill], error)

	// FindOne returns the skill with the given ID, or a Detail with nil Data
	// when it does not exist.
	FindOne(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Skill], error)
}

type skillServiceImpl struct {
	skills store.SkillStore
	runTx  store.TxRunner
	logger *slog.Logger
}

// NewSkillService creates a SkillService. runTx provides the snapshot that
// FindAll runs its two queries in; see store.SnapshotRunner.
func NewSkillService(skills store.SkillStore, runTx store.TxRunner, logger *slog.Logger) (SkillService, error) {
	if skills == nil {
		return nil, NewServiceError("skill", "create_service", "skill store cannot be nil", ErrNilDependency)
	}
	if runTx == nil {
		return nil, NewServiceError("skill", "create_service", "transaction runner cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &skillServiceImpl{
		skills: skills,
		runTx:  runTx,
		logger: logger.With(slog.String("component", "skill_service")),
	}, nil
}

// FindAll implements SkillService.FindAll
func (s *skillServiceImpl) FindAll(
	ctx context.Context,
	baseURL string,
	page, limit *int,
) (*resource.List[resource.Skill], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		skills []*domain.Skill
		total  int
	)
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.skills.WithTx(tx)

		var err error
		if skills, err = txStore.ListTopLevel(ctx, store.NewPage(page, limit)); err != nil {
			return fmt.Errorf("list top-level skills: %w", err)
		}
		if total, err = txStore.CountTopLevel(ctx); err != nil {
			return fmt.Errorf("count top-level skills: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to list skills", slog.String("error", err.Error()))
		return nil, NewServiceError("skill", "find_all", "failed to load skills", err)
	}

	log.Debug("listed skills",
		slog.Int("returned", len(skills)),
		slog.Int("total", total))

	return &resource.List[resource.Skill]{
		Info: resource.NewInfo(total, page, limit),
		Data: resource.MapSkills(skills, baseURL),
	}, nil
}

// FindOne implements SkillService.FindOne
func (s *skillServiceImpl) FindOne(
	ctx context.Context,
	id uuid.UUID,
	baseURL string,
) (*resource.Detail[resource.Skill], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("skill not found", slog.String("skill_id", id.String()))
			return &resource.Detail[resource.Skill]{}, nil
		}
		log.Error("failed to retrieve skill",
			slog.String("error", err.Error()),
			slog.String("skill_id", id.String()))
		return nil, NewServiceError("skill", "find_one", "failed to load skill", err)
	}

	return &resource.Detail[resource.Skill]{Data: resource.MapSkill(skill, baseURL)}, nil
}
