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

// CharacterService provides read access to characters with their skills
// and relations.
type CharacterService interface {
	// FindAll returns a page of characters and the total number of
	// characters. page and limit are optional: limit caps the rows and page
	// selects the window.
	FindAll(ctx context.Context, baseURL string, page, limit *int) (*resource.List[resource.Character], error)

	// FindOne returns the character with the given ID, or a Detail with nil
	// Data when it does not exist.
	FindOne(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Character], error)
}

type characterServiceImpl struct {
	characters store.CharacterStore
	runTx      store.TxRunner
	logger     *slog.Logger
}

// NewCharacterService creates a CharacterService.
func NewCharacterService(
	characters store.CharacterStore,
	runTx store.TxRunner,
	logger *slog.Logger,
) (CharacterService, error) {
	if characters == nil {
		return nil, NewServiceError("character", "create_service", "character store cannot be nil", ErrNilDependency)
	}
	if runTx == nil {
		return nil, NewServiceError("character", "create_service", "transaction runner cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &characterServiceImpl{
		characters: characters,
		runTx:      runTx,
		logger:     logger.With(slog.String("component", "character_service")),
	}, nil
}

// FindAll implements CharacterService.FindAll
// The total counts characters, not skills.
func (s *characterServiceImpl) FindAll(
	ctx context.Context,
	baseURL string,
	page, limit *int,
) (*resource.List[resource.Character], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		characters []*domain.Character
		total      int
	)
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.characters.WithTx(tx)

		var err error
		if characters, err = txStore.List(ctx, store.NewPage(page, limit)); err != nil {
			return fmt.Errorf("list characters: %w", err)
		}
		if total, err = txStore.Count(ctx); err != nil {
			return fmt.Errorf("count characters: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to list characters", slog.String("error", err.Error()))
		return nil, NewServiceError("character", "find_all", "failed to load characters", err)
	}

	log.Debug("listed characters",
		slog.Int("returned", len(characters)),
		slog.Int("total", total))

	return &resource.List[resource.Character]{
		Info: resource.NewInfo(total, page, limit),
		Data: resource.MapCharacters(characters, baseURL),
	}, nil
}

// FindOne implements CharacterService.FindOne
func (s *characterServiceImpl) FindOne(
	ctx context.Context,
	id uuid.UUID,
	baseURL string,
) (*resource.Detail[resource.Character], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	character, err := s.characters.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("character not found", slog.String("character_id", id.String()))
			return &resource.Detail[resource.Character]{}, nil
		}
		log.Error("failed to retrieve character",
			slog.String("error", err.Error()),
			slog.String("character_id", id.String()))
		return nil, NewServiceError("character", "find_one", "failed to load character", err)
	}

	return &resource.Detail[resource.Character]{Data: resource.MapCharacter(character, baseURL)}, nil
}
