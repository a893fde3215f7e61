package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/api/shared"
	"github.com/phrazzld/avatar-api/internal/platform/logger"
	"github.com/phrazzld/avatar-api/internal/resource"
	"github.com/phrazzld/avatar-api/internal/service"
)

// CharacterHandler handles the /v1/characters endpoints.
type CharacterHandler struct {
	characterService service.CharacterService
	logger           *slog.Logger
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(characterService service.CharacterService, logger *slog.Logger) *CharacterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CharacterHandler{
		characterService: characterService,
		logger:           logger.With(slog.String("component", "character_handler")),
	}
}

// ListCharacters handles GET /v1/characters
//
//	@Summary		List characters
//	@Description	Returns characters with their skills grouped by type and their allies and enemies. Page alone uses a limit of 10.
//	@Tags			characters
//	@Produce		json
//	@Param			page	query		int	false	"1-based page number"
//	@Param			limit	query		int	false	"page size"
//	@Success		200		{object}	resource.List[resource.Character]
//	@Failure		500		{object}	shared.ErrorResponse
//	@Router			/v1/characters [get]
func (h *CharacterHandler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageParams(r, DefaultCharacterLimit)

	result, err := h.characterService.FindAll(r.Context(), BaseURL(r), page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetCharacter handles GET /v1/characters/{id}
// A missing or malformed ID yields 200 with null data.
//
//	@Summary		Get a character
//	@Description	Returns one character. Unknown IDs return {"data": null}.
//	@Tags			characters
//	@Produce		json
//	@Param			id	path		string	true	"character ID (UUID)"
//	@Success		200	{object}	resource.Detail[resource.Character]
//	@Failure		500	{object}	shared.ErrorResponse
//	@Router			/v1/characters/{id} [get]
func (h *CharacterHandler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawID := chi.URLParam(r, "id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		log.Debug("malformed character ID", slog.String("character_id", rawID))
		shared.RespondWithJSON(w, r, http.StatusOK, resource.Detail[resource.Character]{})
		return
	}

	result, err := h.characterService.FindOne(r.Context(), id, BaseURL(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
