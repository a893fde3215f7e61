package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/api/shared"
	"github.com/phrazzld/avatar-api/internal/platform/logger"
	"github.com/phrazzld/avatar-api/internal/service"
)

// SkillHandler handles the /v1/skills endpoints.
type SkillHandler struct {
	skillService service.SkillService
	logger       *slog.Logger
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService service.SkillService, logger *slog.Logger) *SkillHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillHandler{
		skillService: skillService,
		logger:       logger.With(slog.String("component", "skill_handler")),
	}
}

// ListSkills handles GET /v1/skills
//
//	@Summary		List top-level skills
//	@Description	Returns top-level skills with their nested sub-skills. Pagination applies when page or limit is given; page alone uses a limit of 5.
//	@Tags			skills
//	@Produce		json
//	@Param			page	query		int	false	"1-based page number"
//	@Param			limit	query		int	false	"page size"
//	@Success		200		{object}	resource.List[resource.Skill]
//	@Failure		500		{object}	shared.ErrorResponse
//	@Router			/v1/skills [get]
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageParams(r, DefaultSkillLimit)

	result, err := h.skillService.FindAll(r.Context(), BaseURL(r), page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetSkill handles GET /v1/skills/{id}
//
//	@Summary		Get a skill
//	@Description	Returns one skill, top-level or sub-skill, with its nested sub-skills.
//	@Tags			skills
//	@Produce		json
//	@Param			id	path		string	true	"skill ID (UUID)"
//	@Success		200	{object}	resource.Detail[resource.Skill]
//	@Failure		404	{object}	shared.ErrorResponse
//	@Failure		500	{object}	shared.ErrorResponse
//	@Router			/v1/skills/{id} [get]
func (h *SkillHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawID := chi.URLParam(r, "id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		log.Debug("malformed skill ID", slog.String("skill_id", rawID))
		respondNotFound(w, r, err)
		return
	}

	result, err := h.skillService.FindOne(r.Context(), id, BaseURL(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if result.Data == nil {
		respondNotFound(w, r, nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
