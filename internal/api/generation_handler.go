package api

import (
	"net/http"
	"strconv"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
)

const msgLimitInvalid = "limit must be a positive integer"

type GenerationHandler struct {
	generationService service.GenerationService
}

func NewGenerationHandler(generationService service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// GetGenerations godoc
// @Summary List recent exercise generation attempts
// @Description Newest first, failed attempts included.
// @Tags Generations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of attempts (default 20, max 100)"
// @Success 200 {array} domain.GenerationRecord
// @Failure 400 {object} gin.H "Invalid limit"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /generations [get]
func (h *GenerationHandler) GetGenerations(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			respondWithError(c, domain.Validation(msgLimitInvalid))
			return
		}
		limit = parsed
	}

	records, err := h.generationService.Recent(c.Request.Context(), session.UserID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
