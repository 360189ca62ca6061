package api

import (
	"net/http"

	"github.com/alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	referenceService service.ReferenceService
}

func NewReferenceHandler(referenceService service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// GetBodyParts godoc
// @Summary List body parts
// @Tags Reference
// @Produce json
// @Success 200 {array} domain.BodyPart
// @Router /body-parts [get]
func (h *ReferenceHandler) GetBodyParts(c *gin.Context) {
	bodyParts, err := h.referenceService.ListBodyParts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bodyParts)
}

// GetEquipments godoc
// @Summary List equipment
// @Tags Reference
// @Produce json
// @Success 200 {array} domain.Equipment
// @Router /equipments [get]
func (h *ReferenceHandler) GetEquipments(c *gin.Context) {
	equipment, err := h.referenceService.ListEquipment(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, equipment)
}
