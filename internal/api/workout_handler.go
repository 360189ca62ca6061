package api

import (
	"encoding/json"
	"net/http"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgListNotFound     = "Workout list not found or you are not authorized"
	msgExerciseNotFound = "Exercise not found in this workout list"
	msgExerciseUpdated  = "Exercise updated successfully"
	msgListDeleted      = "Workout list deleted successfully"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
	exportService  service.ExportService
}

// NewWorkoutHandler creates a WorkoutHandler. exportService may be nil when
// no object storage is configured.
func NewWorkoutHandler(workoutService service.WorkoutService, exportService service.ExportService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		exportService:  exportService,
	}
}

// --- Request/Response Structs ---

type CreateWorkoutListRequest struct {
	BodyPartID int64 `json:"BodyPartId"`
	// kept raw so a non-array value reads as missing
	EquipmentIDs json.RawMessage `json:"equipmentIds" swaggertype:"array,integer"`
	Name         string          `json:"name"`
}

type UpdateExerciseRequest struct {
	Sets        *int `json:"sets"`
	Repetitions *int `json:"repetitions"`
}

type UpdateExerciseResponse struct {
	Message  string          `json:"message"`
	Exercise domain.Exercise `json:"exercise"`
}

// equipmentIDs returns nil unless raw is a JSON array of integers.
func (r CreateWorkoutListRequest) equipmentIDs() []int64 {
	var ids []int64
	if err := json.Unmarshal(r.EquipmentIDs, &ids); err != nil || ids == nil {
		return nil
	}
	return ids
}

// --- Handler Methods ---

// CreateWorkoutList godoc
// @Summary Generate and save a workout list
// @Description Asks the AI for 5 exercises for the body part and equipment, and stores them as a new list.
// @Tags WorkoutLists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param list body CreateWorkoutListRequest true "Body part, 1 to 2 equipment ids and an optional name"
// @Success 201 {object} domain.WorkoutList
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Body part or equipment not found"
// @Failure 429 {object} gin.H "Too many generations"
// @Failure 500 {object} gin.H "Generation failed"
// @Router /workoutLists [post]
func (h *WorkoutHandler) CreateWorkoutList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req CreateWorkoutListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.workoutService.Create(c.Request.Context(), session.UserID, domain.CreateWorkoutListInput{
		BodyPartID:   req.BodyPartID,
		EquipmentIDs: req.equipmentIDs(),
		Name:         req.Name,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

// GetWorkoutLists godoc
// @Summary List the caller's workout lists, newest first
// @Tags WorkoutLists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutList
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /workoutLists [get]
func (h *WorkoutHandler) GetWorkoutLists(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	lists, err := h.workoutService.List(c.Request.Context(), session.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if lists == nil {
		lists = []domain.WorkoutList{}
	}

	c.JSON(http.StatusOK, lists)
}

// GetWorkoutList godoc
// @Summary Get one of the caller's workout lists
// @Tags WorkoutLists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout list ID"
// @Success 200 {object} domain.WorkoutList
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Not found or not owned"
// @Router /workoutLists/{id} [get]
func (h *WorkoutHandler) GetWorkoutList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		respondWithError(c, domain.NotFound(msgListNotFound))
		return
	}

	list, err := h.workoutService.Get(c.Request.Context(), session.UserID, listID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateExercise godoc
// @Summary Change sets and/or repetitions of an exercise
// @Tags WorkoutLists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout list ID"
// @Param exerciseId path int true "Exercise ID"
// @Param counts body UpdateExerciseRequest true "New sets and/or repetitions"
// @Success 200 {object} UpdateExerciseResponse
// @Failure 400 {object} gin.H "Nothing to update or non-positive value"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "List or exercise not found"
// @Router /workoutLists/{id}/exercises/{exerciseId} [patch]
func (h *WorkoutHandler) UpdateExercise(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	// gin needs one wildcard name per segment, so the list id is ":id" here too
	listID, ok := pathID(c, "id")
	if !ok {
		respondWithError(c, domain.NotFound(msgListNotFound))
		return
	}
	exerciseID, ok := pathID(c, "exerciseId")
	if !ok {
		respondWithError(c, domain.NotFound(msgExerciseNotFound))
		return
	}

	var req UpdateExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	exercise, err := h.workoutService.UpdateExercise(c.Request.Context(), session.UserID, listID, exerciseID, domain.UpdateExerciseInput{
		Sets:        req.Sets,
		Repetitions: req.Repetitions,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateExerciseResponse{
		Message:  msgExerciseUpdated,
		Exercise: *exercise,
	})
}

// DeleteWorkoutList godoc
// @Summary Delete a workout list and its exercises
// @Tags WorkoutLists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout list ID"
// @Success 200 {object} gin.H "Workout list deleted successfully"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Not found or not owned"
// @Router /workoutLists/{id} [delete]
func (h *WorkoutHandler) DeleteWorkoutList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		respondWithError(c, domain.NotFound(msgListNotFound))
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), session.UserID, listID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgListDeleted})
}

// ExportWorkoutList godoc
// @Summary Export a workout list as JSON to object storage
// @Description Returns a presigned URL that downloads the list snapshot.
// @Tags WorkoutLists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout list ID"
// @Success 200 {object} service.ExportResult
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Not found or not owned"
// @Failure 500 {object} gin.H "Upload failed"
// @Router /workoutLists/{id}/export [get]
func (h *WorkoutHandler) ExportWorkoutList(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		respondWithError(c, domain.NotFound(msgListNotFound))
		return
	}

	result, err := h.exportService.Export(c.Request.Context(), session.UserID, listID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// requireSession fetches the session set by AuthMiddleware.
func requireSession(c *gin.Context) (domain.Session, bool) {
	session, ok := sessionFromContext(c)
	if !ok {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return domain.Session{}, false
	}
	return session, true
}
