package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/services"
	"github.com/mr-pathfinder/roadmap-service/internal/utils"
)

type RoadmapHandler struct {
	BaseHandler
	roadmaps services.RoadmapService
	quizzes  services.QuizService
}

func NewRoadmapHandler(roadmaps services.RoadmapService, quizzes services.QuizService, logger utils.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		BaseHandler: NewBaseHandler(logger),
		roadmaps:    roadmaps,
		quizzes:     quizzes,
	}
}

// Generate builds a new roadmap for the authenticated student.
// @Summary Generate a roadmap
// @Tags roadmap
// @Accept json
// @Produce json
// @Success 201 {object} models.Roadmap
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Roadmap limit reached"
// @Router /roadmap/generate [post]
func (h *RoadmapHandler) Generate(c *gin.Context) {
	h.LogRequest(c, "Generating roadmap")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req models.GenerateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	roadmap, err := h.roadmaps.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, roadmap)
}

// List returns the authenticated user's roadmaps, newest first.
// @Summary List my roadmaps
// @Tags roadmap
// @Produce json
// @Success 200 {array} models.Roadmap
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /roadmap/my-roadmap [get]
func (h *RoadmapHandler) List(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	roadmaps, err := h.roadmaps.List(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roadmaps)
}

// UpdateProgress toggles completion of a phase or project and returns the
// recalculated gamification state.
// @Summary Update roadmap progress
// @Tags roadmap
// @Accept json
// @Produce json
// @Success 200 {object} models.ProgressResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not the roadmap owner"
// @Failure 404 {object} ErrorResponse "Roadmap or item not found"
// @Router /roadmap/progress [put]
func (h *RoadmapHandler) UpdateProgress(c *gin.Context) {
	h.LogRequest(c, "Updating roadmap progress")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.roadmaps.UpdateProgress(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateQuiz returns a short quiz for a roadmap phase.
// @Summary Generate a phase quiz
// @Tags roadmap
// @Accept json
// @Produce json
// @Success 200 {object} models.Quiz
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Router /roadmap/quiz [post]
func (h *RoadmapHandler) GenerateQuiz(c *gin.Context) {
	h.LogRequest(c, "Generating phase quiz")

	var req models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	quiz, err := h.quizzes.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// ValidateQuiz grades free-text answers for a roadmap phase.
// @Summary Validate phase quiz answers
// @Tags roadmap
// @Accept json
// @Produce json
// @Success 200 {object} models.QuizEvaluation
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Router /roadmap/validate-quiz [post]
func (h *RoadmapHandler) ValidateQuiz(c *gin.Context) {
	h.LogRequest(c, "Validating phase quiz")

	var req models.ValidateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	evaluation, err := h.quizzes.Validate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluation)
}
