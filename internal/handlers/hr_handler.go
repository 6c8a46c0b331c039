package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
	"github.com/mr-pathfinder/roadmap-service/internal/services"
	"github.com/mr-pathfinder/roadmap-service/internal/utils"
)

type HRHandler struct {
	BaseHandler
	service services.CandidateService
}

func NewHRHandler(service services.CandidateService, logger utils.Logger) *HRHandler {
	return &HRHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// parseCandidateFilters reads the shared search query parameters.
func parseCandidateFilters(c *gin.Context) repositories.CandidateFilters {
	filters := repositories.CandidateFilters{
		Skill: strings.TrimSpace(c.Query("skill")),
	}

	raw := c.Query("minScore")
	if raw == "" {
		raw = c.Query("min_score")
	}
	if raw != "" {
		if minScore, err := strconv.Atoi(raw); err == nil {
			filters.MinScore = &minScore
		}
	}

	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filters.Limit = limit
		}
	}

	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			filters.Offset = offset
		}
	}

	return filters
}

// Search returns the candidate directory, filtered and sorted by readiness.
// @Summary Search candidates
// @Tags hr
// @Produce json
// @Param skill query string false "Match against career goal, name or interests"
// @Param minScore query int false "Minimum readiness score"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.User
// @Failure 403 {object} ErrorResponse "HR role required"
// @Router /hr/search [get]
func (h *HRHandler) Search(c *gin.Context) {
	h.LogRequest(c, "Searching candidates")

	candidates, err := h.service.Search(c.Request.Context(), parseCandidateFilters(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// Export streams the current search results as an xlsx workbook.
// @Summary Export candidates to Excel
// @Tags hr
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse "HR role required"
// @Router /hr/export [get]
func (h *HRHandler) Export(c *gin.Context) {
	h.LogRequest(c, "Exporting candidates")

	data, err := h.service.Export(c.Request.Context(), parseCandidateFilters(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("candidates-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Alerts returns recent candidate registration alerts.
// @Summary List candidate alerts
// @Tags hr
// @Produce json
// @Param limit query int false "Maximum alerts to return (default 50)"
// @Success 200 {array} models.CandidateAlert
// @Failure 403 {object} ErrorResponse "HR role required"
// @Router /hr/alerts [get]
func (h *HRHandler) Alerts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	alerts, err := h.service.Alerts(c.Request.Context(), limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// Delete removes a candidate account.
// @Summary Delete a candidate
// @Tags hr
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Target is not a student account"
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Router /hr/candidate/{id} [delete]
func (h *HRHandler) Delete(c *gin.Context) {
	h.LogRequest(c, "Deleting candidate")

	candidateID := strings.TrimSpace(c.Param("id"))
	if candidateID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid candidate ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), candidateID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Candidate deleted"})
}

// UpdateContact updates a candidate's contact details.
// @Summary Update candidate contact details
// @Tags hr
// @Accept json
// @Produce json
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /hr/candidate/{id} [put]
func (h *HRHandler) UpdateContact(c *gin.Context) {
	h.LogRequest(c, "Updating candidate contact")

	candidateID := strings.TrimSpace(c.Param("id"))
	if candidateID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid candidate ID"})
		return
	}

	var req models.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	candidate, err := h.service.UpdateContact(c.Request.Context(), candidateID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// Reset wipes all student accounts and re-arms the demo seeder.
// @Summary Reset the candidate directory
// @Tags hr
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse "HR role required"
// @Router /hr/reset [post]
func (h *HRHandler) Reset(c *gin.Context) {
	h.LogRequest(c, "Resetting candidate directory")

	removed, err := h.service.Reset(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Candidate directory reset",
		Data:    gin.H{"removed": removed},
	})
}
