package review

import (
	"errors"
	"net/http"
	"strconv"

	"assetpipe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/submissions/pending", h.GetPendingSubmissions)
	admin.POST("/submissions/:id/approve", h.ApproveSubmission)
	admin.POST("/submissions/:id/reject", h.RejectSubmission)
	admin.GET("/stats", h.GetStats)
}

// GetPendingSubmissions returns the review queue, oldest first.
func (h *Handler) GetPendingSubmissions(c *gin.Context) {
	if !isAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}

	page := parseIntDefault(c.Query("page"), 1)
	limit := parseIntDefault(c.Query("limit"), 20)

	subs, total, err := h.service.ListPending(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, PendingListResponse{
		Submissions: subs,
		Total:       total,
		Page:        page,
		Limit:       limit,
	})
}

// ApproveSubmission runs the approval pipeline for one submission.
func (h *Handler) ApproveSubmission(c *gin.Context) {
	if !isAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}

	reviewerID := c.GetString("user_id")
	if reviewerID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	submissionID := c.Param("id")
	if submissionID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing submission ID")
		return
	}

	result, err := h.service.Approve(c.Request.Context(), submissionID, reviewerID)
	if err != nil {
		var totalFailure *TotalFailureError
		switch {
		case errors.Is(err, ErrSubmissionNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		case errors.Is(err, ErrAlreadyProcessed):
			response.Error(c, http.StatusBadRequest, "ALREADY_PROCESSED", "Submission already processed")
		case errors.Is(err, ErrInvalidCompanyName):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.As(err, &totalFailure):
			response.ErrorWithDetails(c, http.StatusInternalServerError, "ALL_FILES_FAILED",
				"Failed to process any files", totalFailure.Warnings)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// RejectSubmission declines a submission with reviewer notes.
func (h *Handler) RejectSubmission(c *gin.Context) {
	if !isAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}

	reviewerID := c.GetString("user_id")
	if reviewerID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	err := h.service.Reject(c.Request.Context(), c.Param("id"), reviewerID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmissionNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		case errors.Is(err, ErrAlreadyProcessed):
			response.Error(c, http.StatusBadRequest, "ALREADY_PROCESSED", "Submission already processed")
		case errors.Is(err, ErrNotesRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Submission rejected"})
}

func (h *Handler) GetStats(c *gin.Context) {
	if !isAdmin(c) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		return
	}

	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func isAdmin(c *gin.Context) bool {
	role, ok := c.Get("role")
	if !ok {
		return false
	}
	rs, ok := role.(string)
	return ok && rs == "admin"
}

func parseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
