package apikey

import (
	"errors"
	"net/http"

	"assetpipe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the key management endpoints behind the session
// middleware. Keys themselves are only accepted by the public v1 group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/keys", h.Create)
	rg.GET("/keys", h.List)
	rg.DELETE("/keys/:id", h.Revoke)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	// the name is optional, so an empty or missing body is fine
	var req CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = CreateKeyRequest{}
	}

	plaintext, key, err := h.service.Issue(c.Request.Context(), userID, req.Name)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create api key")
		return
	}

	response.Success(c, http.StatusCreated, CreateKeyResponse{Key: plaintext, APIKey: key})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	keys, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list api keys")
		return
	}

	response.Success(c, http.StatusOK, keys)
}

func (h *Handler) Revoke(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	err := h.service.Revoke(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to revoke api key")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"revoked": true})
}
