package catalog

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies", h.ListCompanies)
	rg.GET("/companies/:slug", h.GetCompany)
	rg.GET("/companies/:slug/logos", h.GetCompanyLogos)
	rg.GET("/companies/:slug/brand-kit", h.GetBrandKit)
	rg.GET("/search", h.Search)
}

func (h *Handler) ListCompanies(c *gin.Context) {
	page := parseIntDefault(c.Query("page"), 1)
	limit := parseIntDefault(c.Query("limit"), 20)

	result, err := h.service.ListCompanies(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetCompany(c *gin.Context) {
	company, err := h.service.GetCompany(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, company)
}

func (h *Handler) GetCompanyLogos(c *gin.Context) {
	result, err := h.service.GetCompanyLogos(c.Request.Context(),
		c.Param("slug"), c.Query("format"), c.Query("variant"))
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetBrandKit(c *gin.Context) {
	result, err := h.service.GetBrandKit(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Search(c *gin.Context) {
	page := parseIntDefault(c.Query("page"), 1)
	limit := parseIntDefault(c.Query("limit"), 20)

	result, err := h.service.Search(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		if errors.Is(err, ErrQueryTooShort) {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
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
