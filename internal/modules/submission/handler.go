package submission

import (
	"errors"
	"net/http"

	"assetpipe/internal/domain"
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
	rg.POST("/submissions", h.Create)
	rg.GET("/submissions", h.ListMine)
}

// Create accepts a multipart form: company_name, optional company_domain,
// repeated "files" parts with parallel "variants" and "color_modes" fields.
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "multipart form expected")
		return
	}

	headers := form.File["files"]
	variants := form.Value["variants"]
	colorModes := form.Value["color_modes"]
	if len(variants) != len(headers) || len(colorModes) != len(headers) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrFieldMismatch.Error())
		return
	}

	meta := make([]FileMeta, len(headers))
	for i := range headers {
		meta[i] = FileMeta{
			Variant:   domain.LogoVariant(variants[i]),
			ColorMode: domain.ColorMode(colorModes[i]),
		}
	}

	companyName := c.PostForm("company_name")
	companyDomain := c.PostForm("company_domain")

	result, err := h.service.Create(c.Request.Context(), userID, companyName, companyDomain, headers, meta)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrCompanyNameRequired),
			errors.Is(err, ErrNoFiles),
			errors.Is(err, ErrFieldMismatch),
			errors.Is(err, ErrEmptyFile),
			errors.Is(err, ErrUnsupportedFormat),
			errors.Is(err, ErrInvalidVariant),
			errors.Is(err, ErrInvalidColorMode):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create submission")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	subs, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Submissions: subs})
}
