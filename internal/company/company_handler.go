package company

import (
	"net/http"

	"staffcore/internal/shared/apperror"
	"staffcore/internal/shared/response"
	"staffcore/internal/tenant"

	"github.com/gin-gonic/gin"
)

type RegisterCompanyRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type UpdateBrandingRequest struct {
	PrimaryColor string  `json:"primary_color" binding:"required"`
	LogoURL      *string `json:"logo_url"`
}

type CompanyResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	PrimaryColor string  `json:"primary_color"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Register adalah jalur admin: satu-satunya endpoint yang jalan tanpa
// X-Company-Slug karena company-nya memang belum ada.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	comp, err := h.service.Create(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mapToResponse(*comp), nil)
}

func (h *Handler) GetCurrent(c *gin.Context) {
	comp, ok := tenant.CompanyFromContext(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Missing X-Company-Slug header", nil)
		return
	}
	response.Success(c, http.StatusOK, mapToResponse(*comp), nil)
}

func (h *Handler) UpdateBranding(c *gin.Context) {
	comp, ok := tenant.CompanyFromContext(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Missing X-Company-Slug header", nil)
		return
	}

	var req UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if err := h.service.UpdateBranding(c.Request.Context(), comp.ID.String(), req.PrimaryColor, req.LogoURL); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true}, nil)
}

func mapToResponse(comp Company) CompanyResponse {
	return CompanyResponse{
		ID:           comp.ID.String(),
		Name:         comp.Name,
		Slug:         comp.Slug,
		PrimaryColor: comp.PrimaryColor,
		LogoURL:      comp.LogoURL,
	}
}
