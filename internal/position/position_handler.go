package position

import (
	"net/http"

	"staffcore/internal/shared/apperror"
	"staffcore/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type CreatePositionRequest struct {
	Title        string  `json:"title" binding:"required"`
	DepartmentID *string `json:"department_id"`
}

type PositionResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	Title        string  `json:"title"`
	DepartmentID *string `json:"department_id,omitempty"`
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

func (h *Handler) Create(c *gin.Context) {
	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	pos, err := h.service.Create(c.Request.Context(), req.Title, req.DepartmentID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mapToResponse(*pos), nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	positions, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func mapToResponse(p Position) PositionResponse {
	resp := PositionResponse{
		ID:        p.ID.String(),
		CompanyID: p.CompanyID.String(),
		Title:     p.Title,
	}
	if p.DepartmentID != nil {
		v := p.DepartmentID.String()
		resp.DepartmentID = &v
	}
	return resp
}
