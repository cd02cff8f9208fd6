package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"staffcore/internal/shared/apperror"
	"staffcore/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	processor *Processor
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewHandler(service Service, processor *Processor) *Handler {
	return &Handler{
		service:   service,
		processor: processor,
		logger:    zap.L().Named("payroll.handler"),
	}
}

// NewHandlerWithRedis menyalakan cache respons payslip dan dukungan
// Idempotency-Key di endpoint yang mahal.
func NewHandlerWithRedis(service Service, processor *Processor, rdb *redis.Client) *Handler {
	h := NewHandler(service, processor)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("path", c.FullPath()),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// releaseIdempotency melepas lock dari middleware dan menyimpan respons
// sukses di bawah cache key, kalau idempotency aktif untuk request ini.
func (h *Handler) releaseIdempotency(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}
	if ck := c.GetString("idempotency_cache_key"); ck != "" && resp != nil {
		if payload, err := json.Marshal(resp); err == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
		}
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

func (h *Handler) CreatePeriod(c *gin.Context) {
	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.CreatePeriod(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPeriods(c *gin.Context) {
	resp, err := h.service.GetPeriods(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPeriod(c *gin.Context) {
	resp, err := h.service.GetPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeletePeriod(c *gin.Context) {
	if err := h.service.DeletePeriod(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) ProcessPeriod(c *gin.Context) {
	result, err := h.processor.ProcessPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := ProcessResultResponse{
		Succeeded:         result.Succeeded,
		FailedEmployeeIDs: result.FailedEmployeeIDs,
	}
	h.releaseIdempotency(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) FinalizePeriod(c *gin.Context) {
	if err := h.service.FinalizePeriod(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := gin.H{"finalized": true}
	h.releaseIdempotency(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PeriodSummary(c *gin.Context) {
	resp, err := h.service.PeriodSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Calculate menjalankan pipeline tanpa menyimpan apa pun; dipakai untuk
// preview sebelum generate.
func (h *Handler) Calculate(c *gin.Context) {
	periodID := c.Query("period_id")
	if periodID == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"period_id query parameter is required", nil)
		return
	}

	result, err := h.service.Calculate(c.Request.Context(), c.Param("id"), periodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := mapPayResultToResponse(result)
	if len(result.Warnings) > 0 {
		response.SuccessWithWarnings(c, http.StatusOK, resp, result.Warnings)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GeneratePayslip(c *gin.Context) {
	periodID := c.Query("period_id")
	if periodID == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"period_id query parameter is required", nil)
		return
	}

	resp, err := h.service.GeneratePayslip(c.Request.Context(), c.Param("id"), periodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.releaseIdempotency(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPayslips(c *gin.Context) {
	periodID := c.Query("period_id")
	if periodID == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"period_id query parameter is required", nil)
		return
	}

	// Cache baca singkat; daftar payslip dibaca jauh lebih sering
	// daripada berubah.
	cacheKey := "payslips:" + c.GetString("company_id") + ":" + periodID
	if h.rdb != nil {
		if val, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached []PayslipResponse
			if json.Unmarshal([]byte(val), &cached) == nil {
				response.Success(c, http.StatusOK, cached, nil)
				return
			}
		}
	}

	resp, err := h.service.GetPayslips(c.Request.Context(), periodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, 30*time.Second).Err()
		}
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateBonus(c *gin.Context) {
	var req UpdateBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.UpdateBonus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
