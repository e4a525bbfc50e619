package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/service"
	"github.com/goumiwalid/berth-planning-app/pkg/response"
)

// BerthHandler 泊位模块 HTTP 处理器
type BerthHandler struct {
	berthSvc service.BerthService
}

// NewBerthHandler 创建 BerthHandler
func NewBerthHandler(berthSvc service.BerthService) *BerthHandler {
	return &BerthHandler{berthSvc: berthSvc}
}

// CreateBerth 创建泊位
// POST /api/v1/berths
func (h *BerthHandler) CreateBerth(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBerthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.berthSvc.Create(c.Request.Context(), tenantID, &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrTerminalNotFound) {
			response.NotFound(c, 13001, "码头不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListBerths 泊位列表
// GET /api/v1/berths
func (h *BerthHandler) ListBerths(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	var req dto.BerthListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.berthSvc.List(c.Request.Context(), tenantID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetBerth 泊位详情
// GET /api/v1/berths/:id
func (h *BerthHandler) GetBerth(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	result, err := h.berthSvc.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBerthNotFound) {
			response.NotFound(c, 14001, "泊位不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateBerth 更新泊位
// PUT /api/v1/berths/:id
func (h *BerthHandler) UpdateBerth(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBerthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.berthSvc.Update(c.Request.Context(), tenantID, c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrBerthNotFound) {
			response.NotFound(c, 14001, "泊位不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteBerth 删除泊位（软删除；仍有未完成靠泊计划的泊位拒绝删除）
// DELETE /api/v1/berths/:id
func (h *BerthHandler) DeleteBerth(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.berthSvc.Delete(c.Request.Context(), tenantID, c.Param("id"), callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrBerthNotFound):
			response.NotFound(c, 14001, "泊位不存在")
		case errors.Is(err, service.ErrBerthInUse):
			response.Conflict(c, 14002, "泊位仍有未完成的靠泊计划，不可删除")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
