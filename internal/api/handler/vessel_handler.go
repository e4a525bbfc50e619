package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/service"
	pkgerrors "github.com/goumiwalid/berth-planning-app/pkg/errors"
	"github.com/goumiwalid/berth-planning-app/pkg/response"
)

// VesselHandler 船舶靠泊模块 HTTP 处理器
type VesselHandler struct {
	vesselSvc service.VesselService
}

// NewVesselHandler 创建 VesselHandler
func NewVesselHandler(vesselSvc service.VesselService) *VesselHandler {
	return &VesselHandler{vesselSvc: vesselSvc}
}

// CreateVessel 创建靠泊记录
// POST /api/v1/vessels
// 校验失败返回 422 与完整错误清单；冲突不阻断保存，随响应返回
func (h *VesselHandler) CreateVessel(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var draft dto.VesselDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.vesselSvc.Create(c.Request.Context(), tenantID, &draft, callerID)
	if err != nil {
		h.writeVesselError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateVessel 按航次号更新靠泊记录
// PUT /api/v1/vessels/:voyageNumber
func (h *VesselHandler) UpdateVessel(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var draft dto.VesselDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.vesselSvc.Update(c.Request.Context(), tenantID, c.Param("voyageNumber"), &draft, callerID)
	if err != nil {
		h.writeVesselError(c, err)
		return
	}

	response.OK(c, result)
}

// DeleteVessel 按航次号删除靠泊记录（硬删除）
// DELETE /api/v1/vessels/:voyageNumber
func (h *VesselHandler) DeleteVessel(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	if err := h.vesselSvc.Delete(c.Request.Context(), tenantID, c.Param("voyageNumber")); err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			response.NotFound(c, 15001, "船舶靠泊记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ListVessels 靠泊记录列表（分页 + 过滤）
// GET /api/v1/vessels
func (h *VesselHandler) ListVessels(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	var req dto.VesselListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.vesselSvc.List(c.Request.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			response.BadRequest(c, 15002, "时间范围参数无效")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetVessel 按航次号查询靠泊记录
// GET /api/v1/vessels/:voyageNumber
func (h *VesselHandler) GetVessel(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	result, err := h.vesselSvc.GetByVoyageNumber(c.Request.Context(), tenantID, c.Param("voyageNumber"))
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			response.NotFound(c, 15001, "船舶靠泊记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CheckVessel 推测式校验+冲突检查（无副作用，表单编辑时调用）
// POST /api/v1/vessels/check
func (h *VesselHandler) CheckVessel(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	var draft dto.VesselDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.vesselSvc.Check(c.Request.Context(), tenantID, &draft, c.Query("exclude"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ClearVessels 清空租户全部靠泊记录（仅 admin，测试/重置场景）
// DELETE /api/v1/vessels
func (h *VesselHandler) ClearVessels(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	if err := h.vesselSvc.Clear(c.Request.Context(), tenantID); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// writeVesselError 船舶模块错误到 HTTP 响应的统一映射
func (h *VesselHandler) writeVesselError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, response.Response{
			Code:    15003,
			Message: "字段校验未通过",
			Data:    dto.ValidationFailedResponse{Errors: vErr.Errors},
		})
	case errors.Is(err, service.ErrVesselNotFound):
		response.NotFound(c, 15001, "船舶靠泊记录不存在")
	case errors.Is(err, service.ErrBerthNotFound):
		response.NotFound(c, 14001, "泊位不存在")
	case errors.Is(err, service.ErrBerthTerminalMismatch):
		response.BadRequest(c, 15004, "泊位不属于所选码头")
	case errors.Is(err, service.ErrBerthInactive):
		response.BadRequest(c, 15007, "泊位已停用，不可分配")
	case errors.Is(err, service.ErrInvalidStatusTransition):
		response.Conflict(c, 15005, "状态迁移不合法")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 15006, "数据已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}
