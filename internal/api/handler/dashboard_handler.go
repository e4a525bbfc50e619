package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/service"
	"github.com/goumiwalid/berth-planning-app/pkg/response"
)

// DashboardHandler 仪表盘模块 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetMetrics 仪表盘指标
// GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	var req dto.MetricsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.dashboardSvc.GetMetrics(c.Request.Context(), tenantID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
