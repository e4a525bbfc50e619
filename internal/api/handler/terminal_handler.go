package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/goumiwalid/berth-planning-app/internal/service"
	"github.com/goumiwalid/berth-planning-app/pkg/response"
)

// TerminalHandler 码头模块 HTTP 处理器（参考数据，只读）
type TerminalHandler struct {
	terminalSvc service.TerminalService
}

// NewTerminalHandler 创建 TerminalHandler
func NewTerminalHandler(terminalSvc service.TerminalService) *TerminalHandler {
	return &TerminalHandler{terminalSvc: terminalSvc}
}

// ListTerminals 码头列表
// GET /api/v1/terminals
func (h *TerminalHandler) ListTerminals(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	result, err := h.terminalSvc.List(c.Request.Context(), tenantID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetTerminal 码头详情
// GET /api/v1/terminals/:id
func (h *TerminalHandler) GetTerminal(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	result, err := h.terminalSvc.GetByID(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTerminalNotFound) {
			response.NotFound(c, 13001, "码头不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
