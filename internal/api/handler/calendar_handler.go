package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goumiwalid/berth-planning-app/internal/service"
	"github.com/goumiwalid/berth-planning-app/pkg/response"
)

// CalendarHandler 日历订阅模块 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// BerthCalendar 单泊位 iCalendar 订阅源
// GET /api/v1/calendar/berths/:id.ics
func (h *CalendarHandler) BerthCalendar(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	ical, err := h.calendarSvc.BerthCalendar(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBerthNotFound) {
			response.NotFound(c, 14001, "泊位不存在")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=berth.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ical))
}

// TenantCalendar 租户全量 iCalendar 订阅源
// GET /api/v1/calendar/vessels.ics
func (h *CalendarHandler) TenantCalendar(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	ical, err := h.calendarSvc.TenantCalendar(c.Request.Context(), tenantID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=vessels.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ical))
}
