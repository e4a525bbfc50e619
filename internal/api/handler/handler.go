package handler

import "github.com/goumiwalid/berth-planning-app/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Terminal  *TerminalHandler
	Berth     *BerthHandler
	Vessel    *VesselHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	Calendar  *CalendarHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		User:      NewUserHandler(svc.User),
		Terminal:  NewTerminalHandler(svc.Terminal),
		Berth:     NewBerthHandler(svc.Berth),
		Vessel:    NewVesselHandler(svc.Vessel),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Export:    NewExportHandler(svc.Export),
		Calendar:  NewCalendarHandler(svc.Calendar),
	}
}
