package service

import (
	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/config"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
	"github.com/goumiwalid/berth-planning-app/pkg/jwt"
	"github.com/goumiwalid/berth-planning-app/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth      AuthService
	User      UserService
	Terminal  TerminalService
	Berth     BerthService
	Vessel    VesselService
	Dashboard DashboardService
	Export    ExportService
	Calendar  CalendarService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:      NewUserService(repo, logger),
		Terminal:  NewTerminalService(repo, logger),
		Berth:     NewBerthService(repo, logger),
		Vessel:    NewVesselService(repo, logger),
		Dashboard: NewDashboardService(repo, logger),
		Export:    NewExportService(repo, logger),
		Calendar:  NewCalendarService(repo, logger),
	}
}
