package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
)

// DashboardService 仪表盘指标业务接口
// 全部指标按需重算，无持久状态
type DashboardService interface {
	GetMetrics(ctx context.Context, tenantID string, req *dto.MetricsRequest) (*dto.DashboardMetrics, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) GetMetrics(ctx context.Context, tenantID string, req *dto.MetricsRequest) (*dto.DashboardMetrics, error) {
	vessels, err := s.repo.Vessel.ListAll(ctx, tenantID)
	if err != nil {
		s.logger.Error("查询船舶列表失败", zap.Error(err))
		return nil, err
	}
	berths, err := s.repo.Berth.List(ctx, tenantID, "", false)
	if err != nil {
		s.logger.Error("查询泊位列表失败", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	from, to := resolveWindow(req, now)

	return ComputeMetrics(vessels, len(berths), from, to, now), nil
}

// resolveWindow 解析指标窗口，缺省为 [今日零时, +24h)
func resolveWindow(req *dto.MetricsRequest, now time.Time) (time.Time, time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from, to := dayStart, dayStart.Add(24*time.Hour)

	if req != nil && req.From != "" && req.To != "" {
		f, err1 := time.Parse(time.RFC3339, req.From)
		t, err2 := time.Parse(time.RFC3339, req.To)
		if err1 == nil && err2 == nil && f.Before(t) {
			from, to = f, t
		}
	}
	return from, to
}

// ComputeMetrics 指标聚合（纯函数）
//   - upcomingArrivals：ETA 落在 (now, now+24h) 的船舶数
//   - berthUtilization：occupiedBerthHours / (berthCount * windowHours) * 100，
//     占用小时为船舶 [ETA, ETD) 与窗口的重叠时长（裁剪到窗口边界），结果钳制到 [0,100]
//   - operationalDelays：status=delayed 的船舶数
//   - dailyThroughput：按 ETA 日历日分桶，最近 7 天
func ComputeMetrics(vessels []model.Vessel, berthCount int, from, to, now time.Time) *dto.DashboardMetrics {
	metrics := &dto.DashboardMetrics{
		TotalVessels:  len(vessels),
		VesselsByType: make(map[string]int),
	}

	upcomingCutoff := now.Add(24 * time.Hour)
	var occupiedHours float64
	var totalTurnaroundH float64

	for i := range vessels {
		v := &vessels[i]

		metrics.VesselsByType[v.VesselType]++

		if v.ETA.After(now) && v.ETA.Before(upcomingCutoff) {
			metrics.UpcomingArrivals++
		}
		if v.Status == model.StatusDelayed {
			metrics.OperationalDelays++
		}

		// 窗口重叠时长（裁剪到 [from, to)）
		start, end := v.ETA, v.ETD
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if start.Before(end) {
			occupiedHours += end.Sub(start).Hours()
		}

		totalTurnaroundH += v.ETD.Sub(v.ETA).Hours()
	}

	windowHours := to.Sub(from).Hours()
	if berthCount > 0 && windowHours > 0 {
		utilization := occupiedHours / (float64(berthCount) * windowHours) * 100
		if utilization < 0 {
			utilization = 0
		}
		if utilization > 100 {
			utilization = 100
		}
		metrics.BerthUtilization = utilization
	}

	if len(vessels) > 0 {
		metrics.AvgTurnaroundH = totalTurnaroundH / float64(len(vessels))
	}

	// 最近 7 天吞吐（含当天）
	buckets := make(map[string]int)
	for i := range vessels {
		buckets[vessels[i].ETA.Format("2006-01-02")]++
	}
	metrics.DailyThroughput = make([]dto.DailyThroughput, 0, 7)
	for d := 6; d >= 0; d-- {
		day := now.AddDate(0, 0, -d).Format("2006-01-02")
		metrics.DailyThroughput = append(metrics.DailyThroughput, dto.DailyThroughput{
			Date:  day,
			Count: buckets[day],
		})
	}

	return metrics
}
