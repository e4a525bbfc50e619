package service

import (
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/repository"
)

// CalendarService 泊位日历订阅接口
// 将单个泊位（或整个码头）的靠泊计划输出为 iCalendar 订阅源，
// 供港口调度台与船公司代理在日历客户端中订阅
type CalendarService interface {
	// BerthCalendar 单泊位日历
	BerthCalendar(ctx context.Context, tenantID, berthID string) (string, error)
	// TenantCalendar 租户全量日历
	TenantCalendar(ctx context.Context, tenantID string) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) BerthCalendar(ctx context.Context, tenantID, berthID string) (string, error) {
	berth, err := s.repo.Berth.GetByID(ctx, berthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBerthNotFound
		}
		s.logger.Error("查询泊位失败", zap.Error(err))
		return "", err
	}
	if berth.Terminal == nil || berth.Terminal.TenantID != tenantID {
		return "", ErrBerthNotFound
	}

	vessels, err := s.repo.Vessel.ListByBerth(ctx, berthID)
	if err != nil {
		s.logger.Error("查询泊位靠泊记录失败", zap.Error(err))
		return "", err
	}

	cal := newCalendar(fmt.Sprintf("泊位 %s 靠泊计划", berth.Name))
	for i := range vessels {
		v := &vessels[i]
		evt := cal.AddEvent(fmt.Sprintf("%s@berth-planning", v.VoyageNumber))
		evt.SetStartAt(v.ETA.UTC())
		evt.SetEndAt(v.ETD.UTC())
		evt.SetSummary(fmt.Sprintf("%s (%s)", v.VesselName, v.VoyageNumber))
		evt.SetLocation(berth.Name)
		evt.SetDescription(fmt.Sprintf("类型: %s / LOA: %.1fm / 吃水: %.1fm / 状态: %s",
			v.VesselType, v.LOA, v.Draft, v.Status))
		evt.SetDtStampTime(v.UpdatedAt.UTC())
	}

	return cal.Serialize(), nil
}

func (s *calendarService) TenantCalendar(ctx context.Context, tenantID string) (string, error) {
	vessels, err := s.repo.Vessel.ListAll(ctx, tenantID)
	if err != nil {
		s.logger.Error("查询船舶列表失败", zap.Error(err))
		return "", err
	}
	berths, err := s.repo.Berth.List(ctx, tenantID, "", true)
	if err != nil {
		s.logger.Error("查询泊位列表失败", zap.Error(err))
		return "", err
	}
	berthIndex := buildBerthIndex(berths)

	cal := newCalendar("靠泊计划")
	for i := range vessels {
		v := &vessels[i]
		location := ""
		if b, ok := berthIndex[v.BerthID]; ok {
			location = b.Name
		}
		evt := cal.AddEvent(fmt.Sprintf("%s@berth-planning", v.VoyageNumber))
		evt.SetStartAt(v.ETA.UTC())
		evt.SetEndAt(v.ETD.UTC())
		evt.SetSummary(fmt.Sprintf("%s (%s)", v.VesselName, v.VoyageNumber))
		evt.SetLocation(location)
		evt.SetDescription(fmt.Sprintf("类型: %s / LOA: %.1fm / 吃水: %.1fm / 状态: %s",
			v.VesselType, v.LOA, v.Draft, v.Status))
		evt.SetDtStampTime(v.UpdatedAt.UTC())
	}

	return cal.Serialize(), nil
}

func newCalendar(name string) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//berth-planning//calendar//CN")
	cal.SetName(name)
	cal.SetXWRCalName(name)
	return cal
}
