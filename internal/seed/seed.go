// Package seed 开发环境演示数据
// 参考数据（租户/码头/泊位）由迁移种子创建；这里只补充船舶演示记录，
// 通过 feature.seed_demo_vessels 开关控制，已有数据时跳过
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
)

// 迁移种子中的固定 ID
const (
	demoTenantID    = "11111111-1111-1111-1111-111111111111"
	ctaTerminalID   = "bbbbbbbb-0000-0000-0000-000000000001"
	ectTerminalID   = "bbbbbbbb-0000-0000-0000-000000000002"
	roroTerminalID  = "bbbbbbbb-0000-0000-0000-000000000003"
	ctaBerth1ID     = "cccccccc-0000-0000-0000-000000000001"
	ctaBerth2ID     = "cccccccc-0000-0000-0000-000000000002"
	ectBerthAID     = "cccccccc-0000-0000-0000-000000000004"
	roroBerth1ID    = "cccccccc-0000-0000-0000-000000000006"
	demoPlannerUser = "aaaaaaaa-0000-0000-0000-000000000002"
)

// DemoVessels 写入演示船舶数据（幂等：租户已有船舶时跳过）
func DemoVessels(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	existing, err := repo.Vessel.ListAll(ctx, demoTenantID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("演示船舶数据已存在，跳过")
		return nil
	}

	today := time.Now().Truncate(24 * time.Hour)
	planner := demoPlannerUser

	vessels := []model.Vessel{
		{
			TenantID:     demoTenantID,
			VoyageNumber: "2026-001-E",
			VesselName:   "MSC Hamburg Express",
			VesselType:   model.VesselTypeContainer,
			Operator:     "MSC",
			RouteInfo:    "Rotterdam - Hamburg - Shanghai",
			ETA:          today.Add(8 * time.Hour),
			ETD:          today.Add(20 * time.Hour),
			LOA:          366,
			Draft:        15.2,
			TerminalID:   ctaTerminalID,
			BerthID:      ctaBerth1ID,
			Status:       model.StatusConfirmed,
			Version:      1,
		},
		{
			TenantID:     demoTenantID,
			VoyageNumber: "2026-002-W",
			VesselName:   "Ever Glory",
			VesselType:   model.VesselTypeContainer,
			Operator:     "Evergreen",
			RouteInfo:    "Hamburg - Felixstowe - New York",
			ETA:          today.Add(26 * time.Hour),
			ETD:          today.Add(44 * time.Hour),
			LOA:          334,
			Draft:        14.5,
			TerminalID:   ctaTerminalID,
			BerthID:      ctaBerth2ID,
			Status:       model.StatusPlanned,
			Version:      1,
		},
		{
			TenantID:     demoTenantID,
			VoyageNumber: "2026-003-N",
			VesselName:   "Atlantic Carrier",
			VesselType:   model.VesselTypeBulk,
			Operator:     "Oldendorff",
			RouteInfo:    "Narvik - Hamburg",
			ETA:          today.Add(30 * time.Hour),
			ETD:          today.Add(54 * time.Hour),
			LOA:          292,
			Draft:        13.8,
			TerminalID:   ectTerminalID,
			BerthID:      ectBerthAID,
			Status:       model.StatusPlanned,
			Version:      1,
		},
		{
			TenantID:     demoTenantID,
			VoyageNumber: "2026-004-S",
			VesselName:   "Nordic Voyager",
			VesselType:   model.VesselTypeRoRo,
			Operator:     "DFDS",
			RouteInfo:    "Gothenburg - Hamburg",
			ETA:          today.Add(10 * time.Hour),
			ETD:          today.Add(18 * time.Hour),
			LOA:          195,
			Draft:        7.4,
			TerminalID:   roroTerminalID,
			BerthID:      roroBerth1ID,
			Status:       model.StatusAtBerth,
			Version:      1,
		},
	}

	for i := range vessels {
		vessels[i].CreatedBy = &planner
		vessels[i].UpdatedBy = &planner
		if err := repo.Vessel.Create(ctx, &vessels[i]); err != nil {
			return err
		}
	}

	logger.Info("演示船舶数据写入完成", zap.Int("count", len(vessels)))
	return nil
}
