package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/model"
	pkgerrors "github.com/goumiwalid/berth-planning-app/pkg/errors"
)

// VesselFilter 船舶列表过滤条件
type VesselFilter struct {
	TerminalID string
	BerthID    string
	VesselType string
	Status     string
	From       *time.Time // 占用窗口与 [From, To) 相交
	To         *time.Time
	Search     string // 船名/航次号模糊匹配
}

// VesselRepository 船舶靠泊记录数据访问接口
type VesselRepository interface {
	Create(ctx context.Context, vessel *model.Vessel) error
	GetByVoyageNumber(ctx context.Context, tenantID, voyageNumber string) (*model.Vessel, error)
	List(ctx context.Context, tenantID string, filter *VesselFilter, offset, limit int) ([]model.Vessel, int64, error)
	ListAll(ctx context.Context, tenantID string) ([]model.Vessel, error)
	ListByBerth(ctx context.Context, berthID string) ([]model.Vessel, error)
	VoyageNumberExists(ctx context.Context, tenantID, voyageNumber, excludeVoyageNumber string) (bool, error)
	CountFutureByBerth(ctx context.Context, berthID string, after time.Time) (int64, error)
	Update(ctx context.Context, vessel *model.Vessel) error
	Delete(ctx context.Context, tenantID, voyageNumber string) (int64, error)
	Clear(ctx context.Context, tenantID string) error
}

type vesselRepo struct {
	db *gorm.DB
}

// NewVesselRepo 创建 VesselRepository 实例
func NewVesselRepo(db *gorm.DB) VesselRepository {
	return &vesselRepo{db: db}
}

func (r *vesselRepo) Create(ctx context.Context, vessel *model.Vessel) error {
	return r.db.WithContext(ctx).Create(vessel).Error
}

func (r *vesselRepo) GetByVoyageNumber(ctx context.Context, tenantID, voyageNumber string) (*model.Vessel, error) {
	var vessel model.Vessel
	err := r.db.WithContext(ctx).
		Preload("Terminal").
		Preload("Berth").
		Where("tenant_id = ? AND voyage_number = ?", tenantID, voyageNumber).
		First(&vessel).Error
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

func (r *vesselRepo) List(ctx context.Context, tenantID string, filter *VesselFilter, offset, limit int) ([]model.Vessel, int64, error) {
	var vessels []model.Vessel
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Vessel{}).Where("tenant_id = ?", tenantID)

	if filter != nil {
		if filter.TerminalID != "" {
			db = db.Where("terminal_id = ?", filter.TerminalID)
		}
		if filter.BerthID != "" {
			db = db.Where("berth_id = ?", filter.BerthID)
		}
		if filter.VesselType != "" {
			db = db.Where("vessel_type = ?", filter.VesselType)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		// 开区间相交：eta < To AND From < etd
		if filter.From != nil && filter.To != nil {
			db = db.Where("eta < ? AND etd > ?", *filter.To, *filter.From)
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			db = db.Where("vessel_name ILIKE ? OR voyage_number ILIKE ?", like, like)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Terminal").
		Preload("Berth").
		Order("eta ASC").
		Offset(offset).Limit(limit).
		Find(&vessels).Error
	return vessels, total, err
}

func (r *vesselRepo) ListAll(ctx context.Context, tenantID string) ([]model.Vessel, error) {
	var vessels []model.Vessel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("eta ASC").
		Find(&vessels).Error
	return vessels, err
}

func (r *vesselRepo) ListByBerth(ctx context.Context, berthID string) ([]model.Vessel, error) {
	var vessels []model.Vessel
	err := r.db.WithContext(ctx).
		Where("berth_id = ?", berthID).
		Order("eta ASC").
		Find(&vessels).Error
	return vessels, err
}

func (r *vesselRepo) VoyageNumberExists(ctx context.Context, tenantID, voyageNumber, excludeVoyageNumber string) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).
		Model(&model.Vessel{}).
		Where("tenant_id = ? AND voyage_number = ?", tenantID, voyageNumber)
	if excludeVoyageNumber != "" {
		db = db.Where("voyage_number <> ?", excludeVoyageNumber)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *vesselRepo) CountFutureByBerth(ctx context.Context, berthID string, after time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Vessel{}).
		Where("berth_id = ? AND etd > ? AND status NOT IN ?", berthID, after,
			[]string{model.StatusCompleted, model.StatusCancelled}).
		Count(&count).Error
	return count, err
}

// Update 带乐观锁的整行更新
// WHERE 条件携带读取时的 version，未命中说明记录已被并发修改
func (r *vesselRepo) Update(ctx context.Context, vessel *model.Vessel) error {
	oldVersion := vessel.Version
	vessel.Version++

	result := r.db.WithContext(ctx).
		Model(&model.Vessel{}).
		Where("vessel_id = ? AND version = ?", vessel.VesselID, oldVersion).
		Select("*").
		Omit("vessel_id", "tenant_id", "created_at", "created_by").
		Updates(vessel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *vesselRepo) Delete(ctx context.Context, tenantID, voyageNumber string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND voyage_number = ?", tenantID, voyageNumber).
		Delete(&model.Vessel{})
	return result.RowsAffected, result.Error
}

func (r *vesselRepo) Clear(ctx context.Context, tenantID string) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&model.Vessel{}).Error
}
