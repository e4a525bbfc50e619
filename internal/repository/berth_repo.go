package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/model"
)

// BerthRepository 泊位数据访问接口
type BerthRepository interface {
	Create(ctx context.Context, berth *model.Berth) error
	GetByID(ctx context.Context, id string) (*model.Berth, error)
	List(ctx context.Context, tenantID, terminalID string, includeInactive bool) ([]model.Berth, error)
	Update(ctx context.Context, berth *model.Berth) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type berthRepo struct {
	db *gorm.DB
}

// NewBerthRepo 创建 BerthRepository 实例
func NewBerthRepo(db *gorm.DB) BerthRepository {
	return &berthRepo{db: db}
}

func (r *berthRepo) Create(ctx context.Context, berth *model.Berth) error {
	return r.db.WithContext(ctx).Create(berth).Error
}

func (r *berthRepo) GetByID(ctx context.Context, id string) (*model.Berth, error) {
	var berth model.Berth
	err := r.db.WithContext(ctx).
		Preload("Terminal").
		Where("berth_id = ?", id).
		First(&berth).Error
	if err != nil {
		return nil, err
	}
	return &berth, nil
}

func (r *berthRepo) List(ctx context.Context, tenantID, terminalID string, includeInactive bool) ([]model.Berth, error) {
	var berths []model.Berth
	db := r.db.WithContext(ctx).
		Joins("JOIN terminals ON terminals.terminal_id = berths.terminal_id").
		Where("terminals.tenant_id = ?", tenantID)

	if terminalID != "" {
		db = db.Where("berths.terminal_id = ?", terminalID)
	}
	if !includeInactive {
		db = db.Where("berths.is_active = ?", true)
	}

	err := db.Preload("Terminal").
		Order("berths.terminal_id ASC, berths.position ASC NULLS LAST, berths.name ASC").
		Find(&berths).Error
	return berths, err
}

func (r *berthRepo) Update(ctx context.Context, berth *model.Berth) error {
	return r.db.WithContext(ctx).Save(berth).Error
}

func (r *berthRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Berth{}).
		Where("berth_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
