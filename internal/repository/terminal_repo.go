package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/model"
)

// TerminalRepository 码头数据访问接口（参考数据，只读居多）
type TerminalRepository interface {
	GetByID(ctx context.Context, id string) (*model.Terminal, error)
	List(ctx context.Context, tenantID string) ([]model.Terminal, error)
}

type terminalRepo struct {
	db *gorm.DB
}

// NewTerminalRepo 创建 TerminalRepository 实例
func NewTerminalRepo(db *gorm.DB) TerminalRepository {
	return &terminalRepo{db: db}
}

func (r *terminalRepo) GetByID(ctx context.Context, id string) (*model.Terminal, error) {
	var terminal model.Terminal
	err := r.db.WithContext(ctx).
		Where("terminal_id = ?", id).
		First(&terminal).Error
	if err != nil {
		return nil, err
	}
	return &terminal, nil
}

func (r *terminalRepo) List(ctx context.Context, tenantID string) ([]model.Terminal, error) {
	var terminals []model.Terminal
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("name ASC").
		Find(&terminals).Error
	return terminals, err
}
