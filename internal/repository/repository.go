package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Tenant   TenantRepository
	User     UserRepository
	Terminal TerminalRepository
	Berth    BerthRepository
	Vessel   VesselRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Tenant:   NewTenantRepo(db),
		User:     NewUserRepo(db),
		Terminal: NewTerminalRepo(db),
		Berth:    NewBerthRepo(db),
		Vessel:   NewVesselRepo(db),
	}
}
