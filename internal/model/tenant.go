package model

// Tenant 租户表 — 对应 tenants
// 一个租户即一家港务集团；用户、码头、船舶数据均按租户隔离
type Tenant struct {
	TenantID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tenant_id"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Logo     string `gorm:"type:varchar(20)"                               json:"logo,omitempty"`
	IsActive bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Tenant) TableName() string { return "tenants" }
