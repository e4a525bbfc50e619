package model

// Terminal 码头表 — 对应 terminals
// 参考数据：由迁移种子创建，极少变更
type Terminal struct {
	TerminalID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"terminal_id"`
	TenantID   string `gorm:"type:uuid;not null"                             json:"tenant_id"`
	Name       string `gorm:"type:varchar(100);not null"                     json:"name"`
	Location   string `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	IsActive   bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Terminal) TableName() string { return "terminals" }
