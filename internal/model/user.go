package model

// ── 用户角色 ──

const (
	RoleAdmin   = "admin"   // 管理员：全部权限
	RolePlanner = "planner" // 码头计划员：船舶与泊位管理
	RoleViewer  = "viewer"  // 总部查看：只读
	RoleAgent   = "agent"   // 船公司代理：只读
)

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	TenantID     string `gorm:"type:uuid;not null"                             json:"tenant_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'viewer'"     json:"role"`
	SoftDeleteModel

	// 关联
	Tenant *Tenant `gorm:"foreignKey:TenantID;references:TenantID" json:"tenant,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
