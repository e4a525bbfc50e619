package dto

// ── 用户模块请求 ──

// CreateUserRequest 创建用户请求（仅 admin）
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"     binding:"required,oneof=admin planner viewer agent"`
}

// UpdateUserRequest 更新用户请求（仅 admin）
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role *string `json:"role" binding:"omitempty,oneof=admin planner viewer agent"`
}

// UserListRequest 用户列表查询参数
type UserListRequest struct {
	PaginationRequest
}
