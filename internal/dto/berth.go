package dto

// ── 泊位模块 DTO ──

// CreateBerthRequest 创建泊位请求
type CreateBerthRequest struct {
	TerminalID string   `json:"terminal_id" binding:"required,uuid"`
	Name       string   `json:"name"        binding:"required,min=2,max=100"`
	LengthM    float64  `json:"length_m"    binding:"required,gt=0"`
	MaxDraft   *float64 `json:"max_draft"   binding:"omitempty,gt=0"`
	Position   *int     `json:"position"    binding:"omitempty,min=1"`
}

// UpdateBerthRequest 更新泊位请求
type UpdateBerthRequest struct {
	Name     *string  `json:"name"      binding:"omitempty,min=2,max=100"`
	LengthM  *float64 `json:"length_m"  binding:"omitempty,gt=0"`
	MaxDraft *float64 `json:"max_draft" binding:"omitempty,gt=0"`
	Position *int     `json:"position"  binding:"omitempty,min=1"`
	IsActive *bool    `json:"is_active"`
}

// BerthListRequest 泊位列表查询参数
type BerthListRequest struct {
	TerminalID      string `form:"terminal_id" binding:"omitempty,uuid"`
	IncludeInactive bool   `form:"include_inactive"`
}

// BerthResponse 泊位信息响应
type BerthResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Terminal *TerminalBrief `json:"terminal,omitempty"`
	LengthM  float64        `json:"length_m"`
	MaxDraft *float64       `json:"max_draft,omitempty"`
	Position *int           `json:"position,omitempty"`
	IsActive bool           `json:"is_active"`
}

// BerthBrief 泊位简要信息（嵌入船舶响应）
type BerthBrief struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	LengthM float64 `json:"length_m"`
}
