package dto

// ── 船舶模块 DTO ──

// VesselDraft 船舶靠泊草稿（创建与更新共用的表单载荷）
// 字段均为指针以区分"未提交"与"提交了空值"；校验引擎负责逐项检查并累积全部错误
type VesselDraft struct {
	VoyageNumber *string  `json:"voyage_number"`
	VesselName   *string  `json:"vessel_name"`
	VesselType   *string  `json:"vessel_type"`
	Operator     *string  `json:"operator"`
	RouteInfo    *string  `json:"route_info"`
	ETA          *string  `json:"eta"` // RFC3339
	ETD          *string  `json:"etd"` // RFC3339
	LOA          *float64 `json:"loa"`
	Draft        *float64 `json:"draft"`
	TerminalID   *string  `json:"terminal_id"`
	BerthID      *string  `json:"berth_id"`
	Status       *string  `json:"status"` // 仅更新时有效
}

// VesselListRequest 船舶列表查询参数
type VesselListRequest struct {
	PaginationRequest
	TerminalID string `form:"terminal_id" binding:"omitempty,uuid"`
	BerthID    string `form:"berth_id"    binding:"omitempty,uuid"`
	VesselType string `form:"vessel_type" binding:"omitempty,oneof=Container RoRo Bulk"`
	Status     string `form:"status"      binding:"omitempty,oneof=planned confirmed at_berth completed delayed cancelled"`
	From       string `form:"from"        binding:"omitempty"` // RFC3339，按占用窗口过滤
	To         string `form:"to"          binding:"omitempty"`
	Search     string `form:"search"      binding:"omitempty,max=100"` // 船名/航次号模糊匹配
}

// VesselResponse 船舶靠泊记录响应
type VesselResponse struct {
	ID           string         `json:"id"`
	VoyageNumber string         `json:"voyage_number"`
	VesselName   string         `json:"vessel_name"`
	VesselType   string         `json:"vessel_type"`
	Operator     string         `json:"operator,omitempty"`
	RouteInfo    string         `json:"route_info,omitempty"`
	ETA          string         `json:"eta"`
	ETD          string         `json:"etd"`
	LOA          float64        `json:"loa"`
	Draft        float64        `json:"draft"`
	Terminal     *TerminalBrief `json:"terminal,omitempty"`
	Berth        *BerthBrief    `json:"berth,omitempty"`
	Status       string         `json:"status"`
	TurnaroundH  float64        `json:"turnaround_hours"` // ETD-ETA，小时
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

// VesselMutationResponse 创建/更新响应：记录本身 + 当前冲突清单
// 冲突仅为顾问性质，不阻止保存（先保存、后解决）
type VesselMutationResponse struct {
	Vessel    *VesselResponse  `json:"vessel"`
	Conflicts []ConflictResult `json:"conflicts"`
}

// ValidationFailedResponse 字段校验失败响应
type ValidationFailedResponse struct {
	Errors []string `json:"errors"`
}
