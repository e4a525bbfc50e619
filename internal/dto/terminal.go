package dto

// ── 码头模块 DTO ──

// TerminalResponse 码头信息响应
type TerminalResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	IsActive bool   `json:"is_active"`
}

// TerminalBrief 码头简要信息（嵌入船舶/泊位响应）
type TerminalBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
