package dto

// ── 冲突检测 DTO ──

// 冲突类型
const (
	ConflictBerthOverlap   = "berth_overlap"
	ConflictDraftViolation = "draft_violation"
	ConflictLengthWarning  = "length_violation"
)

// 冲突严重级别
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ConflictResult 单条冲突记录（临时结果，不落库）
type ConflictResult struct {
	VoyageNumber            string `json:"voyage_number"`
	ConflictType            string `json:"conflict_type"`
	ConflictingVoyageNumber string `json:"conflicting_voyage_number,omitempty"`
	Message                 string `json:"message"`
	Severity                string `json:"severity"`
}

// CheckVesselResponse 推测式冲突检查响应（表单编辑时调用，无副作用）
type CheckVesselResponse struct {
	Valid     bool             `json:"valid"`
	Errors    []string         `json:"errors"`
	Conflicts []ConflictResult `json:"conflicts"`
}
