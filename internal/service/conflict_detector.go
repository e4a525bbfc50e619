package service

import (
	"fmt"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
)

// DetectConflicts 冲突检测（纯函数，无副作用，可推测式调用）
// candidate 为待检船舶，others 为同租户全部船舶，berths 为泊位查找表
// 规则：
//   - 泊位占用重叠：同泊位其他船舶的 [ETA, ETD) 与候选区间开区间相交即冲突（error）
//     区间比较为 candidate.ETA < other.ETD && other.ETA < candidate.ETD，端点相接不算重叠
//   - 吃水超限：candidate.Draft > berth.MaxDraft（error）
//   - 船长超限：candidate.LOA > berth.LengthM（warning，不阻断保存）
//
// 重叠冲突排在吃水/船长冲突之前
func DetectConflicts(candidate *model.Vessel, others []model.Vessel, berths map[string]*model.Berth) []dto.ConflictResult {
	conflicts := make([]dto.ConflictResult, 0)

	berth, ok := berths[candidate.BerthID]
	if !ok || berth == nil {
		// 泊位引用缺失由字段校验引擎负责报错，此处不产生冲突
		return conflicts
	}

	// ── 泊位占用重叠 ──
	for i := range others {
		other := &others[i]
		if other.VesselID == candidate.VesselID ||
			(candidate.VesselID == "" && other.VoyageNumber == candidate.VoyageNumber) {
			continue
		}
		if other.BerthID != candidate.BerthID {
			continue
		}
		if other.Status == model.StatusCancelled {
			continue
		}
		if candidate.ETA.Before(other.ETD) && other.ETA.Before(candidate.ETD) {
			conflicts = append(conflicts, dto.ConflictResult{
				VoyageNumber:            candidate.VoyageNumber,
				ConflictType:            dto.ConflictBerthOverlap,
				ConflictingVoyageNumber: other.VoyageNumber,
				Message: fmt.Sprintf("泊位 %s 占用时间与船舶 %s（航次 %s）重叠",
					berth.Name, other.VesselName, other.VoyageNumber),
				Severity: dto.SeverityError,
			})
		}
	}

	// ── 吃水超限 ──
	if berth.MaxDraft != nil && candidate.Draft > *berth.MaxDraft {
		conflicts = append(conflicts, dto.ConflictResult{
			VoyageNumber: candidate.VoyageNumber,
			ConflictType: dto.ConflictDraftViolation,
			Message: fmt.Sprintf("吃水 %.1fm 超过泊位 %s 最大允许吃水 %.1fm",
				candidate.Draft, berth.Name, *berth.MaxDraft),
			Severity: dto.SeverityError,
		})
	}

	// ── 船长超限 ──
	if candidate.LOA > berth.LengthM {
		conflicts = append(conflicts, dto.ConflictResult{
			VoyageNumber: candidate.VoyageNumber,
			ConflictType: dto.ConflictLengthWarning,
			Message: fmt.Sprintf("船长 %.1fm 超过泊位 %s 长度 %.1fm",
				candidate.LOA, berth.Name, berth.LengthM),
			Severity: dto.SeverityWarning,
		})
	}

	return conflicts
}

// buildBerthIndex 将泊位列表转为按 ID 的查找表
func buildBerthIndex(berths []model.Berth) map[string]*model.Berth {
	index := make(map[string]*model.Berth, len(berths))
	for i := range berths {
		index[berths[i].BerthID] = &berths[i]
	}
	return index
}
