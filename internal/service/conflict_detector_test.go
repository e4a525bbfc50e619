package service

import (
	"testing"
	"time"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
)

var baseTime = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func testBerthIndex() map[string]*model.Berth {
	maxDraft := 16.5
	return map[string]*model.Berth{
		"berth-1": {BerthID: "berth-1", Name: "Berth 1", LengthM: 400, MaxDraft: &maxDraft},
	}
}

func testVessel(id, voyage, berthID string, etaOffset, etdOffset time.Duration) model.Vessel {
	return model.Vessel{
		VesselID:     id,
		VoyageNumber: voyage,
		VesselName:   "Vessel " + voyage,
		BerthID:      berthID,
		ETA:          baseTime.Add(etaOffset),
		ETD:          baseTime.Add(etdOffset),
		LOA:          300,
		Draft:        12,
		Status:       model.StatusPlanned,
	}
}

func countByType(conflicts []dto.ConflictResult, conflictType string) int {
	n := 0
	for _, c := range conflicts {
		if c.ConflictType == conflictType {
			n++
		}
	}
	return n
}

func TestDetectConflicts_BerthOverlap(t *testing.T) {
	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	others := []model.Vessel{
		testVessel("v-2", "2026-002-W", "berth-1", 5*time.Hour, 15*time.Hour),
	}

	conflicts := DetectConflicts(&candidate, others, testBerthIndex())
	if countByType(conflicts, dto.ConflictBerthOverlap) != 1 {
		t.Fatalf("期望 1 个泊位重叠冲突，实际=%v", conflicts)
	}
	if conflicts[0].ConflictingVoyageNumber != "2026-002-W" {
		t.Errorf("期望冲突对方航次=2026-002-W，实际=%s", conflicts[0].ConflictingVoyageNumber)
	}
	if conflicts[0].Severity != dto.SeverityError {
		t.Errorf("泊位重叠应为 error 级，实际=%s", conflicts[0].Severity)
	}
}

func TestDetectConflicts_OverlapIsSymmetric(t *testing.T) {
	a := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	b := testVessel("v-2", "2026-002-W", "berth-1", 5*time.Hour, 15*time.Hour)

	fromA := DetectConflicts(&a, []model.Vessel{b}, testBerthIndex())
	fromB := DetectConflicts(&b, []model.Vessel{a}, testBerthIndex())

	if countByType(fromA, dto.ConflictBerthOverlap) != countByType(fromB, dto.ConflictBerthOverlap) {
		t.Errorf("重叠检测应对称：A 视角=%d，B 视角=%d",
			countByType(fromA, dto.ConflictBerthOverlap), countByType(fromB, dto.ConflictBerthOverlap))
	}
}

func TestDetectConflicts_TouchingEndpointsNoOverlap(t *testing.T) {
	// 前船 ETD == 后船 ETA：开区间比较，端点相接不算重叠
	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	others := []model.Vessel{
		testVessel("v-2", "2026-002-W", "berth-1", 10*time.Hour, 20*time.Hour),
	}

	conflicts := DetectConflicts(&candidate, others, testBerthIndex())
	if len(conflicts) != 0 {
		t.Errorf("端点相接不应产生冲突，实际=%v", conflicts)
	}
}

func TestDetectConflicts_DifferentBerthNoOverlap(t *testing.T) {
	maxDraft := 16.5
	berths := testBerthIndex()
	berths["berth-2"] = &model.Berth{BerthID: "berth-2", Name: "Berth 2", LengthM: 400, MaxDraft: &maxDraft}

	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	others := []model.Vessel{
		testVessel("v-2", "2026-002-W", "berth-2", 0, 10*time.Hour),
	}

	conflicts := DetectConflicts(&candidate, others, berths)
	if len(conflicts) != 0 {
		t.Errorf("不同泊位同时段不应产生冲突，实际=%v", conflicts)
	}
}

func TestDetectConflicts_CancelledVesselIgnored(t *testing.T) {
	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	other := testVessel("v-2", "2026-002-W", "berth-1", 5*time.Hour, 15*time.Hour)
	other.Status = model.StatusCancelled

	conflicts := DetectConflicts(&candidate, []model.Vessel{other}, testBerthIndex())
	if len(conflicts) != 0 {
		t.Errorf("已取消船舶不应参与重叠检测，实际=%v", conflicts)
	}
}

func TestDetectConflicts_SelfExcluded(t *testing.T) {
	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	// others 包含候选自身的已保存副本（更新场景）
	conflicts := DetectConflicts(&candidate, []model.Vessel{candidate}, testBerthIndex())
	if len(conflicts) != 0 {
		t.Errorf("候选自身不应与自己冲突，实际=%v", conflicts)
	}
}

func TestDetectConflicts_SelfExcludedByVoyageNumberWhenUnsaved(t *testing.T) {
	// 推测式检查：候选尚无 VesselID，按航次号排除自身
	saved := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	candidate := testVessel("", "2026-001-E", "berth-1", 1*time.Hour, 11*time.Hour)

	conflicts := DetectConflicts(&candidate, []model.Vessel{saved}, testBerthIndex())
	if countByType(conflicts, dto.ConflictBerthOverlap) != 0 {
		t.Errorf("未保存候选应按航次号排除自身，实际=%v", conflicts)
	}
}

func TestDetectConflicts_DraftViolation(t *testing.T) {
	maxDraft := 10.0
	berths := map[string]*model.Berth{
		"berth-1": {BerthID: "berth-1", Name: "Shallow Berth", LengthM: 400, MaxDraft: &maxDraft},
	}
	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	candidate.Draft = 12

	conflicts := DetectConflicts(&candidate, nil, berths)
	if len(conflicts) != 1 {
		t.Fatalf("期望恰好 1 个冲突，实际=%v", conflicts)
	}
	if conflicts[0].ConflictType != dto.ConflictDraftViolation {
		t.Errorf("期望吃水超限冲突，实际=%s", conflicts[0].ConflictType)
	}
	if conflicts[0].Severity != dto.SeverityError {
		t.Errorf("吃水超限应为 error 级，实际=%s", conflicts[0].Severity)
	}
}

func TestDetectConflicts_LengthViolationIsWarning(t *testing.T) {
	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	candidate.LOA = 450 // 泊位长 400

	conflicts := DetectConflicts(&candidate, nil, testBerthIndex())
	if len(conflicts) != 1 {
		t.Fatalf("期望恰好 1 个冲突，实际=%v", conflicts)
	}
	if conflicts[0].ConflictType != dto.ConflictLengthWarning {
		t.Errorf("期望船长超限冲突，实际=%s", conflicts[0].ConflictType)
	}
	if conflicts[0].Severity != dto.SeverityWarning {
		t.Errorf("船长超限应为 warning 级，实际=%s", conflicts[0].Severity)
	}
}

func TestDetectConflicts_OverlapOrderedBeforeViolations(t *testing.T) {
	maxDraft := 10.0
	berths := map[string]*model.Berth{
		"berth-1": {BerthID: "berth-1", Name: "Berth 1", LengthM: 250, MaxDraft: &maxDraft},
	}
	candidate := testVessel("v-1", "2026-001-E", "berth-1", 0, 10*time.Hour)
	candidate.Draft = 12
	candidate.LOA = 300
	others := []model.Vessel{
		testVessel("v-2", "2026-002-W", "berth-1", 5*time.Hour, 15*time.Hour),
	}

	conflicts := DetectConflicts(&candidate, others, berths)
	if len(conflicts) != 3 {
		t.Fatalf("期望 3 个冲突，实际=%v", conflicts)
	}
	if conflicts[0].ConflictType != dto.ConflictBerthOverlap {
		t.Errorf("重叠冲突应排在最前，实际顺序第一项=%s", conflicts[0].ConflictType)
	}
	if conflicts[1].ConflictType != dto.ConflictDraftViolation {
		t.Errorf("吃水冲突应排第二，实际=%s", conflicts[1].ConflictType)
	}
	if conflicts[2].ConflictType != dto.ConflictLengthWarning {
		t.Errorf("船长冲突应排第三，实际=%s", conflicts[2].ConflictType)
	}
}

func TestDetectConflicts_MissingBerthProducesNoConflicts(t *testing.T) {
	candidate := testVessel("v-1", "2026-001-E", "berth-missing", 0, 10*time.Hour)
	conflicts := DetectConflicts(&candidate, nil, testBerthIndex())
	if len(conflicts) != 0 {
		t.Errorf("泊位引用缺失不应产生冲突（由字段校验负责），实际=%v", conflicts)
	}
}

func TestDetectConflicts_TwoBerthScenario(t *testing.T) {
	// 泊位 A：300m / 最大吃水 15，船 X（LOA 280 / 吃水 14）→ 无冲突
	// 泊位 B：200m / 最大吃水 8，船 Y（LOA 250 / 吃水 9）同时段 → 吃水超限 + 船长告警
	draftA, draftB := 15.0, 8.0
	berths := map[string]*model.Berth{
		"berth-a": {BerthID: "berth-a", Name: "Berth A", LengthM: 300, MaxDraft: &draftA},
		"berth-b": {BerthID: "berth-b", Name: "Berth B", LengthM: 200, MaxDraft: &draftB},
	}

	x := testVessel("v-x", "2026-101-E", "berth-a", 0, 10*time.Hour)
	x.LOA, x.Draft = 280, 14
	y := testVessel("v-y", "2026-102-W", "berth-b", 0, 10*time.Hour)
	y.LOA, y.Draft = 250, 9

	all := []model.Vessel{x, y}

	xConflicts := DetectConflicts(&x, all, berths)
	if len(xConflicts) != 0 {
		t.Errorf("船 X 不应有冲突，实际=%v", xConflicts)
	}

	yConflicts := DetectConflicts(&y, all, berths)
	if countByType(yConflicts, dto.ConflictBerthOverlap) != 0 {
		t.Errorf("不同泊位不应报重叠，实际=%v", yConflicts)
	}
	if countByType(yConflicts, dto.ConflictDraftViolation) != 1 {
		t.Errorf("船 Y 应报恰好 1 个吃水超限，实际=%v", yConflicts)
	}
	if countByType(yConflicts, dto.ConflictLengthWarning) != 1 {
		t.Errorf("船 Y 应报船长告警，实际=%v", yConflicts)
	}
}
