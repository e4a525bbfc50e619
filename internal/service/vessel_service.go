package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
	pkgerrors "github.com/goumiwalid/berth-planning-app/pkg/errors"
)

// ── 船舶模块业务错误 ──

var (
	ErrVesselNotFound          = errors.New("船舶靠泊记录不存在")
	ErrVesselValidationFailed  = errors.New("船舶字段校验未通过")
	ErrInvalidStatusTransition = errors.New("状态迁移不合法")
	ErrBerthTerminalMismatch   = errors.New("泊位不属于所选码头")
	ErrBerthInactive           = errors.New("泊位已停用，不可分配")
	ErrInvalidTimeRange        = errors.New("时间范围参数无效")
)

// ValidationError 携带完整错误清单的校验失败
// 调用方（表单层）需要逐条展示，而非只看第一条
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string { return ErrVesselValidationFailed.Error() }

func (e *ValidationError) Is(target error) bool { return target == ErrVesselValidationFailed }

// VesselService 船舶靠泊业务接口
// 冲突检测为顾问性质：创建/更新照常落库并随响应返回冲突清单（先保存、后解决）
type VesselService interface {
	Create(ctx context.Context, tenantID string, draft *dto.VesselDraft, callerID string) (*dto.VesselMutationResponse, error)
	Update(ctx context.Context, tenantID, voyageNumber string, draft *dto.VesselDraft, callerID string) (*dto.VesselMutationResponse, error)
	Delete(ctx context.Context, tenantID, voyageNumber string) error
	List(ctx context.Context, tenantID string, req *dto.VesselListRequest) ([]dto.VesselResponse, int64, error)
	GetByVoyageNumber(ctx context.Context, tenantID, voyageNumber string) (*dto.VesselResponse, error)
	Clear(ctx context.Context, tenantID string) error
	// Check 推测式校验+冲突检查，无任何副作用（表单编辑时调用）
	Check(ctx context.Context, tenantID string, draft *dto.VesselDraft, excludeVoyageNumber string) (*dto.CheckVesselResponse, error)
}

type vesselService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVesselService 创建 VesselService 实例
func NewVesselService(repo *repository.Repository, logger *zap.Logger) VesselService {
	return &vesselService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Create — 创建靠泊记录
// ════════════════════════════════════════════════════════════

func (s *vesselService) Create(ctx context.Context, tenantID string, draft *dto.VesselDraft, callerID string) (*dto.VesselMutationResponse, error) {
	// 1. 字段校验（累积全部错误）
	errs := ValidateVesselDraft(draft, &ValidateOptions{
		VoyageNumberExists: s.voyageExistsFn(ctx, tenantID),
	}, s.logger)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	// 2. 校验泊位归属
	berth, err := s.resolveBerth(ctx, tenantID, trimmed(draft.TerminalID), trimmed(draft.BerthID))
	if err != nil {
		return nil, err
	}

	// 3. 构造记录并落库（初始状态 planned）
	eta, _ := parseDraftTime(draft.ETA)
	etd, _ := parseDraftTime(draft.ETD)
	vessel := &model.Vessel{
		TenantID:     tenantID,
		VoyageNumber: trimmed(draft.VoyageNumber),
		VesselName:   trimmed(draft.VesselName),
		VesselType:   trimmed(draft.VesselType),
		Operator:     trimmed(draft.Operator),
		RouteInfo:    trimmed(draft.RouteInfo),
		ETA:          eta,
		ETD:          etd,
		LOA:          *draft.LOA,
		Draft:        *draft.Draft,
		TerminalID:   trimmed(draft.TerminalID),
		BerthID:      berth.BerthID,
		Status:       model.StatusPlanned,
		Version:      1,
	}
	vessel.CreatedBy = &callerID
	vessel.UpdatedBy = &callerID

	if err := s.repo.Vessel.Create(ctx, vessel); err != nil {
		s.logger.Error("创建船舶靠泊记录失败", zap.Error(err))
		return nil, err
	}

	// 4. 冲突检测（不阻断，仅随响应返回）
	conflicts, err := s.detectFor(ctx, tenantID, vessel)
	if err != nil {
		s.logger.Warn("冲突检测失败", zap.Error(err))
		conflicts = []dto.ConflictResult{}
	}

	created, err := s.repo.Vessel.GetByVoyageNumber(ctx, tenantID, vessel.VoyageNumber)
	if err != nil {
		return nil, err
	}

	resp := toVesselResponse(created)
	return &dto.VesselMutationResponse{Vessel: resp, Conflicts: conflicts}, nil
}

// ════════════════════════════════════════════════════════════
// Update — 按航次号更新（航次号本身可变更，须保持租户内唯一）
// ════════════════════════════════════════════════════════════

func (s *vesselService) Update(ctx context.Context, tenantID, voyageNumber string, draft *dto.VesselDraft, callerID string) (*dto.VesselMutationResponse, error) {
	existing, err := s.repo.Vessel.GetByVoyageNumber(ctx, tenantID, voyageNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVesselNotFound
		}
		s.logger.Error("查询船舶靠泊记录失败", zap.Error(err))
		return nil, err
	}

	// 草稿补全为完整记录后整体校验（保留未提交字段的现值）
	merged := mergeDraft(existing, draft)
	errs := ValidateVesselDraft(merged, &ValidateOptions{
		IsUpdate:            true,
		ExcludeVoyageNumber: voyageNumber,
		VoyageNumberExists:  s.voyageExistsFn(ctx, tenantID),
	}, s.logger)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	// 状态迁移校验
	newStatus := existing.Status
	if draft.Status != nil && *draft.Status != existing.Status {
		if !model.CanTransition(existing.Status, *draft.Status) {
			return nil, ErrInvalidStatusTransition
		}
		newStatus = *draft.Status
	}

	berth, err := s.resolveBerth(ctx, tenantID, trimmed(merged.TerminalID), trimmed(merged.BerthID))
	if err != nil {
		return nil, err
	}

	eta, _ := parseDraftTime(merged.ETA)
	etd, _ := parseDraftTime(merged.ETD)

	// 合并到现有记录，保留 CreatedAt/CreatedBy 与 Version（乐观锁在仓储层检查）
	existing.VoyageNumber = trimmed(merged.VoyageNumber)
	existing.VesselName = trimmed(merged.VesselName)
	existing.VesselType = trimmed(merged.VesselType)
	existing.Operator = trimmed(merged.Operator)
	existing.RouteInfo = trimmed(merged.RouteInfo)
	existing.ETA = eta
	existing.ETD = etd
	existing.LOA = *merged.LOA
	existing.Draft = *merged.Draft
	existing.TerminalID = trimmed(merged.TerminalID)
	existing.BerthID = berth.BerthID
	existing.Status = newStatus
	existing.UpdatedAt = time.Now()
	existing.UpdatedBy = &callerID

	if err := s.repo.Vessel.Update(ctx, existing); err != nil {
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return nil, err
		}
		s.logger.Error("更新船舶靠泊记录失败", zap.Error(err))
		return nil, err
	}

	conflicts, err := s.detectFor(ctx, tenantID, existing)
	if err != nil {
		s.logger.Warn("冲突检测失败", zap.Error(err))
		conflicts = []dto.ConflictResult{}
	}

	updated, err := s.repo.Vessel.GetByVoyageNumber(ctx, tenantID, existing.VoyageNumber)
	if err != nil {
		return nil, err
	}

	return &dto.VesselMutationResponse{Vessel: toVesselResponse(updated), Conflicts: conflicts}, nil
}

// ════════════════════════════════════════════════════════════
// Delete / Clear — 硬删除，无墓碑
// ════════════════════════════════════════════════════════════

func (s *vesselService) Delete(ctx context.Context, tenantID, voyageNumber string) error {
	affected, err := s.repo.Vessel.Delete(ctx, tenantID, voyageNumber)
	if err != nil {
		s.logger.Error("删除船舶靠泊记录失败", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrVesselNotFound
	}
	return nil
}

func (s *vesselService) Clear(ctx context.Context, tenantID string) error {
	if err := s.repo.Vessel.Clear(ctx, tenantID); err != nil {
		s.logger.Error("清空船舶靠泊记录失败", zap.Error(err))
		return err
	}
	s.logger.Info("已清空租户全部船舶靠泊记录", zap.String("tenant_id", tenantID))
	return nil
}

// ════════════════════════════════════════════════════════════
// 查询
// ════════════════════════════════════════════════════════════

func (s *vesselService) List(ctx context.Context, tenantID string, req *dto.VesselListRequest) ([]dto.VesselResponse, int64, error) {
	filter := &repository.VesselFilter{
		TerminalID: req.TerminalID,
		BerthID:    req.BerthID,
		VesselType: req.VesselType,
		Status:     req.Status,
		Search:     req.Search,
	}
	if req.From != "" && req.To != "" {
		from, err1 := time.Parse(time.RFC3339, req.From)
		to, err2 := time.Parse(time.RFC3339, req.To)
		if err1 != nil || err2 != nil || !from.Before(to) {
			return nil, 0, ErrInvalidTimeRange
		}
		filter.From = &from
		filter.To = &to
	}

	vessels, total, err := s.repo.Vessel.List(ctx, tenantID, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询船舶列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.VesselResponse, 0, len(vessels))
	for i := range vessels {
		result = append(result, *toVesselResponse(&vessels[i]))
	}
	return result, total, nil
}

func (s *vesselService) GetByVoyageNumber(ctx context.Context, tenantID, voyageNumber string) (*dto.VesselResponse, error) {
	vessel, err := s.repo.Vessel.GetByVoyageNumber(ctx, tenantID, voyageNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVesselNotFound
		}
		s.logger.Error("查询船舶靠泊记录失败", zap.Error(err))
		return nil, err
	}
	return toVesselResponse(vessel), nil
}

// ════════════════════════════════════════════════════════════
// Check — 推测式校验 + 冲突检查（无副作用）
// ════════════════════════════════════════════════════════════

func (s *vesselService) Check(ctx context.Context, tenantID string, draft *dto.VesselDraft, excludeVoyageNumber string) (*dto.CheckVesselResponse, error) {
	errs := ValidateVesselDraft(draft, &ValidateOptions{
		IsUpdate:            excludeVoyageNumber != "",
		ExcludeVoyageNumber: excludeVoyageNumber,
		VoyageNumberExists:  s.voyageExistsFn(ctx, tenantID),
	}, s.logger)

	conflicts := make([]dto.ConflictResult, 0)

	// 时间与泊位齐备时才做冲突检测
	eta, etaErr := parseDraftTime(draft.ETA)
	etd, etdErr := parseDraftTime(draft.ETD)
	if etaErr == "" && etdErr == "" && trimmed(draft.BerthID) != "" {
		candidate := &model.Vessel{
			VoyageNumber: trimmed(draft.VoyageNumber),
			ETA:          eta,
			ETD:          etd,
			BerthID:      trimmed(draft.BerthID),
		}
		if excludeVoyageNumber != "" {
			if existing, err := s.repo.Vessel.GetByVoyageNumber(ctx, tenantID, excludeVoyageNumber); err == nil {
				candidate.VesselID = existing.VesselID
			}
		}
		if draft.LOA != nil {
			candidate.LOA = *draft.LOA
		}
		if draft.Draft != nil {
			candidate.Draft = *draft.Draft
		}

		detected, err := s.detectFor(ctx, tenantID, candidate)
		if err != nil {
			s.logger.Warn("冲突检测失败", zap.Error(err))
		} else {
			conflicts = detected
		}
	}

	if errs == nil {
		errs = []string{}
	}
	return &dto.CheckVesselResponse{
		Valid:     len(errs) == 0,
		Errors:    errs,
		Conflicts: conflicts,
	}, nil
}

// ════════════════════════════════════════════════════════════
// 内部辅助方法
// ════════════════════════════════════════════════════════════

// voyageExistsFn 返回捕获了租户上下文的唯一性查询闭包
func (s *vesselService) voyageExistsFn(ctx context.Context, tenantID string) func(string) (bool, error) {
	return func(voyageNumber string) (bool, error) {
		return s.repo.Vessel.VoyageNumberExists(ctx, tenantID, voyageNumber, "")
	}
}

// resolveBerth 校验泊位存在、启用中、归属所选码头且码头属于当前租户
func (s *vesselService) resolveBerth(ctx context.Context, tenantID, terminalID, berthID string) (*model.Berth, error) {
	berth, err := s.repo.Berth.GetByID(ctx, berthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBerthNotFound
		}
		s.logger.Error("查询泊位失败", zap.Error(err))
		return nil, err
	}
	if berth.TerminalID != terminalID {
		return nil, ErrBerthTerminalMismatch
	}
	if berth.Terminal == nil || berth.Terminal.TenantID != tenantID {
		return nil, ErrBerthNotFound
	}
	if !berth.IsActive {
		return nil, ErrBerthInactive
	}
	return berth, nil
}

// detectFor 拉取同租户船舶与泊位快照后执行纯函数冲突检测
func (s *vesselService) detectFor(ctx context.Context, tenantID string, candidate *model.Vessel) ([]dto.ConflictResult, error) {
	all, err := s.repo.Vessel.ListAll(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	berths, err := s.repo.Berth.List(ctx, tenantID, "", true)
	if err != nil {
		return nil, err
	}
	return DetectConflicts(candidate, all, buildBerthIndex(berths)), nil
}

// mergeDraft 将更新草稿覆盖到现有记录之上，未提交字段取现值
func mergeDraft(existing *model.Vessel, draft *dto.VesselDraft) *dto.VesselDraft {
	merged := &dto.VesselDraft{}

	pick := func(p *string, current string) *string {
		if p != nil {
			return p
		}
		v := current
		return &v
	}
	merged.VoyageNumber = pick(draft.VoyageNumber, existing.VoyageNumber)
	merged.VesselName = pick(draft.VesselName, existing.VesselName)
	merged.VesselType = pick(draft.VesselType, existing.VesselType)
	merged.Operator = pick(draft.Operator, existing.Operator)
	merged.RouteInfo = pick(draft.RouteInfo, existing.RouteInfo)
	merged.ETA = pick(draft.ETA, existing.ETA.Format(time.RFC3339))
	merged.ETD = pick(draft.ETD, existing.ETD.Format(time.RFC3339))
	merged.TerminalID = pick(draft.TerminalID, existing.TerminalID)
	merged.BerthID = pick(draft.BerthID, existing.BerthID)
	merged.Status = draft.Status

	if draft.LOA != nil {
		merged.LOA = draft.LOA
	} else {
		v := existing.LOA
		merged.LOA = &v
	}
	if draft.Draft != nil {
		merged.Draft = draft.Draft
	} else {
		v := existing.Draft
		merged.Draft = &v
	}
	return merged
}

// toVesselResponse 转换船舶记录为响应
func toVesselResponse(v *model.Vessel) *dto.VesselResponse {
	resp := &dto.VesselResponse{
		ID:           v.VesselID,
		VoyageNumber: v.VoyageNumber,
		VesselName:   v.VesselName,
		VesselType:   v.VesselType,
		Operator:     v.Operator,
		RouteInfo:    v.RouteInfo,
		ETA:          v.ETA.UTC().Format("2006-01-02T15:04:05Z"),
		ETD:          v.ETD.UTC().Format("2006-01-02T15:04:05Z"),
		LOA:          v.LOA,
		Draft:        v.Draft,
		Status:       v.Status,
		TurnaroundH:  v.ETD.Sub(v.ETA).Hours(),
		CreatedAt:    v.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    v.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if v.Terminal != nil {
		resp.Terminal = &dto.TerminalBrief{ID: v.Terminal.TerminalID, Name: v.Terminal.Name}
	}
	if v.Berth != nil {
		resp.Berth = &dto.BerthBrief{ID: v.Berth.BerthID, Name: v.Berth.Name, LengthM: v.Berth.LengthM}
	}
	return resp
}
