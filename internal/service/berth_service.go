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
)

var (
	ErrBerthNotFound = errors.New("泊位不存在")
	ErrBerthInUse    = errors.New("泊位仍有未完成的靠泊计划，不可删除")
)

// BerthService 泊位业务接口
type BerthService interface {
	Create(ctx context.Context, tenantID string, req *dto.CreateBerthRequest, callerID string) (*dto.BerthResponse, error)
	List(ctx context.Context, tenantID string, req *dto.BerthListRequest) ([]dto.BerthResponse, error)
	GetByID(ctx context.Context, tenantID, berthID string) (*dto.BerthResponse, error)
	Update(ctx context.Context, tenantID, berthID string, req *dto.UpdateBerthRequest, callerID string) (*dto.BerthResponse, error)
	Delete(ctx context.Context, tenantID, berthID string, callerID string) error
}

type berthService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBerthService 创建 BerthService 实例
func NewBerthService(repo *repository.Repository, logger *zap.Logger) BerthService {
	return &berthService{repo: repo, logger: logger}
}

func (s *berthService) Create(ctx context.Context, tenantID string, req *dto.CreateBerthRequest, callerID string) (*dto.BerthResponse, error) {
	// 码头必须属于当前租户
	terminal, err := s.repo.Terminal.GetByID(ctx, req.TerminalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTerminalNotFound
		}
		s.logger.Error("查询码头失败", zap.Error(err))
		return nil, err
	}
	if terminal.TenantID != tenantID {
		return nil, ErrTerminalNotFound
	}

	berth := &model.Berth{
		TerminalID: req.TerminalID,
		Name:       req.Name,
		LengthM:    req.LengthM,
		MaxDraft:   req.MaxDraft,
		Position:   req.Position,
		IsActive:   true,
	}
	berth.CreatedBy = &callerID
	berth.UpdatedBy = &callerID

	if err := s.repo.Berth.Create(ctx, berth); err != nil {
		s.logger.Error("创建泊位失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Berth.GetByID(ctx, berth.BerthID)
	if err != nil {
		return nil, err
	}
	return toBerthResponse(created), nil
}

func (s *berthService) List(ctx context.Context, tenantID string, req *dto.BerthListRequest) ([]dto.BerthResponse, error) {
	berths, err := s.repo.Berth.List(ctx, tenantID, req.TerminalID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("查询泊位列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BerthResponse, 0, len(berths))
	for i := range berths {
		result = append(result, *toBerthResponse(&berths[i]))
	}
	return result, nil
}

func (s *berthService) GetByID(ctx context.Context, tenantID, berthID string) (*dto.BerthResponse, error) {
	berth, err := s.getTenantBerth(ctx, tenantID, berthID)
	if err != nil {
		return nil, err
	}
	return toBerthResponse(berth), nil
}

func (s *berthService) Update(ctx context.Context, tenantID, berthID string, req *dto.UpdateBerthRequest, callerID string) (*dto.BerthResponse, error) {
	berth, err := s.getTenantBerth(ctx, tenantID, berthID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		berth.Name = *req.Name
	}
	if req.LengthM != nil {
		berth.LengthM = *req.LengthM
	}
	if req.MaxDraft != nil {
		berth.MaxDraft = req.MaxDraft
	}
	if req.Position != nil {
		berth.Position = req.Position
	}
	if req.IsActive != nil {
		berth.IsActive = *req.IsActive
	}
	berth.UpdatedBy = &callerID

	if err := s.repo.Berth.Update(ctx, berth); err != nil {
		s.logger.Error("更新泊位失败", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Berth.GetByID(ctx, berthID)
	if err != nil {
		return nil, err
	}
	return toBerthResponse(updated), nil
}

// Delete 软删除泊位；仍有未完成靠泊计划（未离泊且未取消）的泊位不可删除
func (s *berthService) Delete(ctx context.Context, tenantID, berthID string, callerID string) error {
	if _, err := s.getTenantBerth(ctx, tenantID, berthID); err != nil {
		return err
	}

	count, err := s.repo.Vessel.CountFutureByBerth(ctx, berthID, time.Now())
	if err != nil {
		s.logger.Error("查询泊位占用失败", zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrBerthInUse
	}

	if err := s.repo.Berth.Delete(ctx, berthID, callerID); err != nil {
		s.logger.Error("删除泊位失败", zap.Error(err))
		return err
	}
	return nil
}

// getTenantBerth 查询泊位并校验租户归属，跨租户按不存在处理
func (s *berthService) getTenantBerth(ctx context.Context, tenantID, berthID string) (*model.Berth, error) {
	berth, err := s.repo.Berth.GetByID(ctx, berthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBerthNotFound
		}
		s.logger.Error("查询泊位失败", zap.Error(err))
		return nil, err
	}
	if berth.Terminal == nil || berth.Terminal.TenantID != tenantID {
		return nil, ErrBerthNotFound
	}
	return berth, nil
}

// toBerthResponse 转换泊位为响应
func toBerthResponse(b *model.Berth) *dto.BerthResponse {
	resp := &dto.BerthResponse{
		ID:       b.BerthID,
		Name:     b.Name,
		LengthM:  b.LengthM,
		MaxDraft: b.MaxDraft,
		Position: b.Position,
		IsActive: b.IsActive,
	}
	if b.Terminal != nil {
		resp.Terminal = &dto.TerminalBrief{ID: b.Terminal.TerminalID, Name: b.Terminal.Name}
	}
	return resp
}
