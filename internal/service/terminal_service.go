package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
)

var ErrTerminalNotFound = errors.New("码头不存在")

// TerminalService 码头业务接口（参考数据，只读）
type TerminalService interface {
	List(ctx context.Context, tenantID string) ([]dto.TerminalResponse, error)
	GetByID(ctx context.Context, tenantID, terminalID string) (*dto.TerminalResponse, error)
}

type terminalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTerminalService 创建 TerminalService 实例
func NewTerminalService(repo *repository.Repository, logger *zap.Logger) TerminalService {
	return &terminalService{repo: repo, logger: logger}
}

func (s *terminalService) List(ctx context.Context, tenantID string) ([]dto.TerminalResponse, error) {
	terminals, err := s.repo.Terminal.List(ctx, tenantID)
	if err != nil {
		s.logger.Error("查询码头列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TerminalResponse, 0, len(terminals))
	for _, t := range terminals {
		result = append(result, dto.TerminalResponse{
			ID:       t.TerminalID,
			Name:     t.Name,
			Location: t.Location,
			IsActive: t.IsActive,
		})
	}
	return result, nil
}

func (s *terminalService) GetByID(ctx context.Context, tenantID, terminalID string) (*dto.TerminalResponse, error) {
	terminal, err := s.repo.Terminal.GetByID(ctx, terminalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTerminalNotFound
		}
		s.logger.Error("查询码头失败", zap.Error(err))
		return nil, err
	}
	// 跨租户访问按不存在处理
	if terminal.TenantID != tenantID {
		return nil, ErrTerminalNotFound
	}

	return &dto.TerminalResponse{
		ID:       terminal.TerminalID,
		Name:     terminal.Name,
		Location: terminal.Location,
		IsActive: terminal.IsActive,
	}, nil
}
