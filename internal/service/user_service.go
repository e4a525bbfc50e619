package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
)

var ErrEmailAlreadyUsed = errors.New("邮箱已被使用")

// UserService 用户管理业务接口（仅 admin 调用）
type UserService interface {
	Create(ctx context.Context, tenantID string, req *dto.CreateUserRequest, callerID string) (*dto.UserResponse, error)
	List(ctx context.Context, tenantID string, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
	Update(ctx context.Context, tenantID, userID string, req *dto.UpdateUserRequest, callerID string) (*dto.UserResponse, error)
	Delete(ctx context.Context, tenantID, userID string, callerID string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, tenantID string, req *dto.CreateUserRequest, callerID string) (*dto.UserResponse, error) {
	// 租户内邮箱唯一
	if _, err := s.repo.User.GetByEmail(ctx, tenantID, req.Email); err == nil {
		return nil, ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		TenantID:     tenantID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	user.CreatedBy = &callerID
	user.UpdatedBy = &callerID

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, tenantID string, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, tenantID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, total, nil
}

func (s *userService) Update(ctx context.Context, tenantID, userID string, req *dto.UpdateUserRequest, callerID string) (*dto.UserResponse, error) {
	user, err := s.getTenantUser(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	user.UpdatedBy = &callerID

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, tenantID, userID string, callerID string) error {
	if _, err := s.getTenantUser(ctx, tenantID, userID); err != nil {
		return err
	}
	if err := s.repo.User.Delete(ctx, userID, callerID); err != nil {
		s.logger.Error("删除用户失败", zap.Error(err))
		return err
	}
	return nil
}

// getTenantUser 查询用户并校验租户归属
func (s *userService) getTenantUser(ctx context.Context, tenantID, userID string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if user.TenantID != tenantID {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// toUserResponse 转换用户为响应（脱敏）
func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if u.Tenant != nil {
		resp.Tenant = &dto.TenantBrief{
			ID:   u.Tenant.TenantID,
			Name: u.Tenant.Name,
			Logo: u.Tenant.Logo,
		}
	}
	return resp
}
