package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/goumiwalid/berth-planning-app/config"
	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
	"github.com/goumiwalid/berth-planning-app/pkg/jwt"
	"github.com/goumiwalid/berth-planning-app/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrNotRefreshToken    = errors.New("非 refresh token，不可用于刷新")
	ErrWrongOldPassword   = errors.New("原密码错误")
	ErrTenantDisabled     = errors.New("租户已停用")
	ErrTenantNotFound     = errors.New("租户不存在")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	// Logout 将当前 access token 加入黑名单直至自然过期
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error)
	GetCurrentTenant(ctx context.Context, tenantID string) (*dto.TenantResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client // 可为 nil（降级运行，黑名单不生效）
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户（登录入口不携带租户上下文，按邮箱全局查找）
	user, err := s.repo.User.GetByEmail(ctx, "", req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 校验租户状态
	if user.Tenant != nil && !user.Tenant.IsActive {
		return nil, ErrTenantDisabled
	}

	// 3. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user, req.RememberMe)
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, ErrNotRefreshToken
	}

	// 黑名单检查（Redis 不可用时降级放行）
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("黑名单检查失败，降级放行", zap.Error(err))
		} else if blacklisted {
			return nil, jwt.ErrTokenInvalid
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 旧 refresh token 作废，实现轮换
	if s.rdb != nil && claims.ExpiresAt != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			s.logger.Warn("旧 refresh token 拉黑失败", zap.Error(err))
		}
	}

	return s.issueTokens(user, claims.RememberMe)
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.rdb == nil {
		s.logger.Warn("Redis 未启用，登出仅客户端生效")
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, tokenID, ttl); err != nil {
		s.logger.Error("token 拉黑失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.UserDetailResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if user.Tenant != nil {
		resp.Tenant = &dto.TenantBrief{
			ID:   user.Tenant.TenantID,
			Name: user.Tenant.Name,
			Logo: user.Tenant.Logo,
		}
	}
	return resp, nil
}

func (s *authService) GetCurrentTenant(ctx context.Context, tenantID string) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		s.logger.Error("查询租户失败", zap.Error(err))
		return nil, err
	}
	return &dto.TenantResponse{
		ID:       tenant.TenantID,
		Name:     tenant.Name,
		Logo:     tenant.Logo,
		IsActive: tenant.IsActive,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新密码失败", zap.Error(err))
		return err
	}
	return nil
}

// issueTokens 签发 Token 对并构造响应
func (s *authService) issueTokens(user *model.User, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role, user.TenantID)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role, user.TenantID, rememberMe)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	var tenant *dto.TenantBrief
	if user.Tenant != nil {
		tenant = &dto.TenantBrief{
			ID:   user.Tenant.TenantID,
			Name: user.Tenant.Name,
			Logo: user.Tenant.Logo,
		}
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User: dto.UserResponse{
			ID:     user.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Tenant: tenant,
		},
	}, nil
}
