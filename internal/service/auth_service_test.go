package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/goumiwalid/berth-planning-app/config"
	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
	"github.com/goumiwalid/berth-planning-app/pkg/jwt"
)

func setupTestAuthService() (AuthService, *repository.Repository, *jwt.Manager) {
	repo, _, _ := newTestRepo()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 168 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	// rdb 为 nil：黑名单与限流降级，认证主流程不受影响
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, repo, jwtMgr
}

func createTestUser(repo *repository.Repository, email, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       "user-" + email,
		TenantID:     "tenant-1",
		Name:         "测试用户",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Tenant:       &model.Tenant{TenantID: "tenant-1", Name: "测试港务集团", IsActive: true},
	}
	repo.User.(*mockUserRepo).users[user.UserID] = user
	return user
}

func TestLogin_Success(t *testing.T) {
	svc, repo, jwtMgr := setupTestAuthService()
	createTestUser(repo, "planner@test.com", "password123", model.RolePlanner)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "planner@test.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Errorf("期望返回 Token 对，实际 access=%q refresh=%q", result.AccessToken, result.RefreshToken)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("期望 ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
	if result.User.Role != model.RolePlanner {
		t.Errorf("期望角色=planner，实际=%s", result.User.Role)
	}

	// Token 中应携带租户上下文
	claims, err := jwtMgr.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("解析 AccessToken 失败: %v", err)
	}
	if claims.TenantID != "tenant-1" {
		t.Errorf("期望 TenantID=tenant-1，实际=%s", claims.TenantID)
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 TokenType=access，实际=%s", claims.TokenType)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	createTestUser(repo, "planner@test.com", "password123", model.RolePlanner)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "planner@test.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望凭证错误，实际=%v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@test.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("未知邮箱应与密码错误不可区分，实际=%v", err)
	}
}

func TestLogin_DisabledTenant(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	user := createTestUser(repo, "planner@test.com", "password123", model.RolePlanner)
	user.Tenant.IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "planner@test.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrTenantDisabled) {
		t.Errorf("期望租户停用错误，实际=%v", err)
	}
}

func TestRefreshToken_Success(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	createTestUser(repo, "planner@test.com", "password123", model.RolePlanner)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "planner@test.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	result, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	if result.AccessToken == "" {
		t.Errorf("期望签发新 AccessToken")
	}
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	createTestUser(repo, "planner@test.com", "password123", model.RolePlanner)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "planner@test.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	// 用 access token 调刷新接口应被拒绝
	_, err = svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	if !errors.Is(err, ErrNotRefreshToken) {
		t.Errorf("期望 token 类型错误，实际=%v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	user := createTestUser(repo, "planner@test.com", "password123", model.RolePlanner)

	// 原密码错误
	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-456",
	})
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Errorf("期望原密码错误，实际=%v", err)
	}

	// 修改成功后新密码可登录
	err = svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "new-password-456",
	})
	if err != nil {
		t.Fatalf("修改密码失败: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "planner@test.com",
		Password: "new-password-456",
	}); err != nil {
		t.Errorf("新密码登录失败: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "planner@test.com",
		Password: "password123",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("旧密码应失效，实际=%v", err)
	}
}

func TestGetCurrentTenant(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	result, err := svc.GetCurrentTenant(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("查询当前租户失败: %v", err)
	}
	if result.ID != "tenant-1" || !result.IsActive {
		t.Errorf("期望 tenant-1 启用中，实际=%+v", result)
	}

	if _, err := svc.GetCurrentTenant(context.Background(), "tenant-missing"); !errors.Is(err, ErrTenantNotFound) {
		t.Errorf("期望租户不存在错误，实际=%v", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	user := createTestUser(repo, "planner@test.com", "password123", model.RolePlanner)

	result, err := svc.GetCurrentUser(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("查询当前用户失败: %v", err)
	}
	if result.Email != "planner@test.com" {
		t.Errorf("期望邮箱=planner@test.com，实际=%s", result.Email)
	}
	if result.Tenant == nil || result.Tenant.ID != "tenant-1" {
		t.Errorf("期望租户信息=tenant-1，实际=%v", result.Tenant)
	}

	if _, err := svc.GetCurrentUser(context.Background(), "user-missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望用户不存在错误，实际=%v", err)
	}
}
