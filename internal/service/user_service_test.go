package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/model"
	"github.com/goumiwalid/berth-planning-app/internal/repository"
)

func setupTestUserService() (UserService, *repository.Repository) {
	repo, _, _ := newTestRepo()
	return NewUserService(repo, zap.NewNop()), repo
}

func TestUserCreate_Success(t *testing.T) {
	svc, _ := setupTestUserService()

	result, err := svc.Create(context.Background(), testTenantID, &dto.CreateUserRequest{
		Name:     "新计划员",
		Email:    "new-planner@test.com",
		Password: "password123",
		Role:     model.RolePlanner,
	}, testCallerID)
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	if result.Email != "new-planner@test.com" || result.Role != model.RolePlanner {
		t.Errorf("期望 new-planner@test.com/planner，实际=%s/%s", result.Email, result.Role)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	svc, repo := setupTestUserService()
	createTestUser(repo, "taken@test.com", "password123", model.RoleViewer)

	_, err := svc.Create(context.Background(), testTenantID, &dto.CreateUserRequest{
		Name:     "重复邮箱",
		Email:    "taken@test.com",
		Password: "password123",
		Role:     model.RoleViewer,
	}, testCallerID)
	if !errors.Is(err, ErrEmailAlreadyUsed) {
		t.Errorf("期望邮箱已占用错误，实际=%v", err)
	}
}

func TestUserUpdate_Role(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "viewer@test.com", "password123", model.RoleViewer)

	role := model.RolePlanner
	result, err := svc.Update(context.Background(), testTenantID, user.UserID, &dto.UpdateUserRequest{
		Role: &role,
	}, testCallerID)
	if err != nil {
		t.Fatalf("更新用户失败: %v", err)
	}
	if result.Role != model.RolePlanner {
		t.Errorf("期望角色=planner，实际=%s", result.Role)
	}
}

func TestUserDelete_TenantIsolation(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "viewer@test.com", "password123", model.RoleViewer)

	if err := svc.Delete(context.Background(), "tenant-other", user.UserID, testCallerID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("跨租户删除应报用户不存在，实际=%v", err)
	}
	if err := svc.Delete(context.Background(), testTenantID, user.UserID, testCallerID); err != nil {
		t.Errorf("同租户删除失败: %v", err)
	}
}
