package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/goumiwalid/berth-planning-app/internal/dto"
	"github.com/goumiwalid/berth-planning-app/internal/service"
	"github.com/goumiwalid/berth-planning-app/pkg/response"
)

// UserHandler 用户管理模块 HTTP 处理器（仅 admin）
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateUser 创建用户
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.userSvc.Create(c.Request.Context(), tenantID, &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyUsed) {
			response.Conflict(c, 12001, "邮箱已被使用")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListUsers 用户列表（分页）
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}

	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.userSvc.List(c.Request.Context(), tenantID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// UpdateUser 更新用户
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.userSvc.Update(c.Request.Context(), tenantID, c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12002, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteUser 删除用户（软删除）
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	tenantID, ok := MustGetTenantID(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), tenantID, c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12002, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
