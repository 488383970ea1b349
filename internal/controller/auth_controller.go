package controller

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/service"
	"course_mgmt_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest 注册请求
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Username     string `json:"username" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	IsInstructor bool   `json:"is_instructor"`
}

// Register godoc
// @Summary 注册新用户
// @Description 邮箱与用户名均需唯一，重复注册返回 409
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} util.Response{data=model.User} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱或用户名已被占用"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		Password:     req.Password,
		IsInstructor: req.IsInstructor,
	}

	if err := c.AuthService.Register(user); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// LoginRequest 登录请求
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 用户名 + 密码换取 JWT 令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"access_token": token, "token_type": "bearer"})
}

// GetProfile godoc
// @Summary 获取当前用户资料
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/auth/me [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, user)
}
