package auth_handler

import (
	"net/http"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/response"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler 封装认证相关的控制器方法
type AuthHandler struct {
	authSvc auth.Service
}

func NewAuthHandler(authSvc auth.Service) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应体
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// Login 管理员登录
// @Summary      管理员登录
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        body  body  LoginRequest  true  "登录信息"
// @Success      200  {object}  response.Response{data=LoginResponse}
// @Failure      401  {object}  response.Response  "用户名或密码错误"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "用户名或密码格式不正确")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FailWithError(c, err, "登录失败")
		return
	}

	response.Success(c, LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   time.Unix(result.ExpiresAt, 0).UTC().Format(time.RFC3339),
	}, "登录成功")
}
