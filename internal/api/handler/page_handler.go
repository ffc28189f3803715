package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/NyathiBlesing/S-M-S/internal/api/middleware"
	"github.com/NyathiBlesing/S-M-S/internal/model"
)

// PageHandler 静态页面投递处理器
// 页面本身由前端目录提供，这里只做会话/角色驱动的分发
type PageHandler struct {
	staticDir string
}

// NewPageHandler 创建 PageHandler
func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

func (h *PageHandler) file(name string) string {
	return filepath.Join(h.staticDir, name)
}

// Home 首页分发
// GET /  — 管理员跳转仪表盘，学生投递主页（匿名由 PageAuth 先行重定向到登录页）
func (h *PageHandler) Home(c *gin.Context) {
	role := c.GetString(middleware.CtxRole)
	if role == model.RoleAdmin {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.File(h.file("home.html"))
}

// LoginPage 登录页
// GET /login
func (h *PageHandler) LoginPage(c *gin.Context) {
	c.File(h.file("login.html"))
}

// SignupPage 注册页
// GET /signup
func (h *PageHandler) SignupPage(c *gin.Context) {
	c.File(h.file("signup.html"))
}

// Dashboard 管理员仪表盘
// GET /dashboard — 匿名重定向与角色拦截由中间件完成
func (h *PageHandler) Dashboard(c *gin.Context) {
	c.File(h.file("admindashboard.html"))
}
