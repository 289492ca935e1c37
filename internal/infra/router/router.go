/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-15 11:30:55
 * @LastEditTime: 2026-10-14 17:12:45
 * @LastEditors: 安知鱼
 */
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/fintaa-site/internal/app/middleware"
	auth_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/auth"
	contact_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/contact"
	media_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/media"
	page_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/page"
	rss_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/rss"
	site_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/site"
	sitemap_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/sitemap"
	version_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/version"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}

// 登录接口每个IP每分钟的请求数
const (
	loginRateLimit = 10
	loginRateBurst = 5
)

// Options 路由的可选配置
type Options struct {
	// MediaDir 非空时通过 /media 提供本地存储的文件
	MediaDir string
	// ContactRateLimit 每个IP每分钟允许的联系表单提交次数，0 为不限制
	ContactRateLimit int
	ContactRateBurst int
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler    *auth_handler.AuthHandler
	contactHandler *contact_handler.Handler
	pageHandler    *page_handler.Handler
	mediaHandler   *media_handler.Handler
	siteHandler    *site_handler.Handler
	sitemapHandler *sitemap_handler.Handler
	rssHandler     *rss_handler.Handler
	versionHandler *version_handler.Handler
	mw             *middleware.Middleware
	opts           Options
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.AuthHandler,
	contactHandler *contact_handler.Handler,
	pageHandler *page_handler.Handler,
	mediaHandler *media_handler.Handler,
	siteHandler *site_handler.Handler,
	sitemapHandler *sitemap_handler.Handler,
	rssHandler *rss_handler.Handler,
	versionHandler *version_handler.Handler,
	mw *middleware.Middleware,
	opts Options,
) *Router {
	return &Router{
		authHandler:    authHandler,
		contactHandler: contactHandler,
		pageHandler:    pageHandler,
		mediaHandler:   mediaHandler,
		siteHandler:    siteHandler,
		sitemapHandler: sitemapHandler,
		rssHandler:     rssHandler,
		versionHandler: versionHandler,
		mw:             mw,
		opts:           opts,
	}
}

// Setup 将所有路由注册到 Gin 引擎。
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Cors())

	apiGroup := engine.Group("/api")
	apiGroup.Use(NoCacheMiddleware())

	r.registerAuthRoutes(apiGroup)
	r.registerVersionRoutes(apiGroup)

	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(r.mw.JWTAuth())
	r.registerContactRoutes(adminGroup)
	r.registerPageRoutes(adminGroup)
	r.registerMediaRoutes(adminGroup)

	r.registerSitemapRoutes(engine) // 直接注册到engine，不使用/api前缀
	r.registerSiteRoutes(engine)
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.CustomRateLimit(loginRateLimit, loginRateBurst), r.authHandler.Login)
	}
}

func (r *Router) registerVersionRoutes(api *gin.RouterGroup) {
	api.GET("/version", r.versionHandler.GetVersion)
	api.GET("/version/string", r.versionHandler.GetVersionString)
}

func (r *Router) registerContactRoutes(admin *gin.RouterGroup) {
	submissions := admin.Group("/contact-submissions")
	{
		submissions.GET("", r.contactHandler.List)
		submissions.DELETE("", r.contactHandler.Delete)
		submissions.GET("/pending-count", r.contactHandler.PendingCount)
		submissions.GET("/choices", r.contactHandler.Choices)
		submissions.POST("/mark-responded", r.contactHandler.MarkResponded)
		submissions.POST("/mark-pending", r.contactHandler.MarkPending)
		submissions.GET("/:id", r.contactHandler.Get)
		submissions.PATCH("/:id", r.contactHandler.Update)
	}
}

func (r *Router) registerPageRoutes(admin *gin.RouterGroup) {
	admin.GET("/page-types", r.pageHandler.PageTypes)

	pages := admin.Group("/pages")
	{
		pages.POST("", r.pageHandler.Create)
		pages.GET("/:id", r.pageHandler.GetByID)
		pages.PUT("/:id", r.pageHandler.Update)
		pages.DELETE("/:id", r.pageHandler.Delete)
		pages.GET("/:id/children", r.pageHandler.Children)
		pages.POST("/:id/publish", r.pageHandler.Publish)
		pages.POST("/:id/unpublish", r.pageHandler.Unpublish)
		pages.POST("/:id/privacy", r.pageHandler.SetPrivacy)
	}
}

func (r *Router) registerMediaRoutes(admin *gin.RouterGroup) {
	admin.POST("/media", r.mediaHandler.Upload)
	admin.DELETE("/media", r.mediaHandler.Delete)
}

func (r *Router) registerSitemapRoutes(engine *gin.Engine) {
	engine.GET("/sitemap.xml", r.sitemapHandler.GetSitemap)
	engine.GET("/robots.txt", r.sitemapHandler.GetRobots)
	engine.GET("/rss.xml", r.rssHandler.GetRSSFeed)
}

// registerSiteRoutes 公开页面由 NoRoute 按 url_path 分发
func (r *Router) registerSiteRoutes(engine *gin.Engine) {
	if r.opts.MediaDir != "" {
		engine.StaticFS("/media", http.Dir(r.opts.MediaDir))
	}

	limit := middleware.RateLimitWith(r.opts.ContactRateLimit, r.opts.ContactRateBurst, r.siteHandler.RejectSubmission)
	engine.POST("/contact-form/", limit, r.siteHandler.Submit)
	engine.GET("/contact-form/", r.siteHandler.RedirectHome)
	engine.NoRoute(middleware.OnlyForMethod(http.MethodPost, limit), r.siteHandler.Dispatch)
}
