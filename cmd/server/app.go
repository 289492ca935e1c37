/*
 * @Description: 应用装配，负责初始化与依赖注入
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2026-10-14 17:40:02
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anzhiyu-c/fintaa-site/internal/app/listener"
	"github.com/anzhiyu-c/fintaa-site/internal/app/middleware"
	"github.com/anzhiyu-c/fintaa-site/internal/app/task"
	"github.com/anzhiyu-c/fintaa-site/internal/infra/persistence/database"
	"github.com/anzhiyu-c/fintaa-site/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/fintaa-site/internal/infra/router"
	"github.com/anzhiyu-c/fintaa-site/internal/infra/storage"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/event"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/version"
	"github.com/anzhiyu-c/fintaa-site/pkg/config"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
	"github.com/anzhiyu-c/fintaa-site/pkg/idgen"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/auth"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/contact"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/flash"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/media"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/rss"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/sitemap"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/utility"
	"github.com/redis/go-redis/v9"

	auth_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/auth"
	contact_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/contact"
	media_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/media"
	page_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/page"
	rss_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/rss"
	site_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/site"
	sitemap_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/sitemap"
	version_handler "github.com/anzhiyu-c/fintaa-site/pkg/handler/version"

	"github.com/gin-gonic/gin"
)

// Core 持有数据库、缓存与核心领域服务，命令行子命令与 HTTP 服务共用
type Core struct {
	cfg         *config.Config
	dbType      string
	sqlDB       *sql.DB
	redisClient *redis.Client
	repos       repository.Repositories
	txMgr       repository.TransactionManager
	cacheSvc    utility.CacheService
	eventBus    *event.EventBus
	pageSvc     page.Service
	contactSvc  contact.Service
}

// NewCore 连接数据库与缓存并构建领域服务，不执行迁移
func NewCore(cfg *config.Config) (*Core, error) {
	if err := idgen.InitSqidsEncoderWithSeed(cfg.GetString(config.KeyIDSeed)); err != nil {
		return nil, fmt.Errorf("初始化公共ID编码器失败: %w", err)
	}

	dbType := cfg.GetString(config.KeyDBType)
	dbDialect, err := database.DialectOf(dbType)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}

	// Redis 不可用时自动降级到内存缓存
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("redis 初始化失败: %w", err)
	}
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	repos := ent.NewRepositories(sqlDB, dbDialect)
	txMgr := ent.NewTransactionManager(sqlDB, dbDialect)
	eventBus := event.NewEventBus()

	return &Core{
		cfg:         cfg,
		dbType:      dbType,
		sqlDB:       sqlDB,
		redisClient: redisClient,
		repos:       repos,
		txMgr:       txMgr,
		cacheSvc:    cacheSvc,
		eventBus:    eventBus,
		pageSvc:     page.NewService(repos.Page, txMgr, cacheSvc, eventBus),
		contactSvc:  contact.NewService(repos.ContactSubmission, cacheSvc, eventBus),
	}, nil
}

// Migrate 创建或升级数据表，并确保页面树根节点存在
func (c *Core) Migrate(ctx context.Context) error {
	if err := database.Migrate(ctx, c.sqlDB, c.dbType); err != nil {
		return err
	}
	root, err := c.pageSvc.EnsureRoot(ctx)
	if err != nil {
		return fmt.Errorf("初始化根页面失败: %w", err)
	}
	log.Printf("✅ 页面树根节点就绪 (ID=%d)", root.ID)
	return nil
}

// Close 关闭事件总线、数据库与 Redis 连接
func (c *Core) Close() {
	c.eventBus.Shutdown()
	log.Println("执行清理操作：关闭数据库连接...")
	c.sqlDB.Close()
	if c.redisClient != nil {
		log.Println("关闭 Redis 连接...")
		c.redisClient.Close()
	}
}

func (c *Core) Config() *config.Config {
	return c.cfg
}

func (c *Core) DB() *sql.DB {
	return c.sqlDB
}

func (c *Core) Repositories() repository.Repositories {
	return c.repos
}

func (c *Core) CacheService() utility.CacheService {
	return c.cacheSvc
}

// EventBus 返回事件总线，用于发布和订阅事件
func (c *Core) EventBus() *event.EventBus {
	return c.eventBus
}

func (c *Core) PageService() page.Service {
	return c.pageSvc
}

func (c *Core) ContactService() contact.Service {
	return c.contactSvc
}

// App 在 Core 之上装配 HTTP 服务与定时任务
type App struct {
	*Core
	engine     *gin.Engine
	scheduler  *task.Scheduler
	appVersion string
}

func (a *App) PrintBanner() {
	log.Println("--------------------------------------------------------")
	log.Printf(" Fintaa Site - Version: %s", version.GetVersionString())
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	appVersion := version.GetVersion()

	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return NewAppWithConfig(cfg, appVersion)
}

// NewAppWithConfig 使用已加载的配置构建应用
func NewAppWithConfig(cfg *config.Config, appVersion string) (*App, func(), error) {
	// --- Phase 2: 初始化基础设施 ---
	core, err := NewCore(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := core.Close

	if err := core.Migrate(context.Background()); err != nil {
		cleanup()
		return nil, nil, err
	}

	// --- Phase 3: 初始化业务服务 ---
	authSvc, err := auth.NewServiceFromConfig(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	flashSvc := flash.NewService(core.cacheSvc)

	storageType := cfg.GetString(config.KeyStorageType)
	provider, err := storage.NewProvider(storageType, storage.Options{
		Bucket:    cfg.GetString(config.KeyStorageBucket),
		Region:    cfg.GetString(config.KeyStorageRegion),
		Endpoint:  cfg.GetString(config.KeyStorageEndpoint),
		AccessKey: cfg.GetString(config.KeyStorageAccessKey),
		SecretKey: cfg.GetString(config.KeyStorageSecretKey),
		BaseURL:   cfg.GetString(config.KeyStorageBaseURL),
		LocalDir:  cfg.GetString(config.KeyStorageLocalDir),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("初始化媒体存储失败: %w", err)
	}
	mediaSvc := media.NewService(provider)

	siteURL := cfg.GetString(config.KeySiteURL)
	sitemapSvc := sitemap.NewService(core.pageSvc, siteURL)
	rssSvc := rss.NewService(core.pageSvc, core.cacheSvc, cfg.GetString(config.KeySiteName))

	// --- Phase 4: 事件监听与定时任务 ---
	listener.NewSiteEventListener(core.eventBus, rssSvc)

	scheduler := task.NewScheduler(core.pageSvc, core.contactSvc)
	if err := scheduler.RegisterJobs(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("注册定时任务失败: %w", err)
	}

	// --- Phase 5: 初始化表现层 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	opts := router.Options{
		ContactRateLimit: cfg.GetInt(config.KeyContactRateLimit),
		ContactRateBurst: cfg.GetInt(config.KeyContactRateBurst),
	}
	if local, ok := provider.(interface{ Root() string }); ok {
		opts.MediaDir = local.Root()
	}

	appRouter := router.NewRouter(
		auth_handler.NewAuthHandler(authSvc),
		contact_handler.NewHandler(core.contactSvc),
		page_handler.NewHandler(core.pageSvc),
		media_handler.NewHandler(mediaSvc),
		site_handler.NewHandler(core.pageSvc, core.contactSvc, flashSvc),
		sitemap_handler.NewHandler(sitemapSvc),
		rss_handler.NewHandler(rssSvc, siteURL),
		version_handler.NewHandler(),
		middleware.NewMiddleware(authSvc),
		opts,
	)
	appRouter.Setup(engine)

	app := &App{
		Core:       core,
		engine:     engine,
		scheduler:  scheduler,
		appVersion: appVersion,
	}
	return app, cleanup, nil
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

// Version 返回应用的版本号
func (a *App) Version() string {
	return a.appVersion
}

// Run 启动定时任务与 HTTP 服务，收到退出信号后优雅关闭
func (a *App) Run() error {
	a.scheduler.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("收到信号 %s，正在关闭服务...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("关闭 HTTP 服务失败: %w", err)
	}
	return nil
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}
