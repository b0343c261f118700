package router

import (
	"net/http"

	"todo-go/internal/config"
	"todo-go/internal/handler"
	"todo-go/internal/middleware"
	"todo-go/internal/repository"
	"todo-go/internal/service"
	"todo-go/internal/utils"
	"todo-go/pkg/redislimiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 路径存在但方法不匹配时返回405
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Not found")
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, tokenRepo, jwtManager, cfg)
	taskService := service.NewTaskService(taskRepo)
	noteService := service.NewNoteService(noteRepo)
	adminService := service.NewAdminService(userRepo, taskRepo, noteRepo)

	// 登录限流器，未配置Redis时为nil
	var limiter *redislimiter.Limiter
	if redisClient != nil {
		limiter = redislimiter.New(
			redisClient,
			cfg.Redis.MaxLoginAttempts,
			"login_attempts:",
			cfg.Redis.GetLoginWindow(),
		)
	}

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService, limiter)
	taskHandler := handler.NewTaskHandler(taskService)
	noteHandler := handler.NewNoteHandler(noteService)
	adminHandler := handler.NewAdminHandler(adminService)

	// 公开路由
	r.POST("/users/register", authHandler.Register)
	r.POST("/users/login", authHandler.Login)

	// 认证路由
	authorized := r.Group("")
	authorized.Use(middleware.AuthMiddleware(jwtManager))
	{
		// 任务管理
		authorized.GET("/task", taskHandler.List)
		authorized.POST("/task", taskHandler.Create)
		authorized.GET("/task/:id", taskHandler.Get)
		authorized.PUT("/task/:id", taskHandler.Update)
		authorized.PATCH("/task/:id", taskHandler.Update)
		authorized.DELETE("/task/:id", taskHandler.Delete)

		// 任务归档/激活
		authorized.PATCH("/tasks/archive/:id", taskHandler.Archive)
		authorized.PATCH("/tasks/activate/:id", taskHandler.Activate)

		// 笔记管理
		authorized.GET("/note", noteHandler.List)
		authorized.POST("/note", noteHandler.Create)
		authorized.GET("/note/:id", noteHandler.Get)
		authorized.PUT("/note/:id", noteHandler.Update)
		authorized.PATCH("/note/:id", noteHandler.Update)
		authorized.DELETE("/note/:id", noteHandler.Delete)

		// 管理员接口
		adminGroup := authorized.Group("")
		adminGroup.Use(middleware.AdminMiddleware())
		{
			adminGroup.GET("/all_tasks", adminHandler.AllTasks)
			adminGroup.GET("/all_notes", adminHandler.AllNotes)
			adminGroup.GET("/all_users", adminHandler.AllUsers)
			adminGroup.PATCH("/set_as_admin/:id", adminHandler.SetAsAdmin)
			adminGroup.PATCH("/set_as_normal_user/:id", adminHandler.SetAsNormalUser)
		}
	}

	return r
}
