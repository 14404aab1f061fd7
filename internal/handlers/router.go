package handlers

import (
	"net/http"

	"todo-list/internal/middleware"
	"todo-list/internal/monitoring"
	"todo-list/internal/services"
	"todo-list/internal/sessions"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RouterDeps bundles everything the router wires together. All dependencies
// are constructed by the caller and injected; nothing here is global.
type RouterDeps struct {
	Log     zerolog.Logger
	Auth    services.AuthService
	Tasks   services.TaskService
	Codec   *sessions.CookieCodec
	Store   *sessions.Store
	DB      *gorm.DB
	Limiter *middleware.IPRateLimiter
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RecoveryWithLog(deps.Log),
		middleware.RequestLogger(deps.Log),
		monitoring.Middleware(),
		cors.Default(),
		middleware.ResolveSession(deps.Auth, deps.Codec),
	)

	registerHandler := NewRegisterHandler(deps.Auth, deps.Codec)
	authHandler := NewAuthHandler(deps.Auth, deps.Codec)
	logoutHandler := NewLogoutHandler(deps.Auth, deps.Codec)
	taskHandler := NewTaskHandler(deps.Tasks, deps.Auth, deps.Codec)
	userHandler := NewUserHandler()

	// Anonymous home view: the landing spot for soft redirects.
	router.GET("/", func(c *gin.Context) {
		_, authenticated := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"message":       "todo list",
			"authenticated": authenticated,
		})
	})

	router.GET("/healthz", monitoring.HealthHandler(deps.DB, deps.Store))
	router.GET("/metrics", monitoring.Handler())

	public := router.Group("/")
	if deps.Limiter != nil {
		public.Use(deps.Limiter.Middleware())
	}
	public.POST("/register", registerHandler.Registration)
	public.POST("/login", authHandler.Login)
	public.POST("/logout", logoutHandler.Logout)

	protected := router.Group("/")
	protected.Use(middleware.RequireUser())
	protected.GET("/me", userHandler.Profile)
	protected.GET("/tasks", taskHandler.ListTasks)
	protected.POST("/tasks", taskHandler.CreateTask)
	protected.POST("/tasks/:id/toggle", taskHandler.ToggleStatus)

	return router
}
