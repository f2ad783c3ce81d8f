package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rbac-admin/internal/controllers"
	"rbac-admin/internal/controllers/auth"
	"rbac-admin/internal/controllers/permission"
	"rbac-admin/internal/controllers/role"
	"rbac-admin/internal/controllers/user"
	"rbac-admin/internal/middleware"
	"rbac-admin/internal/service"
	"rbac-admin/internal/session"
	"rbac-admin/pkg/cache"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/middlewares"
	"rbac-admin/pkg/prometheus"
)

// publicRoutes 无需登录即可访问的接口
var publicRoutes = []string{
	middleware.Route(http.MethodPost, "/v1/auth/login"),
}

// New gin router
func New(srv service.Service, sessions *session.Manager, c cache.Cache, opts ...Option) *gin.Engine {
	o := newOption(opts...)
	router := gin.New()

	router.Use(
		middlewares.SetZapLogger(o.logger),
		middlewares.Log,
		middlewares.Recovery,
		middlewares.Metric,
		middlewares.CrossDomain(o.allowedOrigins...),
		middlewares.CheckRedis(o.cacheActive),
	)
	router.GET("/health", controllers.Health(o.healthProbes...))
	router.GET("/metrics", gin.WrapH(prometheus.Handler()))

	v1Router := router.Group("/v1", middleware.Auth(sessions, publicRoutes...))
	logger.RegisterLog(v1Router)
	authRouterGroup(v1Router, srv)
	systemRouterGroup(v1Router.Group("/system", middleware.RepeatSubmit(c, o.repeatInterval)), srv)
	return router
}

func authRouterGroup(v1Router *gin.RouterGroup, srv service.Service) {
	a := auth.NewAuthController(srv)
	authRouter := v1Router.Group("/auth")
	authRouter.POST("/login", a.Login)
	authRouter.POST("/logout", a.Logout)
	authRouter.GET("/profile", a.Profile)
}

func systemRouterGroup(systemRouter *gin.RouterGroup, srv service.Service) {
	u := user.NewUserController(srv)
	userRouter := systemRouter.Group("/users")
	userRouter.GET("", u.List)
	userRouter.POST("", u.Create)
	userRouter.PUT("/password", u.ChangePassword)
	userRouter.GET("/:id", u.Get)
	userRouter.PUT("/:id", u.Update)
	userRouter.DELETE("/:id", u.Delete)
	userRouter.PUT("/:id/roles", u.AssignRoles)
	userRouter.POST("/:id/password/reset", u.ResetPassword)

	r := role.NewRoleController(srv)
	roleRouter := systemRouter.Group("/roles")
	roleRouter.GET("", r.List)
	roleRouter.POST("", r.Create)
	roleRouter.GET("/all", r.All)
	roleRouter.GET("/:id", r.Get)
	roleRouter.PUT("/:id", r.Update)
	roleRouter.DELETE("/:id", r.Delete)
	roleRouter.PUT("/:id/permissions", r.AssignPermissions)

	p := permission.NewPermissionController(srv)
	permissionRouter := systemRouter.Group("/permissions")
	permissionRouter.GET("", p.Tree)
	permissionRouter.POST("", p.Create)
	permissionRouter.GET("/:id", p.Get)
	permissionRouter.PUT("/:id", p.Update)
	permissionRouter.DELETE("/:id", p.Delete)
}
