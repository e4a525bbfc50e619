package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goumiwalid/berth-planning-app/config"
	"github.com/goumiwalid/berth-planning-app/internal/api/handler"
	"github.com/goumiwalid/berth-planning-app/internal/api/middleware"
	"github.com/goumiwalid/berth-planning-app/pkg/jwt"
	"github.com/goumiwalid/berth-planning-app/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
//
// 角色矩阵：
//   - admin：全部权限
//   - planner：船舶与泊位管理
//   - viewer / agent：只读
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录接口限流防爆破）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)
			authorized.GET("/tenants/current", h.Auth.GetCurrentTenant)

			// 用户管理模块（仅 admin）
			users := authorized.Group("/users", middleware.RoleAuth("admin"))
			{
				users.POST("", h.User.CreateUser)
				users.GET("", h.User.ListUsers)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			// 码头模块（参考数据，只读）
			terminals := authorized.Group("/terminals")
			{
				terminals.GET("", h.Terminal.ListTerminals)
				terminals.GET("/:id", h.Terminal.GetTerminal)
			}

			// 泊位模块
			berths := authorized.Group("/berths")
			{
				berths.GET("", h.Berth.ListBerths)
				berths.GET("/:id", h.Berth.GetBerth)
				berths.POST("", middleware.RoleAuth("admin", "planner"), h.Berth.CreateBerth)
				berths.PUT("/:id", middleware.RoleAuth("admin", "planner"), h.Berth.UpdateBerth)
				berths.DELETE("/:id", middleware.RoleAuth("admin"), h.Berth.DeleteBerth)
			}

			// 船舶靠泊模块
			vessels := authorized.Group("/vessels")
			{
				vessels.GET("", h.Vessel.ListVessels)
				vessels.POST("", middleware.RoleAuth("admin", "planner"), h.Vessel.CreateVessel)
				vessels.POST("/check", middleware.RoleAuth("admin", "planner"), h.Vessel.CheckVessel)
				vessels.DELETE("", middleware.RoleAuth("admin"), h.Vessel.ClearVessels)
				vessels.GET("/:voyageNumber", h.Vessel.GetVessel)
				vessels.PUT("/:voyageNumber", middleware.RoleAuth("admin", "planner"), h.Vessel.UpdateVessel)
				vessels.DELETE("/:voyageNumber", middleware.RoleAuth("admin", "planner"), h.Vessel.DeleteVessel)
			}

			// 仪表盘模块
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/metrics", h.Dashboard.GetMetrics)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/berth-plan", middleware.RoleAuth("admin", "planner", "viewer"), h.Export.ExportBerthPlan)
			}

			// 日历订阅模块
			calendar := authorized.Group("/calendar")
			{
				calendar.GET("/vessels.ics", h.Calendar.TenantCalendar)
				calendar.GET("/berths/:id", h.Calendar.BerthCalendar)
			}
		}
	}

	return r
}
