package router

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wa_admin_202610/internal/controller"
	"wa_admin_202610/internal/middleware"
	"wa_admin_202610/internal/service"

	_ "wa_admin_202610/docs"
)

// Controllers 全部 HTTP 处理器
type Controllers struct {
	Owner       *controller.OwnerController
	Store       *controller.StoreController
	Order       *controller.OrderController
	Payment     *controller.PaymentController
	Integration *controller.IntegrationController
	Report      *controller.ReportController
	Settings    *controller.SettingsController
	Health      *controller.HealthController
}

// NewControllers 所有处理器共享同一个 AdminService
func NewControllers(adminService *service.AdminService) *Controllers {
	return &Controllers{
		Owner:       controller.NewOwnerController(adminService),
		Store:       controller.NewStoreController(adminService),
		Order:       controller.NewOrderController(adminService),
		Payment:     controller.NewPaymentController(adminService),
		Integration: controller.NewIntegrationController(adminService),
		Report:      controller.NewReportController(adminService),
		Settings:    controller.NewSettingsController(adminService),
		Health:      controller.NewHealthController(adminService),
	}
}

// Options 路由级配置
type Options struct {
	ExportCooldown time.Duration
}

// NewEngine 创建挂好中间件的 gin 引擎
func NewEngine(l *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.Recovery(l),
		middleware.Metrics(),
	)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctl *Controllers, opts Options) {
	// 1. 运维路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", ctl.Health.Health)

	// 2. API 路由组
	api := r.Group("/api/v1")
	{
		owners := api.Group("/owners")
		{
			owners.GET("", ctl.Owner.List)
			owners.GET("/:id", ctl.Owner.Get)
			owners.PATCH("/:id/status", ctl.Owner.UpdateStatus)
			owners.DELETE("/:id", ctl.Owner.Delete)
		}

		stores := api.Group("/stores")
		{
			stores.GET("", ctl.Store.List)
			stores.GET("/:id", ctl.Store.Get)
			stores.PATCH("/:id/status", ctl.Store.UpdateStatus)
			stores.DELETE("/:id", ctl.Store.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", ctl.Order.List)
			orders.GET("/:id", ctl.Order.Get)
			orders.PATCH("/:id/status", ctl.Order.UpdateStatus)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", ctl.Payment.List)
			payments.GET("/:id", ctl.Payment.Get)
			payments.PATCH("/:id/status", ctl.Payment.UpdateStatus)
		}

		integrations := api.Group("/integrations")
		{
			integrations.GET("", ctl.Integration.List)
			integrations.GET("/:id", ctl.Integration.Get)
			integrations.PATCH("/:id/status", ctl.Integration.Toggle)
		}

		// GET /api/v1/transitions/orders/pending
		api.GET("/transitions/:entity/:status", ctl.Report.Transitions)

		api.GET("/dashboard/stats", ctl.Report.Dashboard)

		reports := api.Group("/reports")
		{
			reports.GET("", ctl.Report.Metrics)
			reports.POST("/export",
				middleware.ExportRateLimit(middleware.NewCooldownLimiter(), opts.ExportCooldown),
				ctl.Report.Export,
			)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", ctl.Settings.Get)
			settings.PUT("", ctl.Settings.Update)
		}
	}
}
