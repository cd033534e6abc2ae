package rest

import (
	"github.com/Dhoini/invoice-dashboard/internal/api/rest/handlers"
	"github.com/Dhoini/invoice-dashboard/internal/api/rest/middleware"
	"github.com/Dhoini/invoice-dashboard/internal/gateway"
	"github.com/Dhoini/invoice-dashboard/internal/service"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps bundles everything the router needs.
type Deps struct {
	AuthService    *service.AuthService
	InvoiceService *service.InvoiceService
	Gateway        *gateway.Client
	Cache          handlers.ViewCache
	TokenValidator middleware.TokenValidator
}

// SetupRouter configures the Gin router with all routes and middleware.
func SetupRouter(log *logger.Logger, registry *prometheus.Registry, deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.LoggerMiddleware(log))
	r.Use(gin.Recovery())

	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	authHandler := handlers.NewAuthHandler(deps.AuthService, log)
	invoiceHandler := handlers.NewInvoiceHandler(deps.InvoiceService, deps.Gateway, deps.Cache, log)
	dashboardHandler := handlers.NewDashboardHandler(deps.Gateway, log)
	customerHandler := handlers.NewCustomerHandler(deps.Gateway, log)

	jwtMiddleware := middleware.NewJWTMiddleware(deps.TokenValidator, log)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		dashboard := v1.Group("/dashboard", jwtMiddleware.RequireAuth())
		{
			dashboard.GET("/cards", dashboardHandler.GetCards)
			dashboard.GET("/latest-invoices", dashboardHandler.GetLatestInvoices)
			dashboard.GET("/revenue", dashboardHandler.GetRevenue)

			invoices := dashboard.Group("/invoices")
			{
				invoices.GET("", invoiceHandler.GetInvoices)
				invoices.GET("/pages", invoiceHandler.GetInvoicesPages)
				invoices.GET("/:id", invoiceHandler.GetInvoice)
				invoices.POST("", invoiceHandler.CreateInvoice)
				invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
				invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
			}

			customers := dashboard.Group("/customers")
			{
				customers.GET("", customerHandler.GetCustomers)
				customers.GET("/table", customerHandler.GetCustomerTable)
			}
		}
	}

	return r
}
