// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/integration/entrypoint/controller"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	expenseController  *controller.ExpenseController
	incomeController   *controller.IncomeController
	debtController     *controller.ObligationController
	loanController     *controller.ObligationController
	insightsController *controller.InsightsController
	writeRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	debtController *controller.ObligationController,
	loanController *controller.ObligationController,
	insightsController *controller.InsightsController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		expenseController:  expenseController,
		incomeController:   incomeController,
		debtController:     debtController,
		loanController:     loanController,
		insightsController: insightsController,
		writeRateLimiter:   writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Mutating routes share the
// write rate limiter so bursts stay inside the record store's budget.
func (r *Router) setupAPIRoutes() {
	limit := func() gin.HandlerFunc {
		if r.writeRateLimiter != nil {
			return r.writeRateLimiter.Middleware()
		}
		return func(*gin.Context) {}
	}()

	v1 := r.engine.Group("/api/v1")
	{
		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.POST("", limit, r.expenseController.Create)
				expenses.PATCH("/:id", limit, r.expenseController.Update)
				expenses.DELETE("/:id", limit, r.expenseController.Archive)
			}
		}

		if r.incomeController != nil {
			income := v1.Group("/income")
			{
				income.GET("", r.incomeController.List)
				income.GET("/:id", r.incomeController.Get)
				income.POST("", limit, r.incomeController.Create)
				income.PATCH("/:id", limit, r.incomeController.Update)
				income.DELETE("/:id", limit, r.incomeController.Archive)
			}
		}

		if r.debtController != nil {
			r.mountObligationRoutes(v1.Group("/debts"), r.debtController, limit)
		}
		if r.loanController != nil {
			r.mountObligationRoutes(v1.Group("/loans"), r.loanController, limit)
		}

		if r.insightsController != nil {
			v1.GET("/insights", r.insightsController.Get)
		}
	}
}

// mountObligationRoutes wires the shared debt/loan handler set under a
// route group.
func (r *Router) mountObligationRoutes(group *gin.RouterGroup, c *controller.ObligationController, limit gin.HandlerFunc) {
	group.GET("", c.List)
	group.GET("/:id", c.Get)
	group.POST("", limit, c.Create)
	group.PATCH("/:id", limit, c.Update)
	group.POST("/:id/payments", limit, c.RecordPayment)
	group.DELETE("/:id", limit, c.Archive)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
