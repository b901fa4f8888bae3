// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/duitku/backend/config"
	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/usecase/expense"
	"github.com/duitku/backend/internal/application/usecase/income"
	"github.com/duitku/backend/internal/application/usecase/insights"
	"github.com/duitku/backend/internal/application/usecase/obligation"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/infra/cache"
	"github.com/duitku/backend/internal/infra/server/router"
	"github.com/duitku/backend/internal/integration/entrypoint/controller"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
	"github.com/duitku/backend/internal/integration/notion"
	"github.com/duitku/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  *notion.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config) *Injector {
	// Create the record store client and resolvers
	store := notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.Token, cfg.Notion.Version, cfg.Notion.Timeout)
	schemaResolver := persistence.NewSchemaResolver(store)
	labelResolver := persistence.NewLabelResolver(store)

	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(store, schemaResolver, labelResolver, cfg.Notion.Databases.Expenses)
	incomeRepo := persistence.NewIncomeRepository(store, schemaResolver, labelResolver, cfg.Notion.Databases.Income)
	obligationRepo := persistence.NewObligationRepository(store, schemaResolver, cfg.Notion.Databases.Debts, cfg.Notion.Databases.Loans)

	// Create the insights cache
	insightsCache := newInsightsCache(cfg)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, insightsCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, insightsCache)
	archiveExpenseUseCase := expense.NewArchiveExpenseUseCase(expenseRepo, insightsCache)

	// Create income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, insightsCache)
	listIncomeUseCase := income.NewListIncomeUseCase(incomeRepo)
	getIncomeUseCase := income.NewGetIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, insightsCache)
	archiveIncomeUseCase := income.NewArchiveIncomeUseCase(incomeRepo, insightsCache)

	// Create obligation use cases (shared by the debt and loan surfaces)
	createObligationUseCase := obligation.NewCreateObligationUseCase(obligationRepo, insightsCache)
	listObligationsUseCase := obligation.NewListObligationsUseCase(obligationRepo)
	getObligationUseCase := obligation.NewGetObligationUseCase(obligationRepo)
	updateObligationUseCase := obligation.NewUpdateObligationUseCase(obligationRepo, insightsCache)
	recordPaymentUseCase := obligation.NewRecordPaymentUseCase(obligationRepo, insightsCache)
	archiveObligationUseCase := obligation.NewArchiveObligationUseCase(obligationRepo, insightsCache)

	// Create insights use case
	computeInsightsUseCase := insights.NewComputeInsightsUseCase(
		expenseRepo,
		incomeRepo,
		obligationRepo,
		insightsCache,
		adapter.SystemClock{},
	)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		if cfg.Notion.Databases.Expenses == "" {
			return false
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := store.RetrieveDatabase(ctx, cfg.Notion.Databases.Expenses)
		return err == nil
	})

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		archiveExpenseUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomeUseCase,
		getIncomeUseCase,
		updateIncomeUseCase,
		archiveIncomeUseCase,
	)

	debtController := controller.NewObligationController(
		entity.ObligationKindDebt,
		createObligationUseCase,
		listObligationsUseCase,
		getObligationUseCase,
		updateObligationUseCase,
		recordPaymentUseCase,
		archiveObligationUseCase,
	)

	loanController := controller.NewObligationController(
		entity.ObligationKindLoan,
		createObligationUseCase,
		listObligationsUseCase,
		getObligationUseCase,
		updateObligationUseCase,
		recordPaymentUseCase,
		archiveObligationUseCase,
	)

	insightsController := controller.NewInsightsController(computeInsightsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Notion.WriteRateLimit, cfg.Notion.WriteRateWindow)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		debtController,
		loanController,
		insightsController,
		writeRateLimiter,
	)

	return &Injector{
		Config: cfg,
		Store:  store,
		Router: r,
	}
}

// newInsightsCache builds the configured cache backend. Redis failures at
// startup fall back to the in-process cache rather than refusing to boot.
func newInsightsCache(cfg *config.Config) adapter.InsightsCache {
	if cfg.Insights.CacheBackend != "redis" {
		return cache.NewMemoryInsightsCache(cfg.Insights.CacheTTL)
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("invalid redis url, using in-process insights cache", "error", err)
		return cache.NewMemoryInsightsCache(cfg.Insights.CacheTTL)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, using in-process insights cache", "error", err)
		return cache.NewMemoryInsightsCache(cfg.Insights.CacheTTL)
	}

	return cache.NewRedisInsightsCache(client, cfg.Insights.CacheTTL)
}
