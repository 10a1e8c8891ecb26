// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Prabhakar0tenn/Expense-Tracker/config"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/aggregation"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/auth"
	goalusecase "github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/goal"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/ledger"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/report"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/infra/server/router"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/adapters"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/email"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/controller"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/middleware"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client, email sender and clock are passed in so tests can
// substitute in-memory equivalents.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	emailSender adapter.EmailSender,
	clock adapter.Clock,
) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	savingRepo := persistence.NewSavingRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	reportRenderer, err := email.NewReportRenderer()
	if err != nil {
		return nil, err
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create ledger use cases
	addIncomeUseCase := ledger.NewAddIncomeUseCase(incomeRepo)
	listIncomeUseCase := ledger.NewListIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := ledger.NewDeleteIncomeUseCase(incomeRepo)
	addExpenseUseCase := ledger.NewAddExpenseUseCase(expenseRepo)
	listExpensesUseCase := ledger.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := ledger.NewDeleteExpenseUseCase(expenseRepo)
	addSavingUseCase := ledger.NewAddSavingUseCase(savingRepo)
	listSavingsUseCase := ledger.NewListSavingsUseCase(savingRepo)

	// Create aggregation use cases
	totalIncomeUseCase := aggregation.NewTotalIncomeUseCase(incomeRepo)
	totalExpenseUseCase := aggregation.NewTotalExpenseUseCase(expenseRepo)
	monthlyExpenseUseCase := aggregation.NewMonthlyExpenseUseCase(expenseRepo, clock)
	yearlyExpenseUseCase := aggregation.NewYearlyExpenseUseCase(expenseRepo, clock)
	breakdownUseCase := aggregation.NewCategoryBreakdownUseCase(expenseRepo)
	monthlySeriesUseCase := aggregation.NewMonthlySeriesUseCase(expenseRepo, clock)

	// Create goal use cases
	setGoalsUseCase := goalusecase.NewSetGoalsUseCase(goalRepo)
	getGoalsUseCase := goalusecase.NewGetGoalsUseCase(goalRepo)
	evaluateGoalsUseCase := goalusecase.NewEvaluateGoalsUseCase(goalRepo, monthlyExpenseUseCase, yearlyExpenseUseCase)

	// Create report use cases
	buildReportUseCase := report.NewBuildMonthlyReportUseCase(incomeRepo, expenseRepo, clock)
	exportReportUseCase := report.NewExportReportUseCase(buildReportUseCase, reportRenderer)
	emailReportUseCase := report.NewEmailReportUseCase(buildReportUseCase, reportRenderer, emailSender)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	incomeController := controller.NewIncomeController(
		addIncomeUseCase,
		listIncomeUseCase,
		deleteIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		addExpenseUseCase,
		listExpensesUseCase,
		deleteExpenseUseCase,
		evaluateGoalsUseCase,
	)

	savingController := controller.NewSavingController(
		addSavingUseCase,
		listSavingsUseCase,
	)

	goalController := controller.NewGoalController(
		setGoalsUseCase,
		getGoalsUseCase,
		evaluateGoalsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		totalIncomeUseCase,
		totalExpenseUseCase,
		monthlyExpenseUseCase,
		yearlyExpenseUseCase,
		breakdownUseCase,
		monthlySeriesUseCase,
	)

	reportController := controller.NewReportController(
		buildReportUseCase,
		exportReportUseCase,
		emailReportUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		incomeController,
		expenseController,
		savingController,
		goalController,
		dashboardController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}
