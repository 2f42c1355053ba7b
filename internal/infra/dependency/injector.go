// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/usecase/auth"
	"github.com/spendwise/backend/internal/application/usecase/budget"
	"github.com/spendwise/backend/internal/application/usecase/category"
	"github.com/spendwise/backend/internal/application/usecase/report"
	"github.com/spendwise/backend/internal/application/usecase/transaction"
	"github.com/spendwise/backend/internal/infra/server/router"
	"github.com/spendwise/backend/internal/integration/adapters"
	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
	"github.com/spendwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	InitializeCategoriesUseCase *category.InitializeCategoriesUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	googleVerifier := adapters.NewGoogleVerifier(cfg.Google.ClientID)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	googleLoginUseCase := auth.NewGoogleLoginUseCase(userRepo, googleVerifier, tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	initializeCategoriesUseCase := category.NewInitializeCategoriesUseCase(categoryRepo)

	// Budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Report use cases
	monthlySummaryUseCase := report.NewMonthlySummaryUseCase(reportRepo)
	yearlySummaryUseCase := report.NewYearlySummaryUseCase(reportRepo)
	categoryBreakdownUseCase := report.NewCategoryBreakdownUseCase(reportRepo)
	budgetComparisonUseCase := report.NewBudgetComparisonUseCase(budgetRepo, reportRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		googleLoginUseCase,
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		initializeCategoriesUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		budgetComparisonUseCase,
	)

	reportController := controller.NewReportController(
		monthlySummaryUseCase,
		yearlySummaryUseCase,
		categoryBreakdownUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		categoryController,
		budgetController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:                      cfg,
		DB:                          db,
		Router:                      r,
		InitializeCategoriesUseCase: initializeCategoriesUseCase,
	}
}
