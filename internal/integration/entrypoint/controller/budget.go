package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/usecase/budget"
	"github.com/spendwise/backend/internal/application/usecase/report"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints, including the budget-vs-actual
// comparison report.
type BudgetController struct {
	createUseCase     *budget.CreateBudgetUseCase
	listUseCase       *budget.ListBudgetsUseCase
	updateUseCase     *budget.UpdateBudgetUseCase
	deleteUseCase     *budget.DeleteBudgetUseCase
	comparisonUseCase *report.BudgetComparisonUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	comparisonUseCase *report.BudgetComparisonUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		comparisonUseCase: comparisonUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid request body: " + err.Error(),
			Code:    string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
		Period:   entity.BudgetPeriod(req.Period),
		Year:     req.Year,
		Month:    req.Month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BudgetResponseFromEntity(output.Budget))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := budget.ListBudgetsInput{UserID: userID}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = &year
		}
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.Month = &month
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetListResponseFromEntities(output.Budgets))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid request body: " + err.Error(),
			Code:    string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
		Period:   entity.BudgetPeriod(req.Period),
		Year:     req.Year,
		Month:    req.Month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetResponseFromEntity(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid budget ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted"})
}

// Comparison handles GET /budgets/comparison requests.
func (c *BudgetController) Comparison(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.BudgetComparisonInput{UserID: userID}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = year
		}
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.Month = month
		}
	}

	output, err := c.comparisonUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	comparisons := make([]dto.BudgetComparisonResponse, len(output.Comparisons))
	for i, comparison := range output.Comparisons {
		comparisons[i] = dto.BudgetComparisonResponseFromEntity(comparison)
	}
	ctx.JSON(http.StatusOK, dto.BudgetComparisonListResponse{
		Year:        output.Year,
		Month:       output.Month,
		Comparisons: comparisons,
	})
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var bgtErr *domainerror.BudgetError
	if errors.As(err, &bgtErr) {
		ctx.JSON(statusForBudgetError(bgtErr.Code), dto.ErrorResponse{
			Message: bgtErr.Message,
			Code:    string(bgtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "An internal error occurred",
	})
}

// statusForBudgetError maps budget error codes to HTTP status codes.
func statusForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingBudgetFields,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeMonthRequired,
		domainerror.ErrCodeInvalidBudgetMonth,
		domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
