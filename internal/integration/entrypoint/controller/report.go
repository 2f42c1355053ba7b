package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/report"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles the aggregated view endpoints.
type ReportController struct {
	monthlySummaryUseCase    *report.MonthlySummaryUseCase
	yearlySummaryUseCase     *report.YearlySummaryUseCase
	categoryBreakdownUseCase *report.CategoryBreakdownUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlySummaryUseCase *report.MonthlySummaryUseCase,
	yearlySummaryUseCase *report.YearlySummaryUseCase,
	categoryBreakdownUseCase *report.CategoryBreakdownUseCase,
) *ReportController {
	return &ReportController{
		monthlySummaryUseCase:    monthlySummaryUseCase,
		yearlySummaryUseCase:     yearlySummaryUseCase,
		categoryBreakdownUseCase: categoryBreakdownUseCase,
	}
}

// MonthlySummary handles GET /transactions/monthly-summary requests.
func (c *ReportController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.monthlySummaryUseCase.Execute(ctx.Request.Context(), report.MonthlySummaryInput{
		UserID: userID,
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthlySummaryResponseFromOutput(output))
}

// YearlySummary handles GET /transactions/yearly-summary requests.
func (c *ReportController) YearlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.yearlySummaryUseCase.Execute(ctx.Request.Context(), report.YearlySummaryInput{
		UserID: userID,
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.YearlySummaryResponseFromOutput(output))
}

// CategoryBreakdown handles GET /transactions/category-breakdown requests.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.CategoryBreakdownInput{UserID: userID}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := parseTimestamp(startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := parseTimestamp(endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}
	if kindStr := ctx.Query("kind"); kindStr != "" {
		kind := entity.TransactionKind(kindStr)
		input.Kind = &kind
	}

	output, err := c.categoryBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryBreakdownResponseFromOutput(output))
}

// handleReportError maps report errors to HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(statusForReportError(rptErr.Code), dto.ErrorResponse{
			Message: rptErr.Message,
			Code:    string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "An internal error occurred",
	})
}

// statusForReportError maps report error codes to HTTP status codes.
func statusForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportRange,
		domainerror.ErrCodeInvalidReportYear,
		domainerror.ErrCodeInvalidReportMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
