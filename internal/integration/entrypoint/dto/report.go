package dto

import (
	"github.com/spendwise/backend/internal/application/usecase/report"
)

// KindTotalResponse is one {type, total} pair inside a summary period.
type KindTotalResponse struct {
	Type  string `json:"type"`
	Total string `json:"total"`
}

// MonthlySummaryPeriodResponse is one (year, month) bucket of the monthly summary.
type MonthlySummaryPeriodResponse struct {
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Summary []KindTotalResponse `json:"summary"`
}

// MonthlySummaryResponse represents the monthly summary report.
type MonthlySummaryResponse struct {
	Periods []MonthlySummaryPeriodResponse `json:"periods"`
}

// YearlySummaryPeriodResponse is one year bucket of the yearly summary.
type YearlySummaryPeriodResponse struct {
	Year    int                 `json:"year"`
	Summary []KindTotalResponse `json:"summary"`
}

// YearlySummaryResponse represents the yearly summary report.
type YearlySummaryResponse struct {
	Periods []YearlySummaryPeriodResponse `json:"periods"`
}

// CategoryBreakdownRowResponse is one (category, kind) group of the breakdown.
type CategoryBreakdownRowResponse struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Total    string `json:"total"`
	Count    int64  `json:"count"`
}

// CategoryBreakdownResponse represents the category breakdown report.
type CategoryBreakdownResponse struct {
	Breakdown []CategoryBreakdownRowResponse `json:"breakdown"`
}

// kindTotalsFromUseCase converts usecase kind totals to their responses.
func kindTotalsFromUseCase(totals []report.KindTotal) []KindTotalResponse {
	out := make([]KindTotalResponse, len(totals))
	for i, kt := range totals {
		out[i] = KindTotalResponse{
			Type:  string(kt.Kind),
			Total: kt.Total.StringFixed(2),
		}
	}
	return out
}

// MonthlySummaryResponseFromOutput converts the usecase output to its response.
func MonthlySummaryResponseFromOutput(output *report.MonthlySummaryOutput) MonthlySummaryResponse {
	periods := make([]MonthlySummaryPeriodResponse, len(output.Periods))
	for i, p := range output.Periods {
		periods[i] = MonthlySummaryPeriodResponse{
			Year:    p.Year,
			Month:   p.Month,
			Summary: kindTotalsFromUseCase(p.Summary),
		}
	}
	return MonthlySummaryResponse{Periods: periods}
}

// CategoryBreakdownResponseFromOutput converts the usecase output to its response.
func CategoryBreakdownResponseFromOutput(output *report.CategoryBreakdownOutput) CategoryBreakdownResponse {
	rows := make([]CategoryBreakdownRowResponse, len(output.Items))
	for i, item := range output.Items {
		rows[i] = CategoryBreakdownRowResponse{
			Category: item.Category,
			Type:     string(item.Kind),
			Total:    item.Total.StringFixed(2),
			Count:    item.Count,
		}
	}
	return CategoryBreakdownResponse{Breakdown: rows}
}

// YearlySummaryResponseFromOutput converts the usecase output to its response.
func YearlySummaryResponseFromOutput(output *report.YearlySummaryOutput) YearlySummaryResponse {
	periods := make([]YearlySummaryPeriodResponse, len(output.Periods))
	for i, p := range output.Periods {
		periods[i] = YearlySummaryPeriodResponse{
			Year:    p.Year,
			Summary: kindTotalsFromUseCase(p.Summary),
		}
	}
	return YearlySummaryResponse{Periods: periods}
}
