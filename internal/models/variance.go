package models

// VarianceRow pivots the monthly aggregates into one row per month with
// Actual and Budget side by side for each KPI.
//
// Null semantics: a missing scenario pivots to null, not zero — "no budget
// submitted" is a different fact from "budget submitted as zero". Variance
// is Actual − Budget with null propagation; VariancePct is Variance ÷ Budget
// and is null whenever Budget is null or exactly zero.
type VarianceRow struct {
	MonthEndDate Date `csv:"month_end_date" json:"month_end_date"`

	RevenueActual      NullAmount `csv:"revenue_actual" json:"revenue_actual"`
	RevenueBudget      NullAmount `csv:"revenue_budget" json:"revenue_budget"`
	RevenueVariance    NullAmount `csv:"revenue_variance" json:"revenue_variance"`
	RevenueVariancePct NullAmount `csv:"revenue_variance_pct" json:"revenue_variance_pct"`

	COGSActual      NullAmount `csv:"cogs_actual" json:"cogs_actual"`
	COGSBudget      NullAmount `csv:"cogs_budget" json:"cogs_budget"`
	COGSVariance    NullAmount `csv:"cogs_variance" json:"cogs_variance"`
	COGSVariancePct NullAmount `csv:"cogs_variance_pct" json:"cogs_variance_pct"`

	OpexActual      NullAmount `csv:"opex_actual" json:"opex_actual"`
	OpexBudget      NullAmount `csv:"opex_budget" json:"opex_budget"`
	OpexVariance    NullAmount `csv:"opex_variance" json:"opex_variance"`
	OpexVariancePct NullAmount `csv:"opex_variance_pct" json:"opex_variance_pct"`

	GrossProfitActual      NullAmount `csv:"gross_profit_actual" json:"gross_profit_actual"`
	GrossProfitBudget      NullAmount `csv:"gross_profit_budget" json:"gross_profit_budget"`
	GrossProfitVariance    NullAmount `csv:"gross_profit_variance" json:"gross_profit_variance"`
	GrossProfitVariancePct NullAmount `csv:"gross_profit_variance_pct" json:"gross_profit_variance_pct"`

	EBITDAActual      NullAmount `csv:"ebitda_actual" json:"ebitda_actual"`
	EBITDABudget      NullAmount `csv:"ebitda_budget" json:"ebitda_budget"`
	EBITDAVariance    NullAmount `csv:"ebitda_variance" json:"ebitda_variance"`
	EBITDAVariancePct NullAmount `csv:"ebitda_variance_pct" json:"ebitda_variance_pct"`
}
