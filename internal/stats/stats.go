// Package stats aggregates store snapshots for the dashboard and analytics
// views. All functions are pure, they never touch the store themselves.
package stats

import (
	"time"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the aggregated spend of one expense category.
type CategoryTotal struct {
	Category   string              `json:"category" example:"Alimentação"`
	Color      string              `json:"color" example:"#EF4444"`
	Amount     decimal.Decimal     `json:"amount" example:"150"`
	Percentage decimal.Decimal     `json:"percentage" example:"66.67"`
	Budget     decimal.NullDecimal `json:"budget" swaggertype:"number"`
}

// Summary is the dashboard aggregate over all incomes and expenses.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"3500"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"225"`
	Balance       decimal.Decimal `json:"balance" example:"3275"`
	MonthlyTrend  decimal.Decimal `json:"monthlyTrend" example:"12.5"`
	TopCategories []CategoryTotal `json:"topCategories"`
}

// TotalIncome sums the amounts of all income sources, regardless of status.
func TotalIncome(sources []models.IncomeSource) decimal.Decimal {
	total := decimal.Zero
	for _, source := range sources {
		total = total.Add(source.Amount)
	}
	return total
}

// TotalExpenses sums the amounts of all expenses.
func TotalExpenses(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// CategoryTotals groups expenses by their embedded category and reports the
// sum and the share of the overall total per category, sorted by amount
// descending. Percentages are rounded to two decimal places.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	overall := TotalExpenses(expenses)

	order := make([]string, 0)
	byID := make(map[string]*CategoryTotal)
	for _, expense := range expenses {
		total, ok := byID[expense.Category.ID]
		if !ok {
			total = &CategoryTotal{
				Category: expense.Category.Name,
				Color:    expense.Category.Color,
				Budget:   expense.Category.Budget,
			}
			byID[expense.Category.ID] = total
			order = append(order, expense.Category.ID)
		}
		total.Amount = total.Amount.Add(expense.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byID))
	for _, id := range order {
		total := *byID[id]
		if overall.IsPositive() {
			total.Percentage = total.Amount.Div(overall).Mul(hundred).Round(2)
		}
		totals = append(totals, total)
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Amount.Cmp(a.Amount)
	})

	return totals
}

// GoalProgress reports how far along a goal is, as a percentage clamped to
// [0, 100]. A goal without a positive target has no meaningful progress and
// reports 0.
func GoalProgress(goal models.Goal) decimal.Decimal {
	if !goal.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	progress := goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred).Round(2)
	if progress.IsNegative() {
		return decimal.Zero
	}
	if progress.GreaterThan(hundred) {
		return hundred
	}

	return progress
}

// Summarize builds the dashboard summary. The monthly trend compares the
// expenses of the month of now against the month before it, as a percentage
// change. A previous month without expenses yields a trend of 0.
func Summarize(sources []models.IncomeSource, expenses []models.Expense, now time.Time) Summary {
	income := TotalIncome(sources)
	spent := TotalExpenses(expenses)

	previousMonth := now.AddDate(0, -1, 0)

	current := decimal.Zero
	previous := decimal.Zero
	for _, expense := range expenses {
		switch {
		case expense.Date.SameMonth(now):
			current = current.Add(expense.Amount)
		case expense.Date.SameMonth(previousMonth):
			previous = previous.Add(expense.Amount)
		}
	}

	trend := decimal.Zero
	if previous.IsPositive() {
		trend = current.Sub(previous).Div(previous).Mul(hundred).Round(2)
	}

	return Summary{
		TotalIncome:   income,
		TotalExpenses: spent,
		Balance:       income.Sub(spent),
		MonthlyTrend:  trend,
		TopCategories: CategoryTotals(expenses),
	}
}
