package statements

import (
	"strings"

	"github.com/veribal-dev/veribal/internal/classify"
	"github.com/veribal-dev/veribal/internal/model"
)

// IncomeStatement aggregates period flows. Revenue is recognised on credit
// turnover and expenses on debit turnover; closing balances are stock
// figures and never enter here.
type IncomeStatement struct {
	SalesRevenue float64
	OtherRevenue float64
	TotalRevenue float64

	MaterialExpense  float64
	PersonnelExpense float64
	OtherExpense     float64
	TotalExpense     float64

	Tax float64

	NetResult float64
}

// BuildIncomeStatement aggregates turnover flows into the income statement.
func BuildIncomeStatement(rows []model.AccountRow) IncomeStatement {
	var is IncomeStatement
	for _, r := range rows {
		// Profit-tax accounts (69x) sit in the expense class but report on
		// their own line.
		if strings.HasPrefix(r.Code, "69") {
			is.Tax += r.DebitTurnover
			continue
		}
		switch classify.For(r.Code) {
		case classify.ClassRevenueSales:
			is.SalesRevenue += r.CreditTurnover
		case classify.ClassRevenueOther:
			is.OtherRevenue += r.CreditTurnover
		case classify.ClassExpenseMaterial:
			is.MaterialExpense += r.DebitTurnover
		case classify.ClassExpensePersonnel:
			is.PersonnelExpense += r.DebitTurnover
		case classify.ClassExpenseOther:
			is.OtherExpense += r.DebitTurnover
		}
	}
	is.TotalRevenue = is.SalesRevenue + is.OtherRevenue
	is.TotalExpense = is.MaterialExpense + is.PersonnelExpense + is.OtherExpense
	is.NetResult = is.TotalRevenue - is.TotalExpense - is.Tax
	return is
}
