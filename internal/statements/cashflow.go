package statements

import "github.com/veribal-dev/veribal/internal/model"

// CashFlowApprox is an indirect-method approximation built from the change
// in class-5 balances over the period. NonCashDelta is the part of the cash
// movement not explained by the net result (working-capital changes,
// depreciation, financing).
type CashFlowApprox struct {
	OpeningCash  float64
	ClosingCash  float64
	NetChange    float64
	NetResult    float64
	NonCashDelta float64
}

// BuildCashFlow approximates the period cash flow from opening and closing
// cash positions and the income statement.
func BuildCashFlow(rows []model.AccountRow) CashFlowApprox {
	opening := buildBalanceSheet(rows, true)
	closing := buildBalanceSheet(rows, false)
	is := BuildIncomeStatement(rows)

	cf := CashFlowApprox{
		OpeningCash: opening.Cash,
		ClosingCash: closing.Cash,
		NetResult:   is.NetResult,
	}
	cf.NetChange = cf.ClosingCash - cf.OpeningCash
	cf.NonCashDelta = cf.NetChange - cf.NetResult
	return cf
}
