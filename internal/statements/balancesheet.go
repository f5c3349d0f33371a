package statements

import (
	"github.com/veribal-dev/veribal/internal/classify"
	"github.com/veribal-dev/veribal/internal/model"
)

// BalanceSheet aggregates classified closing balances into the classic
// asset / equity / liability shape. All figures are net balances under each
// class's natural direction; unclassified and off-balance accounts are
// excluded.
type BalanceSheet struct {
	IntangibleAssets float64
	TangibleAssets   float64
	FinancialAssets  float64
	FixedAssets      float64

	Inventory     float64
	Receivables   float64
	Cash          float64
	CurrentAssets float64

	TotalAssets float64

	Capital  float64
	Reserves float64
	Result   float64
	Equity   float64

	LongTermDebt     float64
	ShortTermDebt    float64
	TotalLiabilities float64

	TotalLiabilitiesAndEquity float64
}

// BuildBalanceSheet aggregates closing balances. Recomputed in full on every
// call; the input is not modified.
func BuildBalanceSheet(rows []model.AccountRow) BalanceSheet {
	return buildBalanceSheet(rows, false)
}

// buildBalanceSheet optionally aggregates opening balances instead, which
// yields the prior-period figures the cash-flow approximation needs.
func buildBalanceSheet(rows []model.AccountRow, opening bool) BalanceSheet {
	var bs BalanceSheet
	for _, r := range rows {
		class := classify.For(r.Code)
		debit, credit := r.ClosingDebit, r.ClosingCredit
		if opening {
			debit, credit = r.OpeningDebit, r.OpeningCredit
		}
		bal := classify.NetBalance(debit, credit, class)

		switch class {
		case classify.ClassFixedIntangible:
			bs.IntangibleAssets += bal
		case classify.ClassFixedTangible:
			bs.TangibleAssets += bal
		case classify.ClassFixedFinancial:
			bs.FinancialAssets += bal
		case classify.ClassCurrentInventory:
			bs.Inventory += bal
		case classify.ClassCurrentReceivable:
			bs.Receivables += bal
		case classify.ClassCurrentCash:
			bs.Cash += bal
		case classify.ClassEquityCapital:
			bs.Capital += bal
		case classify.ClassEquityReserves:
			bs.Reserves += bal
		case classify.ClassEquityResult:
			bs.Result += bal
		case classify.ClassLiabilityLongTerm:
			bs.LongTermDebt += bal
		case classify.ClassLiabilityShort:
			bs.ShortTermDebt += bal
		}
		// Expense, revenue, and unclassified accounts carry no balance-sheet
		// position.
	}

	bs.FixedAssets = bs.IntangibleAssets + bs.TangibleAssets + bs.FinancialAssets
	bs.CurrentAssets = bs.Inventory + bs.Receivables + bs.Cash
	bs.TotalAssets = bs.FixedAssets + bs.CurrentAssets
	bs.Equity = bs.Capital + bs.Reserves + bs.Result
	bs.TotalLiabilities = bs.LongTermDebt + bs.ShortTermDebt
	bs.TotalLiabilitiesAndEquity = bs.Equity + bs.TotalLiabilities
	return bs
}
