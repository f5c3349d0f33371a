package model

// AccountRow is one ledger account line of a trial balance for a single
// reporting period. Amounts are expected to be non-negative; the validation
// engine reports violations instead of rejecting rows.
type AccountRow struct {
	Code           string // chart-of-accounts code, e.g. "512" or "4111.01"
	Name           string
	OpeningDebit   float64
	OpeningCredit  float64
	DebitTurnover  float64
	CreditTurnover float64
	ClosingDebit   float64
	ClosingCredit  float64
}

// Amounts returns the six amount fields in column order: opening debit,
// opening credit, debit turnover, credit turnover, closing debit,
// closing credit.
func (r AccountRow) Amounts() [6]float64 {
	return [6]float64{
		r.OpeningDebit,
		r.OpeningCredit,
		r.DebitTurnover,
		r.CreditTurnover,
		r.ClosingDebit,
		r.ClosingCredit,
	}
}

// Inactive reports whether every amount field is exactly zero.
func (r AccountRow) Inactive() bool {
	for _, v := range r.Amounts() {
		if v != 0 {
			return false
		}
	}
	return true
}
