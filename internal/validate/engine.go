package validate

import (
	"github.com/veribal-dev/veribal/internal/model"
	"github.com/veribal-dev/veribal/internal/tolerance"
)

// Totals aggregates the six amount columns across a batch, each rounded to
// two decimal places.
type Totals struct {
	OpeningDebit   float64
	OpeningCredit  float64
	DebitTurnover  float64
	CreditTurnover float64
	ClosingDebit   float64
	ClosingCredit  float64
	AccountsCount  int
}

// Options control rule policy. The zero value rejects duplicate codes as an
// error and uses the default tolerance.
type Options struct {
	// AggregateDuplicates downgrades duplicate account codes from error to
	// warning, signalling that the caller will merge duplicate rows.
	AggregateDuplicates bool
	// Tolerance overrides the balance tolerance; 0 means tolerance.Default.
	Tolerance float64
}

func (o Options) tol() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return tolerance.Default
}

// Report is the result of one validation run over a single batch. Findings
// appear in rule evaluation order within each severity bucket.
type Report struct {
	IsValid  bool
	Errors   []Finding
	Warnings []Finding
	Info     []Finding
	Totals   Totals
}

// Validate runs the full rule battery over rows. It is pure and
// deterministic: identical input and options yield an identical report,
// including finding order. An empty batch short-circuits with a single
// EMPTY_BALANCE error and zero totals.
func Validate(rows []model.AccountRow, opts Options) Report {
	var rep Report
	if len(rows) == 0 {
		rep.Errors = append(rep.Errors, Finding{
			Code:     CodeEmptyBalance,
			Severity: SeverityError,
			Message:  "trial balance contains no accounts",
		})
		return rep
	}

	rep.Totals = computeTotals(rows)
	for _, rule := range rules {
		for _, f := range rule(rows, rep.Totals, opts) {
			switch f.Severity {
			case SeverityError:
				rep.Errors = append(rep.Errors, f)
			case SeverityWarning:
				rep.Warnings = append(rep.Warnings, f)
			default:
				rep.Info = append(rep.Info, f)
			}
		}
	}
	rep.IsValid = len(rep.Errors) == 0
	return rep
}

func computeTotals(rows []model.AccountRow) Totals {
	t := Totals{AccountsCount: len(rows)}
	for _, r := range rows {
		t.OpeningDebit += r.OpeningDebit
		t.OpeningCredit += r.OpeningCredit
		t.DebitTurnover += r.DebitTurnover
		t.CreditTurnover += r.CreditTurnover
		t.ClosingDebit += r.ClosingDebit
		t.ClosingCredit += r.ClosingCredit
	}
	t.OpeningDebit = tolerance.Round2(t.OpeningDebit)
	t.OpeningCredit = tolerance.Round2(t.OpeningCredit)
	t.DebitTurnover = tolerance.Round2(t.DebitTurnover)
	t.CreditTurnover = tolerance.Round2(t.CreditTurnover)
	t.ClosingDebit = tolerance.Round2(t.ClosingDebit)
	t.ClosingCredit = tolerance.Round2(t.ClosingCredit)
	return t
}
