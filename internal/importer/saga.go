package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/veribal-dev/veribal/internal/model"
)

// SagaParser parses Saga-style trial-balance exports. The layout carries
// two extra cumulative "total sums" columns between turnover and closing
// balances, which are ignored.
type SagaParser struct{}

const (
	sagaNumFields      = 12
	sagaColCode        = 0
	sagaColName        = 1
	sagaColOpenDebit   = 2
	sagaColOpenCredit  = 3
	sagaColDebitTurn   = 4
	sagaColCreditTurn  = 5
	sagaColCloseDebit  = 10
	sagaColCloseCredit = 11
)

// Format returns the parser name.
func (p *SagaParser) Format() string { return "saga" }

// Parse reads a Saga export and returns account rows.
func (p *SagaParser) Parse(r io.Reader) ([]model.AccountRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = sagaNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading saga CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []model.AccountRow
	for i, rec := range records[1:] {
		row, err := parseSagaRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseSagaRow(rec []string) (model.AccountRow, error) {
	cols := []int{sagaColOpenDebit, sagaColOpenCredit, sagaColDebitTurn, sagaColCreditTurn, sagaColCloseDebit, sagaColCloseCredit}
	var amounts [6]float64
	for i, col := range cols {
		v, err := parseSagaAmount(rec[col])
		if err != nil {
			return model.AccountRow{}, fmt.Errorf("parsing column %d %q: %w", col+1, rec[col], err)
		}
		amounts[i] = v
	}

	return model.AccountRow{
		Code:           rec[sagaColCode],
		Name:           rec[sagaColName],
		OpeningDebit:   amounts[0],
		OpeningCredit:  amounts[1],
		DebitTurnover:  amounts[2],
		CreditTurnover: amounts[3],
		ClosingDebit:   amounts[4],
		ClosingCredit:  amounts[5],
	}, nil
}

func parseSagaAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
