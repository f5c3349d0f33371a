package balance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/veribal-dev/veribal/internal/model"
)

// Header is the CSV header for a trial-balance file.
const Header = "code,name,opening_debit,opening_credit,debit_turnover,credit_turnover,closing_debit,closing_credit"

const (
	numFields      = 8
	colCode        = 0
	colName        = 1
	colOpenDebit   = 2
	colOpenCredit  = 3
	colDebitTurn   = 4
	colCreditTurn  = 5
	colCloseDebit  = 6
	colCloseCredit = 7
)

// ReadRows reads all account rows from a trial-balance CSV reader.
func ReadRows(r io.Reader) ([]model.AccountRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trial balance CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []model.AccountRow
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes rows to a trial-balance CSV writer (including header).
func WriteRows(w io.Writer, rows []model.AccountRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts an AccountRow to a CSV record. Zero amounts are
// written as empty cells.
func MarshalRow(row model.AccountRow) []string {
	rec := make([]string, numFields)
	rec[colCode] = row.Code
	rec[colName] = row.Name

	amounts := row.Amounts()
	for i, v := range amounts {
		if v == 0 {
			continue
		}
		rec[colOpenDebit+i] = decimal.NewFromFloat(v).StringFixed(2)
	}
	return rec
}

// UnmarshalRow converts a CSV record to an AccountRow.
func UnmarshalRow(rec []string) (model.AccountRow, error) {
	if len(rec) != numFields {
		return model.AccountRow{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}

	var amounts [6]float64
	for i := range amounts {
		v, err := parseAmount(rec[colOpenDebit+i])
		if err != nil {
			return model.AccountRow{}, fmt.Errorf("parsing %s %q: %w", amountColumn(colOpenDebit+i), rec[colOpenDebit+i], err)
		}
		amounts[i] = v
	}

	return model.AccountRow{
		Code:           rec[colCode],
		Name:           rec[colName],
		OpeningDebit:   amounts[0],
		OpeningCredit:  amounts[1],
		DebitTurnover:  amounts[2],
		CreditTurnover: amounts[3],
		ClosingDebit:   amounts[4],
		ClosingCredit:  amounts[5],
	}, nil
}

func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func amountColumn(col int) string {
	return strings.Split(Header, ",")[col]
}
