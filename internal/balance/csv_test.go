package balance

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veribal-dev/veribal/internal/model"
)

func TestReadRows(t *testing.T) {
	input := Header + "\n" +
		"512,Bank accounts,1000.00,,600.00,100.00,1500.00,\n" +
		"101,Share capital,,1000.00,100.00,600.00,,1500.00\n"

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "512", rows[0].Code)
	assert.Equal(t, "Bank accounts", rows[0].Name)
	assert.Equal(t, 1000.0, rows[0].OpeningDebit)
	assert.Equal(t, 0.0, rows[0].OpeningCredit)
	assert.Equal(t, 600.0, rows[0].DebitTurnover)
	assert.Equal(t, 100.0, rows[0].CreditTurnover)
	assert.Equal(t, 1500.0, rows[0].ClosingDebit)

	assert.Equal(t, "101", rows[1].Code)
	assert.Equal(t, 1500.0, rows[1].ClosingCredit)
}

func TestReadRows_Empty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_BadAmount(t *testing.T) {
	input := Header + "\n512,Bank accounts,abc,,,,,\n"
	_, err := ReadRows(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "opening_debit")
}

func TestReadRows_WrongFieldCount(t *testing.T) {
	input := Header + "\n512,Bank accounts,1.00\n"
	_, err := ReadRows(strings.NewReader(input))
	assert.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	rows := []model.AccountRow{
		{Code: "512", Name: "Bank accounts", OpeningDebit: 1000.5, DebitTurnover: 600, CreditTurnover: 100, ClosingDebit: 1500.5},
		{Code: "401", Name: "Suppliers, domestic", OpeningCredit: 250.25, ClosingCredit: 250.25},
		{Code: "8011", Name: "Commitments given"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, rows))

	got, err := ReadRows(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestMarshalRow_ZeroAmountsBlank(t *testing.T) {
	rec := MarshalRow(model.AccountRow{Code: "101", Name: "Share capital", OpeningCredit: 10})
	assert.Equal(t, []string{"101", "Share capital", "", "10.00", "", "", "", ""}, rec)
}
