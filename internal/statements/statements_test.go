package statements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veribal-dev/veribal/internal/model"
)

// sampleBatch is a small balanced trial balance covering every statement
// bucket. Closing balances are stocks; turnover columns are the period flows.
func sampleBatch() []model.AccountRow {
	return []model.AccountRow{
		{Code: "205", Name: "Licences", OpeningDebit: 200, ClosingDebit: 200},
		{Code: "212", Name: "Buildings", OpeningDebit: 5000, ClosingDebit: 5000},
		{Code: "261", Name: "Shares in subsidiaries", OpeningDebit: 300, ClosingDebit: 300},
		{Code: "301", Name: "Raw materials", OpeningDebit: 400, ClosingDebit: 600},
		{Code: "4111", Name: "Clients", OpeningDebit: 800, ClosingDebit: 900},
		{Code: "512", Name: "Bank accounts", OpeningDebit: 1000, ClosingDebit: 1500},
		{Code: "101", Name: "Share capital", OpeningCredit: 4000, ClosingCredit: 4000},
		{Code: "106", Name: "Reserves", OpeningCredit: 700, ClosingCredit: 700},
		{Code: "121", Name: "Profit or loss", ClosingCredit: 800},
		{Code: "162", Name: "Long-term bank loans", OpeningCredit: 2000, ClosingCredit: 2000},
		{Code: "401", Name: "Suppliers", OpeningCredit: 1000, ClosingCredit: 1000},
		{Code: "601", Name: "Raw material expense", DebitTurnover: 500},
		{Code: "641", Name: "Salaries expense", DebitTurnover: 900},
		{Code: "612", Name: "Rent expense", DebitTurnover: 300},
		{Code: "691", Name: "Profit tax expense", DebitTurnover: 100},
		{Code: "701", Name: "Product sales", CreditTurnover: 2200},
		{Code: "766", Name: "Interest income", CreditTurnover: 400},
	}
}

func TestBuildBalanceSheet(t *testing.T) {
	bs := BuildBalanceSheet(sampleBatch())

	assert.Equal(t, 200.0, bs.IntangibleAssets)
	assert.Equal(t, 5000.0, bs.TangibleAssets)
	assert.Equal(t, 300.0, bs.FinancialAssets)
	assert.Equal(t, 5500.0, bs.FixedAssets)

	assert.Equal(t, 600.0, bs.Inventory)
	assert.Equal(t, 900.0, bs.Receivables)
	assert.Equal(t, 1500.0, bs.Cash)
	assert.Equal(t, 3000.0, bs.CurrentAssets)
	assert.Equal(t, 8500.0, bs.TotalAssets)

	assert.Equal(t, 4000.0, bs.Capital)
	assert.Equal(t, 700.0, bs.Reserves)
	assert.Equal(t, 800.0, bs.Result)
	assert.Equal(t, 5500.0, bs.Equity)

	assert.Equal(t, 2000.0, bs.LongTermDebt)
	assert.Equal(t, 1000.0, bs.ShortTermDebt)
	assert.Equal(t, 3000.0, bs.TotalLiabilities)
	assert.Equal(t, 8500.0, bs.TotalLiabilitiesAndEquity)
}

// A credit-natured account with a debit entry must reduce its bucket, and
// the same sign convention must hold on the opening side.
func TestBuildBalanceSheet_SignConvention(t *testing.T) {
	rows := []model.AccountRow{
		{Code: "401", Name: "Suppliers", OpeningDebit: 100, OpeningCredit: 400, ClosingDebit: 50, ClosingCredit: 250},
	}

	closing := BuildBalanceSheet(rows)
	assert.Equal(t, 200.0, closing.ShortTermDebt)

	opening := buildBalanceSheet(rows, true)
	assert.Equal(t, 300.0, opening.ShortTermDebt)
}

func TestBuildBalanceSheet_ExcludesUnclassified(t *testing.T) {
	rows := []model.AccountRow{
		{Code: "8011", Name: "Commitments given", ClosingDebit: 9999},
		{Code: "512", Name: "Bank accounts", ClosingDebit: 100},
	}
	bs := BuildBalanceSheet(rows)
	assert.Equal(t, 100.0, bs.TotalAssets)
}

func TestBuildIncomeStatement(t *testing.T) {
	is := BuildIncomeStatement(sampleBatch())

	assert.Equal(t, 2200.0, is.SalesRevenue)
	assert.Equal(t, 400.0, is.OtherRevenue)
	assert.Equal(t, 2600.0, is.TotalRevenue)

	assert.Equal(t, 500.0, is.MaterialExpense)
	assert.Equal(t, 900.0, is.PersonnelExpense)
	assert.Equal(t, 300.0, is.OtherExpense)
	assert.Equal(t, 1700.0, is.TotalExpense)
	assert.Equal(t, 100.0, is.Tax)

	// 2600 revenue - 1700 expense - 100 tax.
	assert.Equal(t, 800.0, is.NetResult)
}

// Flows come from turnover, never from closing balances.
func TestBuildIncomeStatement_IgnoresClosingBalances(t *testing.T) {
	rows := []model.AccountRow{
		{Code: "701", Name: "Product sales", CreditTurnover: 100, ClosingCredit: 5000},
		{Code: "601", Name: "Raw material expense", DebitTurnover: 40, ClosingDebit: 3000},
	}
	is := BuildIncomeStatement(rows)
	assert.Equal(t, 100.0, is.TotalRevenue)
	assert.Equal(t, 40.0, is.TotalExpense)
	assert.Equal(t, 60.0, is.NetResult)
}

func TestBuildCashFlow(t *testing.T) {
	cf := BuildCashFlow(sampleBatch())

	assert.Equal(t, 1000.0, cf.OpeningCash)
	assert.Equal(t, 1500.0, cf.ClosingCash)
	assert.Equal(t, 500.0, cf.NetChange)
	assert.Equal(t, 800.0, cf.NetResult)
	assert.Equal(t, -300.0, cf.NonCashDelta)
}
