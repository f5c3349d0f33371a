package kpi

import (
	"github.com/veribal-dev/veribal/internal/statements"
	"github.com/veribal-dev/veribal/internal/tolerance"
)

// Set holds the derived ratio indicators. Ratios are advisory: every
// division by zero resolves to 0, never an error, and callers should not
// trust them when the batch failed validation.
type Set struct {
	CurrentRatio   float64
	QuickRatio     float64
	CashRatio      float64
	NetMargin      float64
	ReturnOnAssets float64
	ReturnOnEquity float64
	DebtToEquity   float64
	DebtRatio      float64
	AssetTurnover  float64
}

// Derive computes the ratio set from the built statements.
func Derive(bs statements.BalanceSheet, is statements.IncomeStatement) Set {
	debt := bs.LongTermDebt + bs.ShortTermDebt
	return Set{
		CurrentRatio:   tolerance.SafeDiv(bs.CurrentAssets, bs.ShortTermDebt),
		QuickRatio:     tolerance.SafeDiv(bs.CurrentAssets-bs.Inventory, bs.ShortTermDebt),
		CashRatio:      tolerance.SafeDiv(bs.Cash, bs.ShortTermDebt),
		NetMargin:      tolerance.SafeDiv(is.NetResult, is.TotalRevenue),
		ReturnOnAssets: tolerance.SafeDiv(is.NetResult, bs.TotalAssets),
		ReturnOnEquity: tolerance.SafeDiv(is.NetResult, bs.Equity),
		DebtToEquity:   tolerance.SafeDiv(debt, bs.Equity),
		DebtRatio:      tolerance.SafeDiv(debt, bs.TotalAssets),
		AssetTurnover:  tolerance.SafeDiv(is.TotalRevenue, bs.TotalAssets),
	}
}
