package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_PrefixRules(t *testing.T) {
	cases := map[string]Class{
		"101":  ClassEquityCapital,
		"106":  ClassEquityReserves,
		"1068": ClassEquityReserves,
		"107":  ClassEquityReserves,
		"121":  ClassEquityResult,
		"162":  ClassLiabilityLongTerm,
		"205":  ClassFixedIntangible,
		"212":  ClassFixedTangible,
		"2131": ClassFixedTangible,
		"231":  ClassFixedTangible,
		"261":  ClassFixedFinancial,
		"301":  ClassCurrentInventory,
		"371":  ClassCurrentInventory,
		"401":  ClassLiabilityShort,
		"4111": ClassCurrentReceivable,
		"421":  ClassLiabilityShort,
		"441":  ClassLiabilityShort,
		"4551": ClassLiabilityShort,
		"461":  ClassCurrentReceivable,
		"512":  ClassCurrentCash,
		"5311": ClassCurrentCash,
		"601":  ClassExpenseMaterial,
		"607":  ClassExpenseMaterial,
		"641":  ClassExpensePersonnel,
		"6022": ClassExpenseMaterial,
		"612":  ClassExpenseOther,
		"635":  ClassExpenseOther,
		"681":  ClassExpenseOther,
		"691":  ClassExpenseOther,
		"701":  ClassRevenueSales,
		"704":  ClassRevenueSales,
		"708":  ClassRevenueSales,
		"711":  ClassRevenueOther,
		"722":  ClassRevenueOther,
		"741":  ClassRevenueOther,
		"766":  ClassRevenueOther,
		"789":  ClassRevenueOther,
	}
	for code, want := range cases {
		assert.Equal(t, want, For(code), "code %s", code)
	}
}

func TestFor_FirstDigitFallback(t *testing.T) {
	assert.Equal(t, ClassEquityCapital, For("15"))
	assert.Equal(t, ClassCurrentInventory, For("39"))
	assert.Equal(t, ClassLiabilityShort, For("47"))
	assert.Equal(t, ClassCurrentCash, For("58"))
	assert.Equal(t, ClassRevenueOther, For("7"))
}

// For must be total: any string input classifies without panicking.
func TestFor_Total(t *testing.T) {
	inputs := []string{"", "0", "9", "891", "abc", "x21", ".", "212.", "♞", "12345678901234567890"}
	for _, code := range inputs {
		assert.NotPanics(t, func() { _ = For(code) }, "code %q", code)
	}
	assert.Equal(t, ClassUnclassified, For(""))
	assert.Equal(t, ClassUnclassified, For("891"))
	assert.Equal(t, ClassUnclassified, For("abc"))
	assert.Equal(t, ClassUnclassified, For("901"))
}

func TestDigit(t *testing.T) {
	assert.Equal(t, byte('5'), Digit("512"))
	assert.Equal(t, byte('0'), Digit(""))
	assert.Equal(t, byte('a'), Digit("abc"))
}

func TestDebitNature(t *testing.T) {
	assert.True(t, DebitNature(ClassFixedTangible))
	assert.True(t, DebitNature(ClassCurrentCash))
	assert.True(t, DebitNature(ClassExpenseMaterial))
	assert.False(t, DebitNature(ClassEquityCapital))
	assert.False(t, DebitNature(ClassLiabilityShort))
	assert.False(t, DebitNature(ClassRevenueSales))
}

func TestNetBalance(t *testing.T) {
	// Assets net debit minus credit, liabilities the reverse.
	assert.Equal(t, 700.0, NetBalance(1000, 300, ClassCurrentCash))
	assert.Equal(t, 700.0, NetBalance(300, 1000, ClassLiabilityShort))
	assert.Equal(t, -200.0, NetBalance(100, 300, ClassExpenseOther))
}
