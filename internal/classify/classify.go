package classify

import "strings"

// Class tags an account with its financial-statement bucket, derived purely
// from the account code. It is never persisted independently of the account.
type Class string

const (
	ClassFixedTangible     Class = "asset-fixed-tangible"
	ClassFixedIntangible   Class = "asset-fixed-intangible"
	ClassFixedFinancial    Class = "asset-fixed-financial"
	ClassCurrentInventory  Class = "asset-current-inventory"
	ClassCurrentReceivable Class = "asset-current-receivable"
	ClassCurrentCash       Class = "asset-current-cash"
	ClassEquityCapital     Class = "equity-capital"
	ClassEquityReserves    Class = "equity-reserves"
	ClassEquityResult      Class = "equity-result"
	ClassLiabilityLongTerm Class = "liability-longterm"
	ClassLiabilityShort    Class = "liability-shortterm"
	ClassExpenseMaterial   Class = "expense-material"
	ClassExpensePersonnel  Class = "expense-personnel"
	ClassExpenseOther      Class = "expense-other"
	ClassRevenueSales      Class = "revenue-sales"
	ClassRevenueOther      Class = "revenue-other"

	// ClassUnclassified covers unknown and off-balance-sheet codes. It is
	// excluded from statement totals but is not a validation failure.
	ClassUnclassified Class = "unclassified"
)

// Three-digit prefixes with a specific bucket.
var prefix3 = map[string]Class{
	"101": ClassEquityCapital,
	"106": ClassEquityReserves,
	"107": ClassEquityReserves,
	"121": ClassEquityResult,
}

// Two-digit prefixes with a specific bucket.
var prefix2 = map[string]Class{
	"20": ClassFixedIntangible,
	"21": ClassFixedTangible,
	"23": ClassFixedTangible,
	"26": ClassFixedFinancial,
	"27": ClassFixedFinancial,
	"16": ClassLiabilityLongTerm,
	"40": ClassLiabilityShort,
	"42": ClassLiabilityShort,
	"44": ClassLiabilityShort,
	"45": ClassLiabilityShort,
	"41": ClassCurrentReceivable,
	"46": ClassCurrentReceivable,
	"60": ClassExpenseMaterial,
	"64": ClassExpensePersonnel,
	"61": ClassExpenseOther,
	"62": ClassExpenseOther,
	"63": ClassExpenseOther,
	"65": ClassExpenseOther,
	"66": ClassExpenseOther,
	"67": ClassExpenseOther,
	"68": ClassExpenseOther,
}

// First-digit fallback when no specific prefix matches. Class 8 is
// off-balance-sheet and stays unclassified.
var fallback = map[byte]Class{
	'1': ClassEquityCapital,
	'2': ClassFixedTangible,
	'3': ClassCurrentInventory,
	'4': ClassLiabilityShort,
	'5': ClassCurrentCash,
	'6': ClassExpenseOther,
	'7': ClassRevenueOther,
}

// Digit returns the chart-of-accounts class digit of a code: its first
// character, or '0' when the code is empty.
func Digit(code string) byte {
	if code == "" {
		return '0'
	}
	return code[0]
}

// For maps an account code to its Class using longest-prefix rules with a
// first-digit fallback. It is pure and total: any string, including empty or
// non-numeric codes, yields a defined Class.
func For(code string) Class {
	if len(code) >= 3 {
		p := code[:3]
		if c, ok := prefix3[p]; ok {
			return c
		}
		// Class 7 splits by three-digit ranges rather than fixed prefixes.
		switch {
		case p >= "701" && p <= "708":
			return ClassRevenueSales
		case p >= "711" && p <= "722", p >= "741" && p <= "789":
			return ClassRevenueOther
		}
	}
	if len(code) >= 2 {
		if c, ok := prefix2[code[:2]]; ok {
			return c
		}
	}
	if c, ok := fallback[Digit(code)]; ok {
		return c
	}
	return ClassUnclassified
}

// DebitNature reports whether the class carries its natural balance on the
// debit side (assets and expenses) rather than the credit side (equity,
// liabilities, revenue).
func DebitNature(c Class) bool {
	s := string(c)
	return strings.HasPrefix(s, "asset-") || strings.HasPrefix(s, "expense-")
}

// NetBalance computes the signed balance of a debit/credit pair under the
// class's natural direction. Applied identically to opening and closing
// balances so signs stay consistent across statements.
func NetBalance(debit, credit float64, c Class) float64 {
	if DebitNature(c) {
		return debit - credit
	}
	return credit - debit
}
