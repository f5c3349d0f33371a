package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/veribal-dev/veribal/internal/classify"
	"github.com/veribal-dev/veribal/internal/model"
	"github.com/veribal-dev/veribal/internal/tolerance"
)

// A Rule inspects a batch and reports zero or more findings. Rules are
// independent of each other and run in the order declared below, so report
// ordering is deterministic.
type Rule func(rows []model.AccountRow, totals Totals, opts Options) []Finding

// rules run after the empty-batch short circuit, hard rules first.
var rules = []Rule{
	ruleOpeningBalance,
	ruleTurnoverBalance,
	ruleClosingBalance,
	ruleMandatoryClasses,
	ruleAccountCodeFormat,
	ruleNumericFinite,
	ruleDuplicateCodes,
	ruleDualBalance,
	ruleAccountEquation,
	ruleInactiveAccounts,
	ruleNegativeValues,
	ruleOutliers,
	ruleDuplicateNames,
	ruleHierarchy,
	ruleCompleteness,
}

// maxExamples caps account codes quoted in messages; full lists go in
// AffectedAccounts.
const maxExamples = 10

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func examples(codes []string) string {
	if len(codes) > maxExamples {
		codes = codes[:maxExamples]
	}
	return strings.Join(codes, ", ")
}

func balanceMismatch(code, side string, diff, tol float64) []Finding {
	if tolerance.Within(diff, tol) {
		return nil
	}
	return []Finding{{
		Code:     code,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s debit and credit totals differ by %s", side, formatAmount(diff)),
		Details:  map[string]string{"difference": formatAmount(diff)},
	}}
}

func ruleOpeningBalance(_ []model.AccountRow, totals Totals, opts Options) []Finding {
	return balanceMismatch(CodeOpeningBalanceMismatch, "opening", totals.OpeningDebit-totals.OpeningCredit, opts.tol())
}

func ruleTurnoverBalance(_ []model.AccountRow, totals Totals, opts Options) []Finding {
	return balanceMismatch(CodeTurnoverMismatch, "turnover", totals.DebitTurnover-totals.CreditTurnover, opts.tol())
}

func ruleClosingBalance(_ []model.AccountRow, totals Totals, opts Options) []Finding {
	return balanceMismatch(CodeClosingBalanceMismatch, "closing", totals.ClosingDebit-totals.ClosingCredit, opts.tol())
}

// ruleMandatoryClasses warns when any chart class 1-7 is absent. A warning
// rather than an error: batches covering only part of a fiscal exercise are
// legitimate.
func ruleMandatoryClasses(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	present := make(map[byte]bool, 8)
	for _, r := range rows {
		present[classify.Digit(r.Code)] = true
	}
	var missing []string
	for c := byte('1'); c <= '7'; c++ {
		if !present[c] {
			missing = append(missing, string(c))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []Finding{{
		Code:     CodeMissingClasses,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("account classes %s are absent from the batch", strings.Join(missing, ", ")),
		Details:  map[string]string{"missing_classes": strings.Join(missing, ",")},
	}}
}

// codePattern accepts 1-8 digits starting with a class digit 1-8 (8 is
// off-balance-sheet), optionally followed by a 2-3 digit analytic suffix.
var codePattern = regexp.MustCompile(`^[1-8][0-9]{0,7}(\.[0-9]{2,3})?$`)

func ruleAccountCodeFormat(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	var bad []string
	for _, r := range rows {
		if !codePattern.MatchString(r.Code) {
			bad = append(bad, r.Code)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeInvalidAccountCodes,
		Severity:         SeverityError,
		Message:          fmt.Sprintf("%d account codes do not match the chart-of-accounts format (e.g. %s)", len(bad), examples(bad)),
		Details:          map[string]string{"count": strconv.Itoa(len(bad))},
		AffectedAccounts: bad,
	}}
}

func ruleNumericFinite(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	var bad []string
	for _, r := range rows {
		for _, v := range r.Amounts() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad = append(bad, r.Code)
				break
			}
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeNonFiniteValues,
		Severity:         SeverityError,
		Message:          fmt.Sprintf("%d accounts contain non-finite amounts (e.g. %s)", len(bad), examples(bad)),
		Details:          map[string]string{"count": strconv.Itoa(len(bad))},
		AffectedAccounts: bad,
	}}
}

// ruleDuplicateCodes severity depends on the caller's duplicate policy:
// merge-and-sum (warning) or reject the batch (error).
func ruleDuplicateCodes(rows []model.AccountRow, _ Totals, opts Options) []Finding {
	counts := make(map[string]int, len(rows))
	var order []string
	for _, r := range rows {
		if counts[r.Code] == 0 {
			order = append(order, r.Code)
		}
		counts[r.Code]++
	}
	var dups []string
	details := make(map[string]string)
	for _, code := range order {
		if counts[code] > 1 {
			dups = append(dups, code)
			details[code] = strconv.Itoa(counts[code])
		}
	}
	if len(dups) == 0 {
		return nil
	}
	severity := SeverityError
	if opts.AggregateDuplicates {
		severity = SeverityWarning
	}
	return []Finding{{
		Code:             CodeDuplicateAccounts,
		Severity:         severity,
		Message:          fmt.Sprintf("%d account codes appear more than once (e.g. %s)", len(dups), examples(dups)),
		Details:          details,
		AffectedAccounts: dups,
	}}
}

// ruleDualBalance flags rows carrying both a debit and a credit above
// tolerance on the same balance pair, opening and closing checked
// independently.
func ruleDualBalance(rows []model.AccountRow, _ Totals, opts Options) []Finding {
	tol := opts.tol()
	var affected []string
	details := make(map[string]string)
	for _, r := range rows {
		var sides []string
		if r.OpeningDebit > tol && r.OpeningCredit > tol {
			sides = append(sides, "opening")
		}
		if r.ClosingDebit > tol && r.ClosingCredit > tol {
			sides = append(sides, "closing")
		}
		if len(sides) == 0 {
			continue
		}
		affected = append(affected, r.Code)
		details[r.Code] = strings.Join(sides, ",")
	}
	if len(affected) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeDualBalance,
		Severity:         SeverityWarning,
		Message:          fmt.Sprintf("%d accounts carry both a debit and a credit balance (e.g. %s)", len(affected), examples(affected)),
		Details:          details,
		AffectedAccounts: affected,
	}}
}

// ruleAccountEquation checks opening + turnover = closing per row, on net
// debit-minus-credit terms.
func ruleAccountEquation(rows []model.AccountRow, _ Totals, opts Options) []Finding {
	tol := opts.tol()
	var affected []string
	details := make(map[string]string)
	for _, r := range rows {
		diff := (r.OpeningDebit - r.OpeningCredit) +
			(r.DebitTurnover - r.CreditTurnover) -
			(r.ClosingDebit - r.ClosingCredit)
		if tolerance.Within(diff, tol) {
			continue
		}
		affected = append(affected, r.Code)
		details[r.Code] = formatAmount(diff)
	}
	if len(affected) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeAccountEquationMismatch,
		Severity:         SeverityWarning,
		Message:          fmt.Sprintf("%d accounts where opening plus turnover does not equal closing (e.g. %s)", len(affected), examples(affected)),
		Details:          details,
		AffectedAccounts: affected,
	}}
}

func ruleInactiveAccounts(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	var inactive []string
	for _, r := range rows {
		if r.Inactive() {
			inactive = append(inactive, r.Code)
		}
	}
	if len(inactive) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeInactiveAccounts,
		Severity:         SeverityInfo,
		Message:          fmt.Sprintf("%d accounts have no opening balance, movement, or closing balance", len(inactive)),
		Details:          map[string]string{"count": strconv.Itoa(len(inactive))},
		AffectedAccounts: inactive,
	}}
}

func ruleNegativeValues(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	var affected []string
	for _, r := range rows {
		for _, v := range r.Amounts() {
			if v < 0 {
				affected = append(affected, r.Code)
				break
			}
		}
	}
	if len(affected) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeNegativeValues,
		Severity:         SeverityWarning,
		Message:          fmt.Sprintf("%d accounts contain negative amounts (e.g. %s)", len(affected), examples(affected)),
		Details:          map[string]string{"count": strconv.Itoa(len(affected))},
		AffectedAccounts: affected,
	}}
}

// ruleOutliers applies Tukey fences over every strictly positive amount in
// the batch. Below MinIQRSamples positive values the distribution is too
// small to call anything an outlier, so the rule stays silent.
func ruleOutliers(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	var values []float64
	for _, r := range rows {
		for _, v := range r.Amounts() {
			if v > 0 && !math.IsInf(v, 0) {
				values = append(values, v)
			}
		}
	}
	if len(values) < tolerance.MinIQRSamples {
		return nil
	}
	_, _, lower, upper := tolerance.IQRBounds(values)

	var affected []string
	for _, r := range rows {
		for _, v := range r.Amounts() {
			if v > 0 && (v < lower || v > upper) {
				affected = append(affected, r.Code)
				break
			}
		}
	}
	if len(affected) == 0 {
		return nil
	}
	return []Finding{{
		Code:     CodeAnomalousValues,
		Severity: SeverityInfo,
		Message:  fmt.Sprintf("%d accounts hold amounts far outside the batch distribution (e.g. %s)", len(affected), examples(affected)),
		Details: map[string]string{
			"lower": formatAmount(lower),
			"upper": formatAmount(upper),
		},
		AffectedAccounts: affected,
	}}
}

// ruleDuplicateNames groups case-insensitive, trimmed name collisions across
// different codes.
func ruleDuplicateNames(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	byName := make(map[string][]string)
	var order []string
	for _, r := range rows {
		name := strings.ToLower(strings.TrimSpace(r.Name))
		if name == "" {
			continue
		}
		codes := byName[name]
		if codes == nil {
			order = append(order, name)
		}
		if !contains(codes, r.Code) {
			byName[name] = append(codes, r.Code)
		}
	}
	var affected []string
	details := make(map[string]string)
	for _, name := range order {
		codes := byName[name]
		if len(codes) < 2 {
			continue
		}
		affected = append(affected, codes...)
		details[name] = strings.Join(codes, ",")
	}
	if len(affected) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeDuplicateNames,
		Severity:         SeverityInfo,
		Message:          fmt.Sprintf("%d account names are shared across different codes", len(details)),
		Details:          details,
		AffectedAccounts: affected,
	}}
}

// ruleHierarchy checks that analytic accounts (4+ digits, no dot) have their
// 3-digit synthetic parent present in the batch.
func ruleHierarchy(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	present := make(map[string]bool, len(rows))
	for _, r := range rows {
		present[r.Code] = true
	}
	var orphans []string
	seen := make(map[string]bool)
	for _, r := range rows {
		if len(r.Code) < 4 || strings.Contains(r.Code, ".") {
			continue
		}
		if present[r.Code[:3]] || seen[r.Code] {
			continue
		}
		seen[r.Code] = true
		orphans = append(orphans, r.Code)
	}
	if len(orphans) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeMissingParentAccounts,
		Severity:         SeverityInfo,
		Message:          fmt.Sprintf("%d analytic accounts have no 3-digit parent in the batch (e.g. %s)", len(orphans), examples(orphans)),
		Details:          map[string]string{"count": strconv.Itoa(len(orphans))},
		AffectedAccounts: orphans,
	}}
}

func ruleCompleteness(rows []model.AccountRow, _ Totals, _ Options) []Finding {
	var affected []string
	for _, r := range rows {
		if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < 3 {
			affected = append(affected, r.Code)
		}
	}
	if len(affected) == 0 {
		return nil
	}
	return []Finding{{
		Code:             CodeIncompleteNames,
		Severity:         SeverityWarning,
		Message:          fmt.Sprintf("%d accounts have a missing or too-short name (e.g. %s)", len(affected), examples(affected)),
		Details:          map[string]string{"count": strconv.Itoa(len(affected))},
		AffectedAccounts: affected,
	}}
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
