package validate

// Severity ranks a finding. Errors block acceptance of a batch; warnings and
// info are surfaced but non-blocking.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Stable finding codes, one per rule.
const (
	CodeEmptyBalance            = "EMPTY_BALANCE"
	CodeOpeningBalanceMismatch  = "OPENING_BALANCE_MISMATCH"
	CodeTurnoverMismatch        = "TURNOVER_MISMATCH"
	CodeClosingBalanceMismatch  = "CLOSING_BALANCE_MISMATCH"
	CodeMissingClasses          = "MISSING_CLASSES"
	CodeInvalidAccountCodes     = "INVALID_ACCOUNT_CODES"
	CodeNonFiniteValues         = "NONFINITE_VALUES"
	CodeDuplicateAccounts       = "DUPLICATE_ACCOUNTS"
	CodeDualBalance             = "DUAL_BALANCE"
	CodeAccountEquationMismatch = "ACCOUNT_EQUATION_MISMATCH"
	CodeInactiveAccounts        = "INACTIVE_ACCOUNTS"
	CodeNegativeValues          = "NEGATIVE_VALUES"
	CodeAnomalousValues         = "ANOMALOUS_VALUES"
	CodeDuplicateNames          = "DUPLICATE_NAMES"
	CodeMissingParentAccounts   = "MISSING_PARENT_ACCOUNTS"
	CodeIncompleteNames         = "INCOMPLETE_NAMES"
)

// Finding describes one condition detected by a validation rule. A rule that
// fires contributes exactly one Finding carrying counts and account lists, so
// report size stays bounded. Immutable once produced.
type Finding struct {
	Code             string
	Severity         Severity
	Message          string
	Details          map[string]string
	AffectedAccounts []string
}
