package balance

import (
	"fmt"
	"os"

	"github.com/veribal-dev/veribal/internal/classify"
	"github.com/veribal-dev/veribal/internal/model"
)

// Service provides in-memory lookup over one trial-balance batch. It keeps
// row order, so duplicate codes survive until the caller picks a policy.
type Service struct {
	rows   []model.AccountRow
	byCode map[string]int // index of first occurrence
}

// NewService creates a Service from a slice of account rows.
func NewService(rows []model.AccountRow) *Service {
	byCode := make(map[string]int, len(rows))
	for i, r := range rows {
		if _, ok := byCode[r.Code]; !ok {
			byCode[r.Code] = i
		}
	}
	return &Service{rows: rows, byCode: byCode}
}

// Load reads a trial-balance CSV file and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trial balance: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading trial balance %s: %w", path, err)
	}
	return NewService(rows), nil
}

// All returns all rows in original order.
func (s *Service) All() []model.AccountRow {
	return s.rows
}

// Get returns the first row with the given code.
func (s *Service) Get(code string) (model.AccountRow, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return model.AccountRow{}, false
	}
	return s.rows[i], true
}

// Exists reports whether an account code appears in the batch.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByClass returns all rows classified into the given bucket.
func (s *Service) ByClass(class classify.Class) []model.AccountRow {
	var result []model.AccountRow
	for _, r := range s.rows {
		if classify.For(r.Code) == class {
			result = append(result, r)
		}
	}
	return result
}

// Aggregated merges rows sharing a code by summing their amount fields,
// keeping first-occurrence order and names. This is the merge side of the
// duplicate policy; with rejection the caller never gets this far.
func (s *Service) Aggregated() []model.AccountRow {
	merged := make([]model.AccountRow, 0, len(s.rows))
	index := make(map[string]int, len(s.rows))
	for _, r := range s.rows {
		i, ok := index[r.Code]
		if !ok {
			index[r.Code] = len(merged)
			merged = append(merged, r)
			continue
		}
		merged[i].OpeningDebit += r.OpeningDebit
		merged[i].OpeningCredit += r.OpeningCredit
		merged[i].DebitTurnover += r.DebitTurnover
		merged[i].CreditTurnover += r.CreditTurnover
		merged[i].ClosingDebit += r.ClosingDebit
		merged[i].ClosingCredit += r.ClosingCredit
	}
	return merged
}
