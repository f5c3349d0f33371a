package importer

import (
	"io"

	"github.com/veribal-dev/veribal/internal/balance"
	"github.com/veribal-dev/veribal/internal/model"
)

// StandardParser parses the native trial-balance CSV layout.
type StandardParser struct{}

// Format returns the parser name.
func (p *StandardParser) Format() string { return "standard" }

// Parse reads a native trial-balance CSV.
func (p *StandardParser) Parse(r io.Reader) ([]model.AccountRow, error) {
	return balance.ReadRows(r)
}
