package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veribal-dev/veribal/internal/balance"
	"github.com/veribal-dev/veribal/internal/importer"
	"github.com/veribal-dev/veribal/internal/validate"
)

func TestRunReport_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", balancedCSV)

	var out bytes.Buffer
	require.NoError(t, runReport(&out, path, &importer.StandardParser{}, validate.Options{}, false))

	s := out.String()
	assert.Contains(t, s, "Balance Sheet")
	assert.Contains(t, s, "Income Statement")
	assert.Contains(t, s, "Cash Flow")
	assert.Contains(t, s, "KPIs")
	assert.Contains(t, s, "1500.00")
}

func TestRunReport_RefusesInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", unbalancedCSV)

	var out bytes.Buffer
	err := runReport(&out, path, &importer.StandardParser{}, validate.Options{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")
}

func TestRunReport_ForceOverridesInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", unbalancedCSV)

	var out bytes.Buffer
	require.NoError(t, runReport(&out, path, &importer.StandardParser{}, validate.Options{}, true))
	assert.Contains(t, out.String(), "WARNING: reporting on an invalid trial balance")
	assert.Contains(t, out.String(), "Balance Sheet")
}

func TestRunReport_AggregatesDuplicates(t *testing.T) {
	csv := balance.Header + "\n" +
		"512,Bank accounts,,,,,750.00,\n" +
		"512,Bank accounts,,,,,750.00,\n" +
		"101,Share capital,,,,,,1500.00\n"
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", csv)

	var out bytes.Buffer
	opts := validate.Options{AggregateDuplicates: true}
	require.NoError(t, runReport(&out, path, &importer.StandardParser{}, opts, false))
	assert.Contains(t, out.String(), "1500.00")
}
