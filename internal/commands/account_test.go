package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veribal-dev/veribal/internal/balance"
)

func TestRunAccount(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", balancedCSV)

	var out bytes.Buffer
	require.NoError(t, runAccount(&out, path, "512"))

	s := out.String()
	assert.Contains(t, s, "Account 512 (Bank accounts)")
	assert.Contains(t, s, "Class:    asset-current-cash")
	assert.Contains(t, s, "Closing:  1500.00 D / 0.00 C")
	assert.NotContains(t, s, "Same class")
}

func TestRunAccount_ListsClassPeers(t *testing.T) {
	csv := balance.Header + "\n" +
		"512,Bank accounts,,,,,750.00,\n" +
		"531,Petty cash,,,,,750.00,\n" +
		"101,Share capital,,,,,,1500.00\n"
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", csv)

	var out bytes.Buffer
	require.NoError(t, runAccount(&out, path, "512"))
	assert.Contains(t, out.String(), "Same class: 531")
}

func TestRunAccount_NotFound(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jan.csv", balancedCSV)

	var out bytes.Buffer
	err := runAccount(&out, path, "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 999 not found")
}

func TestRunAccount_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runAccount(&out, filepath.Join(t.TempDir(), "nope.csv"), "512")
	assert.Error(t, err)
}
