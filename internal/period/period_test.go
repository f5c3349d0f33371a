package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2025-01", Format(2025, 1))
	assert.Equal(t, "2025-12", Format(2025, 12))
}

func TestParse(t *testing.T) {
	year, month, err := Parse("2025-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{"", "2025", "2025-13", "2025-00", "20xx-01", "2025-ab"}
	for _, id := range cases {
		_, _, err := Parse(id)
		assert.Error(t, err, "period %q", id)
	}
}

func TestRoundTrip(t *testing.T) {
	year, month, err := Parse(Format(2024, 7))
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)
}
