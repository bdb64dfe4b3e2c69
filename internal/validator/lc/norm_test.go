package lc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/validator/lc"
)

func TestParseDate(t *testing.T) {
	d, ok := lc.ParseDate("15/02/2026")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), d)

	d, ok = lc.ParseDate("2025-12-31")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), d)

	_, ok = lc.ParseDate("soon")
	assert.False(t, ok)
	_, ok = lc.ParseDate("")
	assert.False(t, ok)
}

func TestParseAmount(t *testing.T) {
	v, ok := lc.ParseAmount("USD 150,000.00")
	require.True(t, ok)
	assert.InDelta(t, 150000.0, v, 0.001)

	v, ok = lc.ParseAmount("1,234.56")
	require.True(t, ok)
	assert.InDelta(t, 1234.56, v, 0.001)

	_, ok = lc.ParseAmount("N/A")
	assert.False(t, ok, "no digits left after stripping")
	_, ok = lc.ParseAmount("")
	assert.False(t, ok)
}

func TestParsePercent(t *testing.T) {
	v, ok := lc.ParsePercent("10%")
	require.True(t, ok)
	assert.InDelta(t, 10.0, v, 0.001)

	v, ok = lc.ParsePercent("+/- 5")
	require.True(t, ok)
	assert.InDelta(t, 5.0, v, 0.001)
}

func TestNamesMatch(t *testing.T) {
	assert.True(t, lc.NamesMatch("ABC-Trading & Co.", "abc trading co"))
	assert.True(t, lc.NamesMatch("  ABC Trading Co ", "ABC Trading, Co."))
	assert.False(t, lc.NamesMatch("ABC Trading Co", "ABC Trading"), "a dropped suffix is a discrepancy")
	assert.False(t, lc.NamesMatch("ABC Trading", "XYZ Logistics"))
	assert.False(t, lc.NamesMatch("", "ABC Trading"))
}
