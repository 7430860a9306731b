package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runQuote(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{"quote"}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestQuoteCmd_FullModifiers(t *testing.T) {
	out := runQuote(t,
		"--rate", "5000", "--discount", "10", "--tax", "18", "--extra-bed", "1000",
		"--check-in", "2024-03-01", "--check-out", "2024-03-04",
	)

	assert.Contains(t, out, "Nightly rate: 6310.00")
	assert.Contains(t, out, "Nights:       3")
	assert.Contains(t, out, "Base amount:  15000.00")
	assert.Contains(t, out, "Total:        18930.00")
}

func TestQuoteCmd_MissingRate(t *testing.T) {
	out := runQuote(t, "--check-in", "2024-03-01", "--check-out", "2024-03-02")

	assert.Contains(t, out, "Nightly rate: n/a")
	assert.Contains(t, out, "Total:        0.00")
	assert.NotContains(t, out, "Base amount")
}
