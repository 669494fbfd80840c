package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/extprune/internal/prune"
)

func TestGateFor(t *testing.T) {
	tests := []struct {
		name     string
		options  prune.Options
		expected Gate
	}{
		{"interactive", prune.Options{}, GateAwaitingInput},
		{"yes", prune.Options{Yes: true}, GateAutoConfirmed},
		{"dry run", prune.Options{DryRun: true}, GateDryRun},
		{"dry run wins over yes", prune.Options{DryRun: true, Yes: true}, GateDryRun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gateFor(tt.options))
		})
	}
}

func TestReadConfirmation(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Yes\r\n", true},
		{"  YES\n", true},
		{"y", true},
		{"n\n", false},
		{"no\n", false},
		{"yess\n", false},
		{"\n", false},
		{"", false},
		{"y es\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ok, err := readConfirmation(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("broken") }

func TestReadConfirmationError(t *testing.T) {
	_, err := readConfirmation(brokenReader{})
	require.Error(t, err)
}

func TestGateString(t *testing.T) {
	assert.Equal(t, "dry-run", GateDryRun.String())
	assert.Equal(t, "Gate(9)", Gate(9).String())
}
