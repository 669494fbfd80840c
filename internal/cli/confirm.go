package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/extprune/internal/prune"
)

// Gate is the state of the confirmation step.
type Gate int

const (
	// GateAwaitingInput asks the user before deleting.
	GateAwaitingInput Gate = iota
	// GateAutoConfirmed deletes without asking.
	GateAutoConfirmed
	// GateDryRun runs the deletion pass without removing anything.
	GateDryRun
)

// String returns the name of the gate state.
func (g Gate) String() string {
	switch g {
	case GateAwaitingInput:
		return "awaiting-input"
	case GateAutoConfirmed:
		return "auto-confirmed"
	case GateDryRun:
		return "dry-run"
	default:
		return fmt.Sprintf("Gate(%d)", int(g))
	}
}

// gateFor picks the gate state. A dry run wins over --yes.
func gateFor(options prune.Options) Gate {
	switch {
	case options.DryRun:
		return GateDryRun
	case options.Yes:
		return GateAutoConfirmed
	default:
		return GateAwaitingInput
	}
}

// readConfirmation reads one line and reports whether it is "y" or "yes", ignoring case.
// Empty input and end of input decline.
func readConfirmation(in io.Reader) (bool, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}
