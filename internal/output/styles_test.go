package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeStyle(t *testing.T) {
	tests := []struct {
		outcome string
	}{
		{OutcomePublished},
		{OutcomeReleased},
		{OutcomeSkipped},
		{OutcomeFailed},
		{"unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			// Styles must render without panicking; color output depends
			// on the terminal profile so we only check content survives.
			rendered := OutcomeStyle(tt.outcome).Render(tt.outcome)
			assert.Contains(t, rendered, tt.outcome)
		})
	}
}

func TestFormatOutcomeLine(t *testing.T) {
	line := FormatOutcomeLine("bootloader", "0.11.9", OutcomePublished)
	assert.Contains(t, line, "bootloader@0.11.9")
	assert.Contains(t, line, OutcomePublished)
}

func TestFormatCheckmark(t *testing.T) {
	msg := FormatCheckmark("release v0.12.0 created")
	assert.Contains(t, msg, "release v0.12.0 created")
}
