package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{name: "empty", percent: 0, want: "[░░░░░░░░░░░░░░░░░░░░░░░░] 0%"},
		{name: "half", percent: 50, want: "[████████████░░░░░░░░░░░░] 50%"},
		{name: "full", percent: 100, want: "[████████████████████████] 100%"},
		{name: "clamped low", percent: -5, want: "[░░░░░░░░░░░░░░░░░░░░░░░░] 0%"},
		{name: "clamped high", percent: 140, want: "[████████████████████████] 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, progressBar(tt.percent))
		})
	}
}

func TestLitersFormatting(t *testing.T) {
	assert.Equal(t, "0 L", liters(0))
	assert.Equal(t, "212 L", liters(212))
	assert.Equal(t, "6,360 L", liters(6360))
	assert.Equal(t, "1,484,000 L", liters(1484000))
}
