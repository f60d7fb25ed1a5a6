package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
		wantDim  bool
	}{
		{name: "rendered returns green", status: StatusRendered, wantFG: colorGreen},
		{name: "copied returns yellow", status: StatusCopied, wantFG: ColorYellow},
		{name: "skipped returns faint", status: StatusSkipped, wantDim: true},
		{name: "failed returns bold red", status: statusFailed, wantBold: true, wantFG: colorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("project generated")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "project generated")
}
