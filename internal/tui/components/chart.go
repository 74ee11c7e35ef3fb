package components

import (
	"fmt"
	"strings"

	"spendtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labelled row in a horizontal bar chart.
type Bar struct {
	Label string
	Value string // pre-formatted value shown after the bar
	Share float64
	Color lipgloss.Color
}

// BarRows renders horizontal bars scaled so the largest share fills the
// available width. Shares are whatever unit the caller uses; only their
// ratios matter here.
func BarRows(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	valueW := 0
	maxShare := 0.0
	for _, b := range bars {
		if len(b.Label) > labelW {
			labelW = len(b.Label)
		}
		if lipgloss.Width(b.Value) > valueW {
			valueW = lipgloss.Width(b.Value)
		}
		if b.Share > maxShare {
			maxShare = b.Share
		}
	}

	barMax := width - labelW - valueW - 2
	if barMax < 1 {
		barMax = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var out strings.Builder
	for _, b := range bars {
		length := 0
		if maxShare > 0 {
			length = int(b.Share / maxShare * float64(barMax))
		}
		if length < 1 && b.Share > 0 {
			length = 1
		}
		bar := lipgloss.NewStyle().Foreground(b.Color).Render(strings.Repeat("█", length))
		fmt.Fprintf(&out, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, b.Label)),
			bar,
			valueStyle.Render(b.Value))
	}
	return out.String()
}
