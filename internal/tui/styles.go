package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	frameStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder())
	keyHint    = lipgloss.NewStyle().Italic(true)
	statusText = lipgloss.NewStyle().Bold(true)
)

// blend mixes from towards to by t in [0,1]. Unparseable colours pass to
// through unchanged.
func blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, err := colorful.Hex(string(from))
	if err != nil {
		return to
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return to
	}
	return lipgloss.Color(a.BlendRgb(b, clamp01(t)).Clamped().Hex())
}

// GradientText colours each rune along a gradient between two colours.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) == 1 {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		c := blend(start, end, float64(i)/float64(len(runes)-1))
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
	}
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
