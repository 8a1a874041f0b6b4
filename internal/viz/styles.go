package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/glide/internal/anim"
)

func Panel(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

func Title(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Title)
}

func Label(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func KeyHint(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
}

// StatusBadge renders a status kind in its theme colour.
func StatusBadge(t Theme, k anim.StatusKind) string {
	return lipgloss.NewStyle().Bold(true).Foreground(t.StatusColor(k)).Render(k.String())
}

// GradientText colours text from start to end, blending in HCL.
func GradientText(text string, start, end colorful.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := start.BlendHcl(end, t)
		sb.WriteString(lipgloss.NewStyle().Foreground(Hex(c)).Render(string(r)))
	}
	return sb.String()
}

// Track draws a horizontal bar with a marker at pos, where pos is 0 at the
// left edge and 1 at the right. Positions outside [0,1] pin to the edges.
func Track(pos float64, width int) string {
	if width < 1 {
		return ""
	}
	idx := int(pos*float64(width-1) + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx > width-1 {
		idx = width - 1
	}
	return strings.Repeat("─", idx) + "●" + strings.Repeat("─", width-1-idx)
}

// Sparkline maps values onto block characters.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width < 1 {
		return strings.Repeat(" ", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
