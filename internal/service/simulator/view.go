package simulator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lcdwatch/alarm-face/internal/face"
)

// Styles of the terminal watch rendering.
var (
	lcdStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("236")).
			Background(lipgloss.Color("150"))

	lcdBacklitStyle = lcdStyle.
			Background(lipgloss.Color("157"))

	indicatorOnStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("28"))

	indicatorOffStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// pitchBarLevels is the number of segments of the pitch level bar.
const pitchBarLevels = 3

// View renders the watch: indicators, the main line with the colon, the
// pitch bar and the key help.
func (m Model) View() string {
	d := m.host.lcd

	var b strings.Builder

	b.WriteString(renderIndicators(d))
	b.WriteByte('\n')

	style := lcdStyle
	if m.host.Backlit() {
		style = lcdBacklitStyle
	}

	b.WriteString(style.Render(renderLine(d)))
	b.WriteByte('\n')
	b.WriteString(renderPitchBar(d))
	b.WriteByte('\n')

	if m.host.banner != "" {
		b.WriteString(bannerStyle.Render(m.host.banner))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render(
		"l light  L hold light  a alarm  A hold alarm  m mode  t timeout  q quit"))
	b.WriteByte('\n')

	return b.String()
}

// renderLine spaces out the character positions and inserts the colon
// between the hour and minute digits when set.
func renderLine(d *lcd) string {
	line := d.Line()

	sep := " "
	if d.colon {
		sep = ":"
	}

	return line[:6] + sep + line[6:]
}

// renderIndicators shows the discrete indicator segments above the line.
func renderIndicators(d *lcd) string {
	names := []struct {
		i     face.Indicator
		label string
	}{
		{face.IndicatorSignal, "SIG"},
		{face.IndicatorBell, "BELL"},
		{face.IndicatorPM, "PM"},
		{face.IndicatorLap, "LAP"},
	}

	parts := make([]string, 0, len(names))

	for _, n := range names {
		style := indicatorOffStyle
		if d.indicators[n.i] {
			style = indicatorOnStyle
		}

		parts = append(parts, style.Render(n.label))
	}

	return strings.Join(parts, "  ")
}

// renderPitchBar shows the bare pixel segments as a small bar; the face
// uses them for the pitch level while editing it.
func renderPitchBar(d *lcd) string {
	lit := len(d.pixels)
	if lit > pitchBarLevels {
		lit = pitchBarLevels
	}

	return indicatorOnStyle.Render(strings.Repeat("▮", lit)) +
		indicatorOffStyle.Render(strings.Repeat("▯", pitchBarLevels-lit))
}
