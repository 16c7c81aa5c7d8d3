package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"soccer_team/internal/domain"
	"soccer_team/internal/lineup"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			PaddingLeft(2)
)

// Heading styles a section title for terminal output
func Heading(title string) string {
	return headingStyle.Render(title)
}

// StyledLineup is Lineup with colored headings and indented players.
// Output depends on the terminal color profile, so it is meant for display only.
func StyledLineup(l *lineup.Lineup) string {
	var b strings.Builder
	for _, pos := range domain.Positions() {
		b.WriteString(Heading(SectionTitle(pos)))
		b.WriteByte('\n')
		for _, p := range l.Group(pos) {
			b.WriteString(bodyStyle.Render(Player(p)))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// StyledPlayers renders players under a styled heading
func StyledPlayers(title string, players []*domain.Player) string {
	var b strings.Builder
	b.WriteString(Heading(title))
	b.WriteByte('\n')
	for _, p := range players {
		b.WriteString(bodyStyle.Render(Player(p)))
		b.WriteByte('\n')
	}
	return b.String()
}
