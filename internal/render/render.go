// Package render turns players and lineups into plain text, one player per line.
package render

import (
	"strconv"
	"strings"

	"soccer_team/internal/domain"
	"soccer_team/internal/lineup"
)

const teamHeader = "The current team contains:"

var sectionTitles = map[domain.Position]string{
	domain.PositionGoalie:     "GOALIE:",
	domain.PositionDefender:   "DEFENDERS:",
	domain.PositionMidfielder: "MIDFIELDERS:",
	domain.PositionForward:    "FORWARDS:",
}

// SectionTitle is the lineup heading for pos
func SectionTitle(pos domain.Position) string {
	return sectionTitles[pos]
}

// Player formats one record: first name, last name, birth date, skill level, jersey number.
// An unassigned jersey number prints as "-".
func Player(p *domain.Player) string {
	jersey := "-"
	if p.HasJerseyNumber() {
		jersey = strconv.Itoa(p.JerseyNumber())
	}

	var b strings.Builder
	b.WriteString(p.FirstName())
	b.WriteString(", ")
	b.WriteString(p.LastName())
	b.WriteString(", ")
	b.WriteString(p.DateOfBirth().Format(domain.DateLayout))
	b.WriteString(", Skill Level: ")
	b.WriteString(strconv.Itoa(p.SkillLevel()))
	b.WriteString(", Jersey Number: ")
	b.WriteString(jersey)
	return b.String()
}

func Players(players []*domain.Player) string {
	var b strings.Builder
	writePlayers(&b, players)
	return b.String()
}

// Team renders the whole roster under a header line
func Team(players []*domain.Player) string {
	var b strings.Builder
	b.WriteString(teamHeader)
	b.WriteByte('\n')
	writePlayers(&b, players)
	return b.String()
}

// Lineup renders one section per position in canonical order, each followed by a blank line
func Lineup(l *lineup.Lineup) string {
	var b strings.Builder
	for _, pos := range domain.Positions() {
		b.WriteString(SectionTitle(pos))
		b.WriteByte('\n')
		writePlayers(&b, l.Group(pos))
		b.WriteByte('\n')
	}
	return b.String()
}

func Bench(players []*domain.Player) string {
	return Players(players)
}

func writePlayers(b *strings.Builder, players []*domain.Player) {
	for _, p := range players {
		b.WriteString(Player(p))
		b.WriteByte('\n')
	}
}
