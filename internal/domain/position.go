package domain

import "strings"

type Position string

const (
	PositionGoalie     Position = "GOALIE"
	PositionDefender   Position = "DEFENDER"
	PositionMidfielder Position = "MIDFIELDER"
	PositionForward    Position = "FORWARD"
)

// LineupSize is the number of players on the field in a starting lineup
const LineupSize = 7

// Positions returns all positions in canonical order: GOALIE, DEFENDER, MIDFIELDER, FORWARD.
// Lineup fallback and rendering both walk positions in this order.
func Positions() []Position {
	return []Position{PositionGoalie, PositionDefender, PositionMidfielder, PositionForward}
}

// Slots returns how many lineup places the position has
func (p Position) Slots() int {
	switch p {
	case PositionGoalie:
		return 1
	case PositionDefender:
		return 2
	case PositionMidfielder:
		return 3
	case PositionForward:
		return 1
	default:
		return 0
	}
}

func (p Position) IsValid() bool {
	return p.Slots() > 0
}

// ParsePosition accepts a position name in any case
func ParsePosition(s string) (Position, error) {
	pos := Position(strings.ToUpper(strings.TrimSpace(s)))
	if !pos.IsValid() {
		return "", ErrInvalidPosition
	}
	return pos, nil
}
