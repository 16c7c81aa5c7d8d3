package domain

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

const (
	MinAge = 6
	MaxAge = 10

	MinSkillLevel = 1
	MaxSkillLevel = 5

	MinJerseyNumber = 1
	MaxJerseyNumber = 20

	// NoJerseyNumber marks a player whose team has not been made yet
	NoJerseyNumber = 0
)

// DateLayout is the calendar date format used for birth dates in input and output
const DateLayout = "2006-01-02"

// Player is one candidate of the team. Everything except the jersey number is fixed at
// construction; the jersey number is written once by Roster.MakeTeam.
type Player struct {
	firstName         string
	lastName          string
	dateOfBirth       time.Time
	preferredPosition Position
	skillLevel        int
	jerseyNumber      int
}

// PlayerInput carries already parsed player attributes from the outer layers
type PlayerInput struct {
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	PreferredPosition Position
	SkillLevel        int
}

// NewPlayer validates the attributes against today's date
func NewPlayer(firstName, lastName string, dateOfBirth time.Time, position Position, skillLevel int) (*Player, error) {
	return newPlayer(firstName, lastName, dateOfBirth, position, skillLevel, time.Now())
}

func newPlayer(firstName, lastName string, dateOfBirth time.Time, position Position, skillLevel int, today time.Time) (*Player, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrInvalidPlayer)
	}
	if !position.IsValid() {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidPlayer, ErrInvalidPosition, position)
	}

	dob := civilDate(dateOfBirth)
	age := ageOn(dob, civilDate(today))
	if age < MinAge || age >= MaxAge {
		return nil, fmt.Errorf("%w: the team only accepts players from %d up to %d years old, got %d",
			ErrInvalidPlayer, MinAge, MaxAge, age)
	}
	if skillLevel < MinSkillLevel || skillLevel > MaxSkillLevel {
		return nil, fmt.Errorf("%w: skill level must be between %d and %d, got %d",
			ErrInvalidPlayer, MinSkillLevel, MaxSkillLevel, skillLevel)
	}

	return &Player{
		firstName:         firstName,
		lastName:          lastName,
		dateOfBirth:       dob,
		preferredPosition: position,
		skillLevel:        skillLevel,
		jerseyNumber:      NoJerseyNumber,
	}, nil
}

func (p *Player) FirstName() string { return p.firstName }

func (p *Player) LastName() string { return p.lastName }

func (p *Player) DateOfBirth() time.Time { return p.dateOfBirth }

func (p *Player) PreferredPosition() Position { return p.preferredPosition }

func (p *Player) SkillLevel() int { return p.skillLevel }

// JerseyNumber returns NoJerseyNumber until the team is made
func (p *Player) JerseyNumber() int { return p.jerseyNumber }

func (p *Player) HasJerseyNumber() bool {
	return p.jerseyNumber != NoJerseyNumber
}

// SameAs reports whether both players have the same first name, last name and birth date.
// Preferred position and skill level do not take part in identity.
func (p *Player) SameAs(other *Player) bool {
	return ComparePlayers(p, other) == 0
}

// ComparePlayers orders players by last name, first name, then birth date.
// Two players compare equal exactly when they are the same candidate.
func ComparePlayers(a, b *Player) int {
	if c := cmp.Compare(a.lastName, b.lastName); c != 0 {
		return c
	}
	if c := cmp.Compare(a.firstName, b.firstName); c != 0 {
		return c
	}
	return a.dateOfBirth.Compare(b.dateOfBirth)
}

func (p *Player) clone() *Player {
	c := *p
	return &c
}

// assignJerseyNumber is only reachable from Roster.MakeTeam
func (p *Player) assignJerseyNumber(number int) error {
	if number < MinJerseyNumber || number > MaxJerseyNumber {
		return fmt.Errorf("jersey number should be chosen from %d to %d, got %d",
			MinJerseyNumber, MaxJerseyNumber, number)
	}
	if p.HasJerseyNumber() {
		return ErrJerseyNumberTaken
	}
	p.jerseyNumber = number
	return nil
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ageOn counts completed years between dob and today
func ageOn(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}
