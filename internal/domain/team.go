package domain

import (
	"strings"
	"sync"
)

// Team is a named roster. The roster itself is not safe for concurrent use,
// so every access goes through WithRoster which holds the team lock.
type Team struct {
	Name string

	mu     sync.Mutex
	roster *Roster
}

func NewTeam(name string, roster *Roster) *Team {
	return &Team{
		Name:   strings.TrimSpace(name),
		roster: roster,
	}
}

func (t *Team) Validate() error {
	if t.Name == "" {
		return ErrInvalidInput
	}
	if t.roster == nil {
		return ErrInvalidInput
	}
	return nil
}

// WithRoster runs fn while holding the team lock
func (t *Team) WithRoster(fn func(r *Roster) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.roster)
}
