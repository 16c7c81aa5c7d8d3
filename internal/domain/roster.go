package domain

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"
)

const (
	// MaxPlayers caps the roster; adding past it drops the lowest skilled player
	MaxPlayers = 20
	// MinPlayers is required before the team can be made
	MinPlayers = 10
)

// Roster is the candidate list of a team, unique by first name, last name and birth date
// and kept sorted by last name, first name, birth date.
//
// Roster is not safe for concurrent use; callers serialize access.
type Roster struct {
	players []*Player
	created bool
	rng     *rand.Rand
	now     func() time.Time
}

type RosterOption func(*Roster)

// WithRand sets the random source used to shuffle jersey numbers
func WithRand(rng *rand.Rand) RosterOption {
	return func(r *Roster) {
		r.rng = rng
	}
}

// WithClock sets the clock used to compute player ages
func WithClock(now func() time.Time) RosterOption {
	return func(r *Roster) {
		r.now = now
	}
}

func NewRoster(opts ...RosterOption) *Roster {
	r := &Roster{
		players: make([]*Player, 0, MaxPlayers+1),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		// #nosec G404 -- math/rand is sufficient for jersey numbers (not security-sensitive)
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

// AddPlayer validates and inserts a player. If the roster grows past MaxPlayers the first
// player (in roster order) with the lowest skill level is dropped and returned; this can be
// the player that was just added. A failed add leaves the roster untouched.
func (r *Roster) AddPlayer(firstName, lastName string, dateOfBirth time.Time, position Position, skillLevel int) (*Player, error) {
	player, err := newPlayer(firstName, lastName, dateOfBirth, position, skillLevel, r.now())
	if err != nil {
		return nil, err
	}

	idx, found := slices.BinarySearchFunc(r.players, player, ComparePlayers)
	if found {
		return nil, fmt.Errorf("%w: %s %s %s", ErrPlayerExists,
			player.firstName, player.lastName, player.dateOfBirth.Format(DateLayout))
	}
	r.players = slices.Insert(r.players, idx, player)

	if len(r.players) > MaxPlayers {
		return r.dropLowestSkill(), nil
	}
	return nil, nil
}

// Add is AddPlayer taking a PlayerInput
func (r *Roster) Add(in PlayerInput) (*Player, error) {
	return r.AddPlayer(in.FirstName, in.LastName, in.DateOfBirth, in.PreferredPosition, in.SkillLevel)
}

// Find looks a player up by first name, last name and birth date and returns a copy
func (r *Roster) Find(firstName, lastName string, dateOfBirth time.Time) (*Player, bool) {
	key := &Player{
		firstName:   strings.TrimSpace(firstName),
		lastName:    strings.TrimSpace(lastName),
		dateOfBirth: civilDate(dateOfBirth),
	}
	idx, found := slices.BinarySearchFunc(r.players, key, ComparePlayers)
	if !found {
		return nil, false
	}
	return r.players[idx].clone(), true
}

func (r *Roster) dropLowestSkill() *Player {
	lowest := -1
	for i, p := range r.players {
		if lowest == -1 || p.skillLevel < r.players[lowest].skillLevel {
			lowest = i
		}
	}
	if lowest == -1 {
		return nil
	}
	dropped := r.players[lowest]
	r.players = slices.Delete(r.players, lowest, lowest+1)
	return dropped
}

// MakeTeam assigns every player a distinct jersey number from a shuffled 1..MaxJerseyNumber.
// Once it has succeeded further calls keep the existing numbers.
func (r *Roster) MakeTeam() error {
	if r.created {
		return nil
	}
	if len(r.players) < MinPlayers {
		return fmt.Errorf("%w: please add more members to the team, now we have %d players (need %d)",
			ErrNotEnoughPlayers, len(r.players), MinPlayers)
	}

	numbers := make([]int, MaxJerseyNumber)
	for i := range numbers {
		numbers[i] = MinJerseyNumber + i
	}
	r.rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	for i, p := range r.players {
		if err := p.assignJerseyNumber(numbers[i]); err != nil {
			return fmt.Errorf("failed to assign jersey number: %w", err)
		}
	}
	r.created = true
	return nil
}

// IsCreated reports whether MakeTeam has succeeded
func (r *Roster) IsCreated() bool {
	return r.created
}

// Players returns copies of the players in last name, first name, birth date order.
// The copies stay valid after the caller releases the team lock.
func (r *Roster) Players() []*Player {
	out := make([]*Player, len(r.players))
	for i, p := range r.players {
		out[i] = p.clone()
	}
	return out
}

func (r *Roster) Size() int {
	return len(r.players)
}
