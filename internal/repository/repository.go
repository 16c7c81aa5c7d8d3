// Интерфейсы репозиториев для хранения команд
package repository

import (
	"context"

	"soccer_team/internal/domain"
)

type TeamRepository interface {
	// Create stores a new team, ErrTeamExists if the name is taken
	Create(ctx context.Context, team *domain.Team) error
	// GetByName retrieves a team by name
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	// Exists checks if a team exists
	Exists(ctx context.Context, name string) (bool, error)
	// List returns all teams ordered by name
	List(ctx context.Context) ([]*domain.Team, error)
	// Count returns the total number of teams
	Count(ctx context.Context) (int, error)
}

type StatsRepository interface {
	// GetStats retrieves overall statistics
	GetStats(ctx context.Context) (*Stats, error)
}

// Stats represents overall system statistics
type Stats struct {
	TotalTeams    int `json:"total_teams"`
	CreatedTeams  int `json:"created_teams"`
	TotalPlayers  int `json:"total_players"`
	LineupPlayers int `json:"lineup_players"`
	BenchPlayers  int `json:"bench_players"`

	Teams []TeamStats `json:"teams"`
}

// TeamStats разбивка по одной команде
type TeamStats struct {
	TeamName      string `json:"team_name"`
	Created       bool   `json:"created"`
	Players       int    `json:"players"`
	LineupPlayers int    `json:"lineup_players"`
	BenchPlayers  int    `json:"bench_players"`
}
