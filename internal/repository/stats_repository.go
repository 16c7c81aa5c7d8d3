package repository

import (
	"context"
	"fmt"
	"log/slog"

	"soccer_team/internal/domain"
	"soccer_team/internal/lineup"
)

type StatsRepositoryImpl struct {
	teams  TeamRepository
	logger *slog.Logger
}

func NewStatsRepository(teams TeamRepository, logger *slog.Logger) *StatsRepositoryImpl {
	return &StatsRepositoryImpl{
		teams:  teams,
		logger: logger,
	}
}

// GetStats считает игроков по всем командам; состав строится только для сформированных команд
func (r *StatsRepositoryImpl) GetStats(ctx context.Context) (*Stats, error) {
	teams, err := r.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	stats := &Stats{
		TotalTeams: len(teams),
		Teams:      make([]TeamStats, 0, len(teams)),
	}
	for _, team := range teams {
		var ts TeamStats
		_ = team.WithRoster(func(roster *domain.Roster) error {
			ts = teamStats(team.Name, roster)
			return nil
		})

		stats.TotalPlayers += ts.Players
		if ts.Created {
			stats.CreatedTeams++
			stats.LineupPlayers += ts.LineupPlayers
			stats.BenchPlayers += ts.BenchPlayers
		}
		stats.Teams = append(stats.Teams, ts)
	}

	r.logger.Debug("stats computed", slog.Int("teams", stats.TotalTeams))
	return stats, nil
}

func teamStats(name string, roster *domain.Roster) TeamStats {
	ts := TeamStats{
		TeamName: name,
		Created:  roster.IsCreated(),
		Players:  roster.Size(),
	}
	if !ts.Created {
		return ts
	}

	placed := lineup.Build(roster.Players()).Size()
	ts.LineupPlayers = placed
	ts.BenchPlayers = ts.Players - placed
	return ts
}
