package service

import (
	"context"
	"log/slog"
	"strings"

	"soccer_team/internal/domain"
	"soccer_team/internal/repository"
	"soccer_team/pkg/logger"
)

type StatsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

func NewStatsService(statsRepo repository.StatsRepository, logger *slog.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*repository.Stats, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Info("stats retrieved",
		slog.Int("total_teams", stats.TotalTeams),
		slog.Int("created_teams", stats.CreatedTeams),
		slog.Int("total_players", stats.TotalPlayers),
	)

	return stats, nil
}

// GetTeamStats returns the breakdown of a single team
func (s *StatsService) GetTeamStats(ctx context.Context, teamName string) (*repository.TeamStats, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	teamName = strings.TrimSpace(teamName)
	for i := range stats.Teams {
		if stats.Teams[i].TeamName == teamName {
			return &stats.Teams[i], nil
		}
	}
	return nil, domain.ErrTeamNotFound
}
