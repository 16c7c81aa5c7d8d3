// Имплементация репозитория команд в памяти процесса
package repository

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"soccer_team/internal/domain"
)

type TeamRepositoryImpl struct {
	mu     sync.RWMutex
	teams  map[string]*domain.Team
	logger *slog.Logger
}

func NewTeamRepository(logger *slog.Logger) *TeamRepositoryImpl {
	return &TeamRepositoryImpl{
		teams:  make(map[string]*domain.Team),
		logger: logger,
	}
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, team *domain.Team) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[team.Name]; ok {
		r.logger.Warn("team already exists", slog.String("team_name", team.Name))
		return domain.ErrTeamExists
	}
	r.teams[team.Name] = team

	r.logger.Info("team stored", slog.String("team_name", team.Name))
	return nil
}

func (r *TeamRepositoryImpl) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[strings.TrimSpace(name)]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return team, nil
}

func (r *TeamRepositoryImpl) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.teams[strings.TrimSpace(name)]
	return ok, nil
}

func (r *TeamRepositoryImpl) List(ctx context.Context) ([]*domain.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	teams := make([]*domain.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}
	r.mu.RUnlock()

	slices.SortFunc(teams, func(a, b *domain.Team) int {
		return strings.Compare(a.Name, b.Name)
	})
	return teams, nil
}

func (r *TeamRepositoryImpl) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teams), nil
}
