package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"soccer_team/internal/domain"
	"soccer_team/internal/lineup"
	"soccer_team/internal/metrics"
	"soccer_team/internal/repository"
	"soccer_team/pkg/logger"
)

type TeamService struct {
	teamRepo   repository.TeamRepository
	recorder   metrics.Recorder
	logger     *slog.Logger
	jerseySeed int64
	clock      func() time.Time
}

type TeamServiceOption func(*TeamService)

// WithJerseySeed makes jersey numbers reproducible; 0 keeps clock based seeding
func WithJerseySeed(seed int64) TeamServiceOption {
	return func(s *TeamService) {
		s.jerseySeed = seed
	}
}

// WithClock overrides the clock used for player ages
func WithClock(now func() time.Time) TeamServiceOption {
	return func(s *TeamService) {
		s.clock = now
	}
}

func NewTeamService(
	teamRepo repository.TeamRepository,
	recorder metrics.Recorder,
	logger *slog.Logger,
	opts ...TeamServiceOption,
) *TeamService {
	if recorder == nil {
		recorder = metrics.NewNop()
	}
	s := &TeamService{
		teamRepo: teamRepo,
		recorder: recorder,
		logger:   logger,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TeamView is a read-only snapshot of a team
type TeamView struct {
	Name    string
	Created bool
	Players []*domain.Player
}

// CreateTeam registers an empty roster under name
func (s *TeamService) CreateTeam(ctx context.Context, name string) (*TeamView, error) {
	team := domain.NewTeam(name, s.newRoster())
	if err := team.Validate(); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.FromContext(ctx, s.logger).Info("team created", slog.String("team_name", team.Name))

	return &TeamView{Name: team.Name}, nil
}

func (s *TeamService) newRoster() *domain.Roster {
	seed := s.jerseySeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// #nosec G404 -- math/rand is sufficient for jersey numbers (not security-sensitive)
	return domain.NewRoster(
		domain.WithRand(rand.New(rand.NewSource(seed))),
		domain.WithClock(s.clock),
	)
}

// AddPlayer adds a player to a team that has not been made yet.
// Returns the added player and the player dropped to keep the roster at its maximum, if any.
func (s *TeamService) AddPlayer(ctx context.Context, teamName string, in domain.PlayerInput) (*domain.Player, *domain.Player, error) {
	log := logger.FromContext(ctx, s.logger)

	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return nil, nil, err
	}

	var added, dropped *domain.Player
	err = team.WithRoster(func(roster *domain.Roster) error {
		if roster.IsCreated() {
			return domain.ErrTeamAlreadyCreated
		}

		var addErr error
		dropped, addErr = roster.Add(in)
		if addErr != nil {
			return addErr
		}
		// nil when the new player was the one dropped
		added, _ = roster.Find(in.FirstName, in.LastName, in.DateOfBirth)
		return nil
	})
	if err != nil {
		s.recorder.PlayerRejected(string(domain.ToAPIError(err).Code))
		log.Warn("player rejected",
			slog.String("team_name", teamName),
			slog.String("first_name", in.FirstName),
			slog.String("last_name", in.LastName),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	s.recorder.PlayerAdded()
	log.Info("player added",
		slog.String("team_name", teamName),
		slog.String("first_name", in.FirstName),
		slog.String("last_name", in.LastName),
		slog.Int("skill_level", in.SkillLevel),
	)

	if dropped != nil {
		s.recorder.PlayerDropped()
		log.Info("roster full, lowest skilled player dropped",
			slog.String("team_name", teamName),
			slog.String("first_name", dropped.FirstName()),
			slog.String("last_name", dropped.LastName()),
			slog.Int("skill_level", dropped.SkillLevel()),
		)
	}

	return added, dropped, nil
}

// MakeTeam assigns jersey numbers. Calling it again on a made team changes nothing.
func (s *TeamService) MakeTeam(ctx context.Context, teamName string) (*TeamView, error) {
	log := logger.FromContext(ctx, s.logger)

	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	var view *TeamView
	err = team.WithRoster(func(roster *domain.Roster) error {
		if roster.IsCreated() {
			log.Info("team already made, keeping jersey numbers", slog.String("team_name", teamName))
		} else if err := roster.MakeTeam(); err != nil {
			return err
		}
		view = snapshot(team.Name, roster)
		return nil
	})
	if err != nil {
		s.recorder.TeamMade("failure")
		log.Warn("failed to make team",
			slog.String("team_name", teamName),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.recorder.TeamMade("success")
	log.Info("team made",
		slog.String("team_name", teamName),
		slog.Int("players_count", len(view.Players)),
	)

	return view, nil
}

// GetTeam returns the roster whether or not the team has been made
func (s *TeamService) GetTeam(ctx context.Context, teamName string) (*TeamView, error) {
	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	var view *TeamView
	_ = team.WithRoster(func(roster *domain.Roster) error {
		view = snapshot(team.Name, roster)
		return nil
	})

	return view, nil
}

// GetLineup builds the starting lineup from the current roster of a made team
func (s *TeamService) GetLineup(ctx context.Context, teamName string) (*lineup.Lineup, error) {
	l, _, err := s.buildLineup(ctx, teamName)
	return l, err
}

// GetBench returns the players of a made team left out of the starting lineup
func (s *TeamService) GetBench(ctx context.Context, teamName string) ([]*domain.Player, error) {
	_, bench, err := s.buildLineup(ctx, teamName)
	return bench, err
}

func (s *TeamService) buildLineup(ctx context.Context, teamName string) (*lineup.Lineup, []*domain.Player, error) {
	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return nil, nil, err
	}

	var (
		l     *lineup.Lineup
		bench []*domain.Player
	)
	err = team.WithRoster(func(roster *domain.Roster) error {
		if !roster.IsCreated() {
			return domain.ErrTeamNotCreated
		}
		players := roster.Players()
		l = lineup.Build(players)
		bench = lineup.Bench(players, l)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.recorder.LineupBuilt(l.Size())
	logger.FromContext(ctx, s.logger).Info("lineup built",
		slog.String("team_name", teamName),
		slog.Int("lineup_count", l.Size()),
		slog.Int("bench_count", len(bench)),
	)

	return l, bench, nil
}

func snapshot(name string, roster *domain.Roster) *TeamView {
	return &TeamView{
		Name:    name,
		Created: roster.IsCreated(),
		Players: roster.Players(),
	}
}
