package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"soccer_team/internal/domain"
	"soccer_team/internal/render"
	"soccer_team/internal/repository"
	"soccer_team/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

type recorderSpy struct {
	added, dropped int
	rejected       []string
	made           []string
	placed         []int
}

func (r *recorderSpy) PlayerAdded()               { r.added++ }
func (r *recorderSpy) PlayerRejected(code string) { r.rejected = append(r.rejected, code) }
func (r *recorderSpy) PlayerDropped()             { r.dropped++ }
func (r *recorderSpy) TeamMade(result string)     { r.made = append(r.made, result) }
func (r *recorderSpy) LineupBuilt(placed int)     { r.placed = append(r.placed, placed) }

func newTestService(t *testing.T, seed int64) (*TeamService, *recorderSpy) {
	t.Helper()
	log := logger.Discard()
	spy := &recorderSpy{}
	svc := NewTeamService(repository.NewTeamRepository(log), spy, log,
		WithJerseySeed(seed),
		WithClock(func() time.Time { return today }),
	)
	return svc, spy
}

func player(i int, pos domain.Position, skill int) domain.PlayerInput {
	return domain.PlayerInput{
		FirstName:         "Kid",
		LastName:          fmt.Sprintf("K%02d", i),
		DateOfBirth:       time.Date(2018, time.April, 10, 0, 0, 0, 0, time.UTC),
		PreferredPosition: pos,
		SkillLevel:        skill,
	}
}

func addPlayers(t *testing.T, svc *TeamService, team string, n int) {
	t.Helper()
	positions := domain.Positions()
	for i := 0; i < n; i++ {
		_, _, err := svc.AddPlayer(context.Background(), team, player(i, positions[i%len(positions)], i%5+1))
		require.NoError(t, err)
	}
}

func TestTeamService_CreateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newTestService(t, 1)
		view, err := svc.CreateTeam(ctx, "  Tigers ")
		require.NoError(t, err)
		assert.Equal(t, "Tigers", view.Name)
		assert.False(t, view.Created)
	})

	t.Run("Duplicate", func(t *testing.T) {
		svc, _ := newTestService(t, 1)
		_, err := svc.CreateTeam(ctx, "Tigers")
		require.NoError(t, err)

		_, err = svc.CreateTeam(ctx, "Tigers")
		assert.ErrorIs(t, err, domain.ErrTeamExists)
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc, _ := newTestService(t, 1)
		_, err := svc.CreateTeam(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestTeamService_AddPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownTeam", func(t *testing.T) {
		svc, _ := newTestService(t, 1)
		_, _, err := svc.AddPlayer(ctx, "nobody", player(1, domain.PositionGoalie, 3))
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	})

	t.Run("AddedAndRejected", func(t *testing.T) {
		svc, spy := newTestService(t, 1)
		_, err := svc.CreateTeam(ctx, "Tigers")
		require.NoError(t, err)

		added, dropped, err := svc.AddPlayer(ctx, "Tigers", player(1, domain.PositionGoalie, 3))
		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Nil(t, dropped)
		assert.Equal(t, "K01", added.LastName())

		_, _, err = svc.AddPlayer(ctx, "Tigers", player(1, domain.PositionForward, 5))
		assert.ErrorIs(t, err, domain.ErrPlayerExists)

		tooOld := player(2, domain.PositionGoalie, 3)
		tooOld.DateOfBirth = time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC)
		_, _, err = svc.AddPlayer(ctx, "Tigers", tooOld)
		assert.ErrorIs(t, err, domain.ErrInvalidPlayer)

		assert.Equal(t, 1, spy.added)
		assert.Equal(t, []string{"PLAYER_EXISTS", "INVALID_PLAYER"}, spy.rejected)

		view, err := svc.GetTeam(ctx, "Tigers")
		require.NoError(t, err)
		assert.Len(t, view.Players, 1)
	})

	t.Run("FullRosterDropsLowestSkill", func(t *testing.T) {
		svc, spy := newTestService(t, 1)
		_, err := svc.CreateTeam(ctx, "Tigers")
		require.NoError(t, err)

		for i := 0; i < domain.MaxPlayers; i++ {
			_, _, err := svc.AddPlayer(ctx, "Tigers", player(i, domain.PositionDefender, 3))
			require.NoError(t, err)
		}

		// the weakest newcomer is dropped right away
		added, dropped, err := svc.AddPlayer(ctx, "Tigers", player(50, domain.PositionForward, 1))
		require.NoError(t, err)
		assert.Nil(t, added)
		require.NotNil(t, dropped)
		assert.Equal(t, "K50", dropped.LastName())

		// a stronger newcomer pushes out the first lowest skilled player
		added, dropped, err = svc.AddPlayer(ctx, "Tigers", player(51, domain.PositionForward, 5))
		require.NoError(t, err)
		require.NotNil(t, added)
		require.NotNil(t, dropped)
		assert.Equal(t, "K51", added.LastName())
		assert.Equal(t, "K00", dropped.LastName())

		assert.Equal(t, 2, spy.dropped)

		view, err := svc.GetTeam(ctx, "Tigers")
		require.NoError(t, err)
		assert.Len(t, view.Players, domain.MaxPlayers)
	})

	t.Run("MadeTeamIsClosed", func(t *testing.T) {
		svc, spy := newTestService(t, 1)
		_, err := svc.CreateTeam(ctx, "Tigers")
		require.NoError(t, err)
		addPlayers(t, svc, "Tigers", domain.MinPlayers)
		_, err = svc.MakeTeam(ctx, "Tigers")
		require.NoError(t, err)

		_, _, err = svc.AddPlayer(ctx, "Tigers", player(99, domain.PositionGoalie, 5))
		assert.ErrorIs(t, err, domain.ErrTeamAlreadyCreated)
		assert.Contains(t, spy.rejected, "TEAM_CREATED")
	})
}

func TestTeamService_MakeTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("NotEnoughPlayers", func(t *testing.T) {
		svc, spy := newTestService(t, 1)
		_, err := svc.CreateTeam(ctx, "Tigers")
		require.NoError(t, err)
		addPlayers(t, svc, "Tigers", domain.MinPlayers-1)

		_, err = svc.MakeTeam(ctx, "Tigers")
		assert.ErrorIs(t, err, domain.ErrNotEnoughPlayers)
		assert.Equal(t, []string{"failure"}, spy.made)

		view, err := svc.GetTeam(ctx, "Tigers")
		require.NoError(t, err)
		assert.False(t, view.Created)
	})

	t.Run("Idempotent", func(t *testing.T) {
		svc, _ := newTestService(t, 7)
		_, err := svc.CreateTeam(ctx, "Tigers")
		require.NoError(t, err)
		addPlayers(t, svc, "Tigers", 12)

		first, err := svc.MakeTeam(ctx, "Tigers")
		require.NoError(t, err)
		assert.True(t, first.Created)

		seen := map[int]bool{}
		for _, p := range first.Players {
			require.True(t, p.HasJerseyNumber())
			assert.False(t, seen[p.JerseyNumber()], "duplicate jersey %d", p.JerseyNumber())
			seen[p.JerseyNumber()] = true
		}

		second, err := svc.MakeTeam(ctx, "Tigers")
		require.NoError(t, err)
		require.Len(t, second.Players, len(first.Players))
		for i := range first.Players {
			assert.Equal(t, first.Players[i].JerseyNumber(), second.Players[i].JerseyNumber())
		}
	})

	t.Run("SeedIsReproducible", func(t *testing.T) {
		numbers := func() []int {
			svc, _ := newTestService(t, 42)
			_, err := svc.CreateTeam(ctx, "Tigers")
			require.NoError(t, err)
			addPlayers(t, svc, "Tigers", 15)
			view, err := svc.MakeTeam(ctx, "Tigers")
			require.NoError(t, err)
			out := make([]int, len(view.Players))
			for i, p := range view.Players {
				out[i] = p.JerseyNumber()
			}
			return out
		}
		assert.Equal(t, numbers(), numbers())
	})
}

func TestTeamService_LineupAndBench(t *testing.T) {
	ctx := context.Background()
	svc, spy := newTestService(t, 3)
	_, err := svc.CreateTeam(ctx, "Tigers")
	require.NoError(t, err)
	addPlayers(t, svc, "Tigers", 11)

	_, err = svc.GetLineup(ctx, "Tigers")
	assert.ErrorIs(t, err, domain.ErrTeamNotCreated)
	_, err = svc.GetBench(ctx, "Tigers")
	assert.ErrorIs(t, err, domain.ErrTeamNotCreated)

	_, err = svc.MakeTeam(ctx, "Tigers")
	require.NoError(t, err)

	l, err := svc.GetLineup(ctx, "Tigers")
	require.NoError(t, err)
	assert.Equal(t, domain.LineupSize, l.Size())

	bench, err := svc.GetBench(ctx, "Tigers")
	require.NoError(t, err)
	assert.Len(t, bench, 11-domain.LineupSize)
	for _, p := range bench {
		assert.False(t, l.Contains(p))
	}

	assert.Equal(t, []int{domain.LineupSize, domain.LineupSize}, spy.placed)

	_, err = svc.GetLineup(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestTeamService_ViewsAreSnapshots(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, 9)
	_, err := svc.CreateTeam(ctx, "Tigers")
	require.NoError(t, err)
	addPlayers(t, svc, "Tigers", 12)

	before, err := svc.GetTeam(ctx, "Tigers")
	require.NoError(t, err)

	// readers render views outside the team lock while the team is being made
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		_, err := svc.MakeTeam(ctx, "Tigers")
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = render.Team(before.Players)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			view, err := svc.GetTeam(ctx, "Tigers")
			if assert.NoError(t, err) {
				_ = render.Team(view.Players)
			}
			if l, err := svc.GetLineup(ctx, "Tigers"); err == nil {
				_ = render.Lineup(l)
			}
		}
	}()
	wg.Wait()

	for _, p := range before.Players {
		assert.False(t, p.HasJerseyNumber(), "view taken before make keeps its values")
	}

	after, err := svc.GetTeam(ctx, "Tigers")
	require.NoError(t, err)
	assert.True(t, after.Created)
	for _, p := range after.Players {
		assert.True(t, p.HasJerseyNumber())
	}
}
