package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"soccer_team/internal/domain"
	"soccer_team/internal/lineup"
	"soccer_team/internal/render"
	"soccer_team/internal/repository"
	"soccer_team/internal/rosterfile"
	"soccer_team/internal/service"
	"soccer_team/pkg/logger"
)

const defaultTeamName = "team"

type showOptions struct {
	file     string
	seed     int64
	color    bool
	logLevel string
}

func newShowCmd() *cobra.Command {
	opts := showOptions{}
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Make the team from a roster file and print team, lineup and bench",
		Example: "squadctl show --file roster.yaml --seed 42",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to the YAML roster")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed for jersey numbers (0 = random)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "style section headings")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log to stderr at this level (debug|info|warn|error)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runShow(ctx context.Context, opts showOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	file, err := rosterfile.Load(opts.file)
	if err != nil {
		return err
	}
	teamName := file.TeamName
	if teamName == "" {
		teamName = defaultTeamName
	}

	log := logger.Discard()
	if opts.logLevel != "" {
		log = logger.New(opts.logLevel, "text", os.Stderr)
	}

	teamRepo := repository.NewTeamRepository(log)
	teamService := service.NewTeamService(teamRepo, nil, log, service.WithJerseySeed(opts.seed))

	if _, err := teamService.CreateTeam(ctx, teamName); err != nil {
		return err
	}

	// Как и в форме регистрации: плохие записи отклоняются, остальные добавляются
	for i, entry := range file.Players {
		in, err := entry.Input()
		if err == nil {
			_, _, err = teamService.AddPlayer(ctx, teamName, in)
		}
		if err != nil {
			fmt.Fprintf(errOut, "player %d (%s %s) skipped: %v\n", i+1, entry.FirstName, entry.LastName, err)
		}
	}

	team, err := teamService.MakeTeam(ctx, teamName)
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughPlayers) {
			return fmt.Errorf("cannot make team %q: %w", teamName, err)
		}
		return err
	}
	l, err := teamService.GetLineup(ctx, teamName)
	if err != nil {
		return err
	}
	bench := lineup.Bench(team.Players, l)

	if opts.color {
		fmt.Fprint(out, render.StyledPlayers("TEAM:", team.Players))
		fmt.Fprintln(out)
		fmt.Fprint(out, render.StyledLineup(l))
		fmt.Fprint(out, render.StyledPlayers("BENCH:", bench))
		return nil
	}

	fmt.Fprint(out, render.Team(team.Players))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Lineup(l))
	fmt.Fprintln(out, "BENCH:")
	fmt.Fprint(out, render.Bench(bench))
	return nil
}
