package rosterfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"soccer_team/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
team_name: " Tigers "
players:
  - first_name: Adam
    last_name: Doe
    date_of_birth: 2018-01-01
    preferred_position: goalie
    skill_level: 5
  - first_name: Beth
    last_name: Roe
    date_of_birth: "2017-06-15"
    preferred_position: FORWARD
    skill_level: 2
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "Tigers", f.TeamName)
	require.Len(t, f.Players, 2)

	in, err := f.Players[0].Input()
	require.NoError(t, err)
	assert.Equal(t, domain.PlayerInput{
		FirstName:         "Adam",
		LastName:          "Doe",
		DateOfBirth:       time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
		PreferredPosition: domain.PositionGoalie,
		SkillLevel:        5,
	}, in)

	in, err = f.Players[1].Input()
	require.NoError(t, err)
	assert.Equal(t, domain.PositionForward, in.PreferredPosition)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("  \n"))
	assert.Error(t, err)

	_, err = Parse([]byte("players: [oops"))
	assert.Error(t, err)
}

func TestPlayerEntry_Input(t *testing.T) {
	valid := PlayerEntry{
		FirstName:         "Adam",
		LastName:          "Doe",
		DateOfBirth:       "2018-01-01",
		PreferredPosition: "DEFENDER",
		SkillLevel:        3,
	}

	tests := []struct {
		name    string
		mutate  func(e *PlayerEntry)
		wantErr error
	}{
		{name: "missing last name", mutate: func(e *PlayerEntry) { e.LastName = " " }, wantErr: domain.ErrInvalidInput},
		{name: "bad date", mutate: func(e *PlayerEntry) { e.DateOfBirth = "01.01.2018" }, wantErr: domain.ErrInvalidInput},
		{name: "bad position", mutate: func(e *PlayerEntry) { e.PreferredPosition = "keeper" }, wantErr: domain.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			_, err := e.Input()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// range checks belong to the roster
	e := valid
	e.SkillLevel = 9
	_, err := e.Input()
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Players, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
