// Package rosterfile reads team rosters from YAML files.
//
//	team_name: Tigers
//	players:
//	  - first_name: Adam
//	    last_name: Doe
//	    date_of_birth: 2016-01-01
//	    preferred_position: GOALIE
//	    skill_level: 5
package rosterfile

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"soccer_team/internal/domain"
)

// File is the on-disk layout of a roster
type File struct {
	TeamName string        `yaml:"team_name"`
	Players  []PlayerEntry `yaml:"players"`
}

// PlayerEntry keeps raw values as written; Input parses them
type PlayerEntry struct {
	FirstName         string `yaml:"first_name"`
	LastName          string `yaml:"last_name"`
	DateOfBirth       string `yaml:"date_of_birth"`
	PreferredPosition string `yaml:"preferred_position"`
	SkillLevel        int    `yaml:"skill_level"`
}

// Input parses date and position. Range checks (age, skill) are left to the roster.
func (e PlayerEntry) Input() (domain.PlayerInput, error) {
	if strings.TrimSpace(e.FirstName) == "" || strings.TrimSpace(e.LastName) == "" {
		return domain.PlayerInput{}, fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	dob, err := time.Parse(domain.DateLayout, strings.TrimSpace(e.DateOfBirth))
	if err != nil {
		return domain.PlayerInput{}, fmt.Errorf("%w: invalid date %q, use yyyy-mm-dd", domain.ErrInvalidInput, e.DateOfBirth)
	}
	position, err := domain.ParsePosition(e.PreferredPosition)
	if err != nil {
		return domain.PlayerInput{}, fmt.Errorf("%w: %q", err, e.PreferredPosition)
	}
	return domain.PlayerInput{
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		DateOfBirth:       dob,
		PreferredPosition: position,
		SkillLevel:        e.SkillLevel,
	}, nil
}

// Parse decodes a YAML roster payload
func Parse(data []byte) (*File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("rosterfile: payload is empty")
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("rosterfile: decode: %w", err)
	}
	f.TeamName = strings.TrimSpace(f.TeamName)
	return &f, nil
}

// Load reads and parses the roster at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rosterfile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rosterfile: %s: %w", path, err)
	}
	return f, nil
}
