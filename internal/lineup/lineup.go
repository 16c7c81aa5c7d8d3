// Package lineup picks the starting lineup of a team and computes its bench.
package lineup

import (
	"cmp"
	"slices"

	"soccer_team/internal/domain"
)

// Lineup maps each position to the players starting there
type Lineup struct {
	groups map[domain.Position][]*domain.Player
}

// Build fills positions from the given players.
//
// The algorithm:
//  1. Rank players by skill level descending, ties by last name, first name, birth date
//  2. Put each player on their preferred position while it has free slots, otherwise on a wait list
//  3. Walk the wait list in rank order and put each player on the first position (GOALIE,
//     DEFENDER, MIDFIELDER, FORWARD) that still has a free slot, until every slot is taken
//
// Each group is returned in last name, first name, birth date order.
func Build(players []*domain.Player) *Lineup {
	l := &Lineup{groups: make(map[domain.Position][]*domain.Player, len(domain.Positions()))}
	for _, pos := range domain.Positions() {
		l.groups[pos] = make([]*domain.Player, 0, pos.Slots())
	}

	ranked := slices.Clone(players)
	slices.SortStableFunc(ranked, func(a, b *domain.Player) int {
		if c := cmp.Compare(b.SkillLevel(), a.SkillLevel()); c != 0 {
			return c
		}
		return domain.ComparePlayers(a, b)
	})

	waitList := make([]*domain.Player, 0, len(ranked))
	for _, p := range ranked {
		pos := p.PreferredPosition()
		if l.hasRoom(pos) {
			l.groups[pos] = append(l.groups[pos], p)
			continue
		}
		waitList = append(waitList, p)
	}

	for _, p := range waitList {
		if l.Size() == domain.LineupSize {
			break
		}
		for _, pos := range domain.Positions() {
			if l.hasRoom(pos) {
				l.groups[pos] = append(l.groups[pos], p)
				break
			}
		}
	}

	for pos := range l.groups {
		slices.SortFunc(l.groups[pos], domain.ComparePlayers)
	}
	return l
}

func (l *Lineup) hasRoom(pos domain.Position) bool {
	return len(l.groups[pos]) < pos.Slots()
}

// Group returns the players starting at pos
func (l *Lineup) Group(pos domain.Position) []*domain.Player {
	return slices.Clone(l.groups[pos])
}

// Size is the number of players placed on any position
func (l *Lineup) Size() int {
	n := 0
	for _, g := range l.groups {
		n += len(g)
	}
	return n
}

// Contains reports whether the candidate p starts at any position
func (l *Lineup) Contains(p *domain.Player) bool {
	for _, g := range l.groups {
		for _, member := range g {
			if member.SameAs(p) {
				return true
			}
		}
	}
	return false
}

// Bench returns the players not in the lineup, in last name, first name, birth date order
func Bench(players []*domain.Player, l *Lineup) []*domain.Player {
	bench := make([]*domain.Player, 0, len(players))
	for _, p := range players {
		if !l.Contains(p) {
			bench = append(bench, p)
		}
	}
	slices.SortFunc(bench, domain.ComparePlayers)
	return bench
}
