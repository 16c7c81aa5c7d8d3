// Package metrics records roster activity.
package metrics

// Recorder receives roster and lineup events from the service layer
type Recorder interface {
	// PlayerAdded counts a successful add
	PlayerAdded()
	// PlayerRejected counts a failed add by error code (INVALID_PLAYER, PLAYER_EXISTS, ...)
	PlayerRejected(code string)
	// PlayerDropped counts players removed because the roster was full
	PlayerDropped()
	// TeamMade counts MakeTeam outcomes (success|failure)
	TeamMade(result string)
	// LineupBuilt observes how many players were placed in a lineup
	LineupBuilt(placed int)
}

// NopRecorder discards all events
type NopRecorder struct{}

var _ Recorder = (*NopRecorder)(nil)

func NewNop() *NopRecorder {
	return &NopRecorder{}
}

func (n *NopRecorder) PlayerAdded() {}

func (n *NopRecorder) PlayerRejected(_ string) {}

func (n *NopRecorder) PlayerDropped() {}

func (n *NopRecorder) TeamMade(_ string) {}

func (n *NopRecorder) LineupBuilt(_ int) {}
