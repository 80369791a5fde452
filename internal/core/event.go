package core

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventNone EventType = iota
	EventPlayerDied
	EventGameOver
	EventRespawn
	EventRestart
	EventLanded
	EventLevelChanged
	EventSpeedChanged
	EventPlatformRecycled
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventPlayerDied:
		return "player_died"
	case EventGameOver:
		return "game_over"
	case EventRespawn:
		return "respawn"
	case EventRestart:
		return "restart"
	case EventLanded:
		return "landed"
	case EventLevelChanged:
		return "level_changed"
	case EventSpeedChanged:
		return "speed_changed"
	case EventPlatformRecycled:
		return "platform_recycled"
	default:
		return "none"
	}
}

// Event is emitted by a game step. Value carries the event-specific
// number: lives left, new level, speed period in ms, recycled slot.
type Event struct {
	Type  EventType
	Value int
}
