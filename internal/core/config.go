package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives remaining
	GameOver bool // Whether the session has ended (won or lost)
	Won      bool // Whether the session ended by reaching the goal
	Paused   bool // Whether the game is paused
}

// EventType identifies an in-game occurrence reported by a tick.
type EventType int

const (
	EventStomp    EventType = iota // An enemy was stomped
	EventDeath                     // The player lost a life
	EventRespawn                   // The level was rebuilt for the next life
	EventGoal                      // The end goal was touched
	EventWon                       // The win sequence finished
	EventGameOver                  // No lives remain
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventStomp:
		return "stomp"
	case EventDeath:
		return "death"
	case EventRespawn:
		return "respawn"
	case EventGoal:
		return "goal"
	case EventWon:
		return "won"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single in-game occurrence with an optional detail value
// (lives left, kill count, goal score).
type Event struct {
	Type  EventType
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred this tick.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// RunSummary is session detail beyond GameState that a game may report
// for the run log.
type RunSummary struct {
	Kills     int // Enemies defeated
	GoalScore int // Points earned at the goal
	Ticks     int // Simulation ticks played
}
