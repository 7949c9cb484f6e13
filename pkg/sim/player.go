package sim

import (
	"fmt"
	"math"
)

// GameState is the coarse phase of a session.
type GameState int

const (
	StateStart GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "START"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// Input is the keyboard snapshot read once per tick.
type Input struct {
	Up, Down, Left, Right bool
}

// PlayerState is owned by the simulation. Everything else reads it.
type PlayerState struct {
	X         float64 // lateral offset, ±1 is the road edge
	Position  float64 // world z of the player, in [0, track length)
	Speed     float64
	Health    int
	Score     int
	Trash     int
	State     GameState
	SkyOffset float64 // accumulated curve drift for the parallax background
}

// NewPlayerState returns a player parked on the start line.
func NewPlayerState() PlayerState {
	return PlayerState{Health: StartHealth, State: StateStart}
}

// Readout is what the UI shows each tick.
type Readout struct {
	Speed  int
	Health int
	Score  int
	Trash  int
}

// Readout converts the player state into display values.
func (p PlayerState) Readout() Readout {
	return Readout{
		Speed:  int(math.Round(p.Speed / SpeedScorePer)),
		Health: max(0, p.Health),
		Score:  p.Score,
		Trash:  p.Trash,
	}
}

// Summary is the game-over line shown to the player.
func (p PlayerState) Summary() string {
	return fmt.Sprintf("You smashed %d trash bags and scored %d points!", p.Trash, p.Score)
}
