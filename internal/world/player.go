// Package world holds the player state that parsed commands act on.
package world

import (
	"fmt"
	"sync"

	"github.com/dekarrin/voxcmd/internal/command"
	"github.com/dekarrin/voxcmd/internal/vxerrors"
)

// State is a snapshot of the player settings that commands can change.
type State struct {
	// Fly is whether the player is in flight mode.
	Fly bool

	// Placing is the kind of block placed by the player.
	Placing command.BlockKind
}

// DefaultState returns the state a new player starts with: flying, and
// placing stone.
func DefaultState() State {
	return State{
		Fly:     true,
		Placing: command.Stone,
	}
}

// Player is the player whose settings are updated by commands. It is safe for
// concurrent use; commands may be applied from one goroutine while another
// reads the state.
//
// Player should not be used directly; create one with [NewPlayer].
type Player struct {
	mu    sync.RWMutex
	state State
}

// NewPlayer creates a Player with the given starting state.
func NewPlayer(start State) *Player {
	return &Player{state: start}
}

// State returns a copy of the current player state.
func (p *Player) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Apply executes cmd against the player and returns a line of feedback
// describing the change. A nil Command or one not defined by package command
// gives an interpreter error and leaves the state unchanged.
func (p *Player) Apply(cmd command.Command) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch c := cmd.(type) {
	case command.Fly:
		p.state.Fly = c.On
		if c.On {
			return "You are now flying.", nil
		}
		return "You are no longer flying.", nil
	case command.BlockPlacing:
		if _, err := c.Block.MarshalText(); err != nil {
			return "", vxerrors.WrapInterpreterf(err, "%s is not something you can place", c.Block)
		}
		p.state.Placing = c.Block
		return fmt.Sprintf("You are now placing %s.", c.Block), nil
	case nil:
		return "", vxerrors.Interpreter("There is nothing to do.", "nil command")
	default:
		return "", vxerrors.Interpreter("I don't know how to do that.", fmt.Sprintf("unknown command type %T", cmd))
	}
}
