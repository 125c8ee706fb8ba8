// Package command defines the command data types and handles parsing of
// commands from input sources.
package command

import (
	"fmt"
)

// Command is a valid command received from an input source. The set of
// commands is closed; the only implementations are Fly and BlockPlacing, and
// a Command is only ever produced by a successful Parse.
//
// Consumers should type-switch on the concrete types and treat any other
// value (including nil) as an error.
type Command interface {
	fmt.Stringer

	// isCommand seals the interface so no types outside of this package can
	// be used as a Command.
	isCommand()
}

// Fly toggles flight mode. It is produced by "fly true" and "fly false".
type Fly struct {
	On bool
}

// BlockPlacing selects the kind of block that the player places. It is
// produced by "placing" followed by a block keyword.
type BlockPlacing struct {
	Block BlockKind
}

func (Fly) isCommand()          {}
func (BlockPlacing) isCommand() {}

// String gives the canonical input that parses to the Fly command.
func (f Fly) String() string {
	return fmt.Sprintf("%s %t", kwFly, f.On)
}

// String gives the canonical input that parses to the BlockPlacing command.
func (bp BlockPlacing) String() string {
	return kwPlacing + " " + bp.Block.String()
}

// BlockKind is a material that can be placed in the world.
type BlockKind int

const (
	Stone BlockKind = iota
	Dirt
	Grass
	Sand
	Brick
	Glass
)

// blockKeywords is indexed by BlockKind and is in the order the grammar
// lists them.
var blockKeywords = []string{
	Stone: "stone",
	Dirt:  "dirt",
	Grass: "grass",
	Sand:  "sand",
	Brick: "brick",
	Glass: "glass",
}

// BlockKinds returns every BlockKind in grammar order.
func BlockKinds() []BlockKind {
	kinds := make([]BlockKind, len(blockKeywords))
	for i := range blockKeywords {
		kinds[i] = BlockKind(i)
	}
	return kinds
}

// Valid returns whether bk is one of the defined block kinds.
func (bk BlockKind) Valid() bool {
	return bk >= 0 && int(bk) < len(blockKeywords)
}

// String returns the keyword used for the BlockKind in command input.
func (bk BlockKind) String() string {
	if !bk.Valid() {
		return fmt.Sprintf("BlockKind(%d)", int(bk))
	}
	return blockKeywords[bk]
}

// MarshalText converts the BlockKind to its keyword.
func (bk BlockKind) MarshalText() ([]byte, error) {
	if !bk.Valid() {
		return nil, fmt.Errorf("not a valid block kind: %d", int(bk))
	}
	return []byte(blockKeywords[bk]), nil
}

// UnmarshalText sets the BlockKind from its keyword. Matching is exact; the
// keyword must be lowercase.
func (bk *BlockKind) UnmarshalText(text []byte) error {
	kind, ok := ParseBlockKind(string(text))
	if !ok {
		return fmt.Errorf("not a valid block kind: %q", string(text))
	}
	*bk = kind
	return nil
}

// ParseBlockKind returns the BlockKind whose keyword is exactly s.
func ParseBlockKind(s string) (BlockKind, bool) {
	for i := range blockKeywords {
		if blockKeywords[i] == s {
			return BlockKind(i), true
		}
	}
	return 0, false
}
