package world

import (
	"fmt"
	"os"

	"github.com/dekarrin/rezi"
	"github.com/dekarrin/voxcmd/internal/command"
)

// stateFormatVersion is written at the start of every encoded State.
const stateFormatVersion = 1

// MarshalBinary encodes the State. The block kind is stored by keyword so that
// saved states survive reordering of the BlockKind constants.
func (s State) MarshalBinary() ([]byte, error) {
	if !s.Placing.Valid() {
		return nil, fmt.Errorf("placing: not a valid block kind: %d", int(s.Placing))
	}

	var data []byte

	data = append(data, rezi.EncInt(stateFormatVersion)...)
	data = append(data, rezi.EncBool(s.Fly)...)
	data = append(data, rezi.EncString(s.Placing.String())...)

	return data, nil
}

// UnmarshalBinary decodes a State previously encoded with MarshalBinary.
func (s *State) UnmarshalBinary(data []byte) error {
	var err error
	var bytesRead int

	var version int
	version, bytesRead, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("format version: %w", err)
	}
	if version != stateFormatVersion {
		return fmt.Errorf("unsupported state format version %d", version)
	}
	data = data[bytesRead:]

	s.Fly, bytesRead, err = rezi.DecBool(data)
	if err != nil {
		return fmt.Errorf("fly: %w", err)
	}
	data = data[bytesRead:]

	var placing string
	placing, _, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("placing: %w", err)
	}

	kind, ok := command.ParseBlockKind(placing)
	if !ok {
		return fmt.Errorf("placing: not a valid block kind: %q", placing)
	}
	s.Placing = kind

	return nil
}

// SaveFile writes the state to the file at path, replacing it if it exists. A
// state that could not be loaded back is not written.
func SaveFile(path string, s State) error {
	// rezi.EncBinary discards MarshalBinary errors
	if _, err := s.MarshalBinary(); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	data := rezi.EncBinary(s)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// LoadFile reads a state previously written with SaveFile.
func LoadFile(path string) (State, error) {
	var s State

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read state file: %w", err)
	}

	if _, err := rezi.DecBinary(data, &s); err != nil {
		return s, fmt.Errorf("decode state file: %w", err)
	}

	return s, nil
}
