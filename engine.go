// Package voxcmd contains a CLI-driven engine for reading commands and applying
// them to the player continuously until input ends.
package voxcmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/voxcmd/internal/command"
	"github.com/dekarrin/voxcmd/internal/config"
	"github.com/dekarrin/voxcmd/internal/input"
	"github.com/dekarrin/voxcmd/internal/vxerrors"
	"github.com/dekarrin/voxcmd/internal/world"
)

// Engine contains the things needed to run a command console from an
// interactive shell attached to an input stream and an output stream.
type Engine struct {
	player      *world.Player
	cfg         config.Config
	in          command.Reader
	out         *bufio.Writer
	forceDirect bool
	running     bool
}

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream and a
// buffered writer on the output stream.
//
// If nil is given for the input stream, a bufio.Reader is opened on stdin. If
// nil is given for the output stream, a bufio.Writer is opened on stdout.
//
// If cfg names a state file that exists, the player starts from the state in
// it; otherwise the player starts from the state given in cfg.
func New(inputStream io.Reader, outputStream io.Writer, cfg config.Config, forceDirectInput bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := cfg.StartState()
	if cfg.State != "" {
		saved, err := world.LoadFile(cfg.State)
		if err == nil {
			start = saved
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load player state: %w", err)
		}
	}

	eng := &Engine{
		player:      world.NewPlayer(start),
		cfg:         cfg,
		out:         bufio.NewWriter(outputStream),
		forceDirect: forceDirectInput,
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		var err error
		eng.in, err = input.NewInteractiveReader(cfg.Prompt, cfg.History)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Player returns the player that commands are applied to.
func (eng *Engine) Player() *world.Player {
	return eng.player
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}

	err := eng.in.Close()
	if err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// RunUntilQuit begins reading commands from the streams and applying them to
// the player until the end of input is reached. If a state file is
// configured, the player state is saved to it before returning.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "Welcome to the voxcmd console\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "=============================\n"
	introMsg += "\n"
	introMsg += command.HelpText(eng.cfg.Width) + "\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		eng.running = false
	}()

	for eng.running {
		cmd, err := command.Get(eng.in, eng.out, eng.cfg.Width)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}

		feedback, err := eng.player.Apply(cmd)
		if err != nil {
			feedback = vxerrors.GameMessage(err)
		}
		feedback = rosed.Edit(feedback).Wrap(eng.cfg.Width).String()
		if err := eng.write(feedback + "\n"); err != nil {
			return err
		}
	}

	if eng.cfg.State != "" {
		if err := world.SaveFile(eng.cfg.State, eng.player.State()); err != nil {
			return fmt.Errorf("save player state: %w", err)
		}
	}

	return eng.write("Goodbye\n")
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
