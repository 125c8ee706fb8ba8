package command

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/voxcmd/internal/vxerrors"
)

var commandHelp = [][2]string{
	{"fly true|false", "turn flying on or off"},
	{"placing BLOCK", "choose the block you place, where BLOCK is one of " + strings.Join(blockKeywords, ", ")},
}

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single line of user input. It will block until one
	// is ready. If there is an error or input is at end (EOF), the returned
	// string will be empty, otherwise it will always be non-empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was encountered
	// on a call but some input was received, the input will be returned and
	// error will be nil, and the next call to ReadCommand will return "",
	// io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created by
	// the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}

// HelpText returns a table of the available commands wrapped to the given
// width.
func HelpText(width int) string {
	return rosed.Edit("").
		WithOptions(rosed.Options{ParagraphSeparator: "\n"}).
		InsertDefinitionsTable(0, commandHelp, width).
		String()
}

// Get obtains a single command from input by reading from the provided Reader.
// It reads a line of input and attempts to parse it as a valid command,
// returning that command if it is successful. If it is not, the error is
// printed to the ostream along with the command help and input is read until a
// valid command is encountered.
//
// Errors from reading or writing are returned as-is; io.EOF from cmdStream is
// returned wrapped.
func Get(cmdStream Reader, ostream *bufio.Writer, width int) (Command, error) {
	for {
		input, err := cmdStream.ReadCommand()
		if err != nil {
			return nil, fmt.Errorf("could not get input: %w", err)
		}

		cmd, err := Parse(input)
		if err == nil {
			return cmd, nil
		}

		errMsg := vxerrors.GameMessage(err) + "\n" + HelpText(width) + "\n"
		if _, err := ostream.WriteString(errMsg); err != nil {
			return nil, fmt.Errorf("could not write output: %w", err)
		}
		if err := ostream.Flush(); err != nil {
			return nil, fmt.Errorf("could not flush output: %w", err)
		}
	}
}
