// Package input contains readers that get lines of command input from a
// terminal or any other input stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectCommandReader implements command.Reader over any io.Reader. It does
// not sanitize the input of control and escape sequences, so it is meant for
// piped input and tests.
//
// DirectCommandReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectCommandReader struct {
	r *bufio.Reader
}

// InteractiveCommandReader implements command.Reader on the terminal using a
// go implementation of the GNU Readline library. Editing escape sequences are
// handled by readline, and entered commands are kept in history and can be tab
// completed.
//
// InteractiveCommandReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveCommandReader struct {
	rl *readline.Instance
}

// NewDirectReader creates a DirectCommandReader with a buffered reader on r.
func NewDirectReader(r io.Reader) *DirectCommandReader {
	return &DirectCommandReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates an InteractiveCommandReader showing the given
// prompt. If historyFile is not empty, entered commands are saved to it and
// loaded from it on start. The returned InteractiveCommandReader must have
// Close() called on it before disposal to properly teardown readline
// resources.
func NewInteractiveReader(prompt string, historyFile string) (*InteractiveCommandReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		AutoComplete:      completer,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveCommandReader{rl: rl}, nil
}

// Close does nothing; DirectCommandReader holds no resources of its own and
// does not close the underlying io.Reader.
func (dcr *DirectCommandReader) Close() error {
	return nil
}

// Close tears down readline and restores the terminal.
func (icr *InteractiveCommandReader) Close() error {
	return icr.rl.Close()
}

// ReadCommand returns the next line of input that has non-space characters,
// with surrounding whitespace removed. Blank lines are skipped.
//
// At end of input the returned string is empty and error is io.EOF. A final
// line with no trailing newline is still returned before io.EOF is.
func (dcr *DirectCommandReader) ReadCommand() (string, error) {
	return nextNonBlank(func() (string, error) {
		return dcr.r.ReadString('\n')
	})
}

// ReadCommand prompts for and returns the next line typed that has non-space
// characters, with surrounding whitespace removed. Blank lines are skipped.
//
// When the user ends input (Ctrl-D) the returned string is empty and error is
// io.EOF. Ctrl-C gives readline.ErrInterrupt.
func (icr *InteractiveCommandReader) ReadCommand() (string, error) {
	return nextNonBlank(icr.rl.Readline)
}

// nextNonBlank calls next until it gives a line that is not blank. A line
// returned along with io.EOF is kept; the io.EOF then comes from the next
// call.
func nextNonBlank(next func() (string, error)) (string, error) {
	for {
		line, err := next()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}
