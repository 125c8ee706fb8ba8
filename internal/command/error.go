package command

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EndOfInput stands in for a token when the position in question is the end
// of the input. It contains spaces, so it can never collide with a real
// lexeme.
const EndOfInput = "end of input"

// SyntaxError is the error returned by Parse when the input is not a valid
// command. It anchors the failure to a single position and reports exactly
// which tokens would have been accepted there.
type SyntaxError struct {
	// Input is the full line that was being parsed.
	Input string

	// Offset is the byte offset into Input of the offending token. If input
	// ended before a required token, it is len(Input).
	Offset int

	// Index is the 0-based index of the offending token.
	Index int

	// Expected is the set of tokens that were grammatically valid at the
	// error position, in grammar order. When the input should have ended, it
	// is a single EndOfInput.
	Expected []string

	// Found is the token that was found at the error position, or EndOfInput
	// if input ended first.
	Found string
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d (token %d): expected %s; found %s", se.Offset, se.Index, oneOf(se.Expected), quoteToken(se.Found))
}

// GameMessage gives a description of the error suitable for showing to the
// user. It consists of the input with a cursor under the problem position
// followed by a sentence describing what went wrong.
func (se *SyntaxError) GameMessage() string {
	var msg string
	switch {
	case se.Found == EndOfInput && se.Index == 0:
		msg = fmt.Sprintf("Please enter a command; it must start with %s.", oneOf(se.Expected))
	case se.Found == EndOfInput:
		msg = fmt.Sprintf("The command isn't finished; it needs %s next.", oneOf(se.Expected))
	case len(se.Expected) == 1 && se.Expected[0] == EndOfInput:
		msg = fmt.Sprintf("The command is already complete, so I don't know what to do with %s.", quoteToken(se.Found))
	default:
		msg = fmt.Sprintf("I don't know what you mean by %s here; I expected %s.", quoteToken(se.Found), oneOf(se.Expected))
	}

	cursor := se.SourceLineWithCursor()
	if cursor == "" {
		return msg
	}
	return cursor + "\n" + msg
}

// SourceLineWithCursor returns the input on one line and directly under it a
// cursor showing where the error occured. Returns a blank string if the input
// has no non-space characters.
func (se *SyntaxError) SourceLineWithCursor() string {
	if strings.TrimSpace(se.Input) == "" {
		return ""
	}

	offset := se.Offset
	if offset > len(se.Input) {
		offset = len(se.Input)
	}
	col := utf8.RuneCountInString(se.Input[:offset])

	return se.Input + "\n" + strings.Repeat(" ", col) + "^"
}

// oneOf renders a set of expected tokens as an English alternative list.
func oneOf(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i := range tokens {
		quoted[i] = quoteToken(tokens[i])
	}

	switch len(quoted) {
	case 0:
		return "nothing"
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	default:
		return "one of " + strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}

func quoteToken(tok string) string {
	if tok == EndOfInput {
		return tok
	}
	return fmt.Sprintf("%q", tok)
}
