// Package vxerrors contains error types that carry a message meant for the
// person at the console in addition to the usual technical message.
package vxerrors

import (
	"errors"
	"fmt"
)

// GameMessager is implemented by errors that have a distinct message to show
// to the user.
type GameMessager interface {
	GameMessage() string
}

// InterpreterError is an error caused by attempting to interpret input. Either
// the input could not be understood or it specifies doing something that is
// impossible or not allowed at the current time.
//
// InterpreterError includes a human-readable message to show to an operator as
// well as a typical more technical "error message" style message.
type interpreterError struct {
	msg   string
	human string
	wrap  error
}

func (e *interpreterError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed to the user to
// describe the error.
func (e *interpreterError) GameMessage() string {
	return e.human
}

// Unwrap gives the error that the InterpreterError wraps, if it wraps one.
func (e *interpreterError) Unwrap() error {
	return e.wrap
}

// Interpreter returns a new InterpreterError that has both the message to show
// the user and the technical description of the error.
func Interpreter(game, technical string) error {
	return WrapInterpreter(nil, game, technical)
}

// Interpreterf returns a new InterpreterError that has a message to show to
// the user and an automatically generated Error() description. The arguments
// given are the format string and the arguments to the format string.
func Interpreterf(gameFormat string, a ...interface{}) error {
	return Interpreter(fmt.Sprintf(gameFormat, a...), "")
}

// WrapInterpreter returns a new InterpreterError that has both the message to
// show the user and the technical description of the error, and that wraps
// the given error.
func WrapInterpreter(e error, game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got InterpreterError(%q)", game)
	}
	return &interpreterError{
		msg:   technical,
		human: game,
		wrap:  e,
	}
}

// WrapInterpreterf returns a new InterpreterError that has both the message to
// show the user and an automatically generated Error() description, and that
// wraps the given error.
func WrapInterpreterf(e error, gameFormat string, a ...interface{}) error {
	return WrapInterpreter(e, fmt.Sprintf(gameFormat, a...), "")
}

// GameMessage gets the message to display to the console for the given error.
// If err or any error it wraps has a GameMessage method, the first such
// message is returned. Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	var gm GameMessager
	if errors.As(err, &gm) {
		return gm.GameMessage()
	}
	return err.Error()
}
