package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseError describes an event specification argument that could not be
// turned into a Spec.
type ParseError struct {
	// Spec is the offending input as given on the command line.
	Spec string
	// Msg is the human-readable description.
	Msg string
	// Err is the underlying cause, if any (e.g. a strconv error).
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseKey parses a "KEY:INTERVAL" argument (e.g. "q:4000") into a keyboard
// Spec. The interval is a number of milliseconds.
func ParseKey(arg string) (Spec, error) {
	key, intervalStr, ok := strings.Cut(arg, ":")
	if !ok {
		return Spec{}, &ParseError{Spec: arg, Msg: fmt.Sprintf("keyboard event specification %q is not valid", arg)}
	}
	interval, err := parseInterval(intervalStr)
	if err != nil {
		return Spec{}, err
	}
	return NewKey(key, interval)
}

// ParseMouse parses a "BUTTON:INTERVAL" argument (e.g. "1:9000") into a
// pointer Spec. The button must fit in 8 bits and the interval is a number
// of milliseconds.
func ParseMouse(arg string) (Spec, error) {
	buttonStr, intervalStr, ok := strings.Cut(arg, ":")
	if !ok {
		return Spec{}, &ParseError{Spec: arg, Msg: fmt.Sprintf("mouse event specification %q is not valid", arg)}
	}
	button, err := strconv.ParseUint(buttonStr, 10, 8)
	if err != nil {
		return Spec{}, &ParseError{Spec: arg, Msg: fmt.Sprintf("mouse button %q is not valid", buttonStr), Err: err}
	}
	interval, err := parseInterval(intervalStr)
	if err != nil {
		return Spec{}, err
	}
	return NewButton(uint8(button), interval)
}

func parseInterval(s string) (time.Duration, error) {
	ms, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Spec: s, Msg: fmt.Sprintf("input event interval %q is not valid", s), Err: err}
	}
	interval, err := IntervalFromMs(ms)
	if err != nil {
		return 0, &ParseError{Spec: s, Msg: fmt.Sprintf("input event interval %q is not valid", s), Err: err}
	}
	return interval, nil
}
