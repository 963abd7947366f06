// Package event defines the descriptors for the periodic synthetic input
// actions fidget performs, and the parsing of their command-line form.
package event

import (
	"fmt"
	"math"
	"time"
	"unicode"
)

// Kind discriminates the two target variants.
type Kind int

const (
	// KindKey is a keyboard key identified by its logical name.
	KindKey Kind = iota
	// KindButton is a pointer button identified by its number.
	KindButton
)

// Target names one logical key or pointer button. Exactly one of Key and
// Button is meaningful, selected by Kind.
type Target struct {
	Kind   Kind
	Key    string
	Button uint8
}

// KeyTarget returns a keyboard target for the named key.
func KeyTarget(name string) Target {
	return Target{Kind: KindKey, Key: name}
}

// ButtonTarget returns a pointer target for the numbered button.
func ButtonTarget(button uint8) Target {
	return Target{Kind: KindButton, Button: button}
}

func (t Target) String() string {
	if t.Kind == KindButton {
		return fmt.Sprintf("button %5d", t.Button)
	}
	return fmt.Sprintf("key %8s", t.Key)
}

// MaxIntervalMs is the largest millisecond count that converts to a
// time.Duration without overflowing.
const MaxIntervalMs = uint64(math.MaxInt64 / int64(time.Millisecond))

// IntervalFromMs converts a millisecond count to a Duration, rejecting
// counts the Duration type cannot represent. Overflow would otherwise wrap
// into a wrong but positive interval and pass the later validation.
func IntervalFromMs(ms uint64) (time.Duration, error) {
	if ms > MaxIntervalMs {
		return 0, &ParseError{Msg: fmt.Sprintf("interval of %d msecs is too large", ms)}
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// Spec describes one periodic action: which target to inject and how often.
// A Spec is immutable once created.
type Spec struct {
	Target   Target
	Interval time.Duration
}

func (s Spec) String() string {
	return fmt.Sprintf("%s every %v", s.Target, s.Interval)
}

// NewKey validates and builds a keyboard Spec. The key name must be a
// non-empty printable string and the interval strictly positive.
func NewKey(name string, interval time.Duration) (Spec, error) {
	if !printable(name) {
		return Spec{}, &ParseError{Spec: name, Msg: fmt.Sprintf("key name %q is not valid", name)}
	}
	if interval <= 0 {
		return Spec{}, &ParseError{Spec: name, Msg: fmt.Sprintf("interval for key %q must be greater than zero", name)}
	}
	return Spec{Target: KeyTarget(name), Interval: interval}, nil
}

// NewButton validates and builds a pointer Spec. The interval must be
// strictly positive; the button number already fits 8 bits by type.
func NewButton(button uint8, interval time.Duration) (Spec, error) {
	if interval <= 0 {
		return Spec{}, &ParseError{Msg: fmt.Sprintf("interval for button %d must be greater than zero", button)}
	}
	return Spec{Target: ButtonTarget(button), Interval: interval}, nil
}

func printable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
