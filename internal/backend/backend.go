// Package backend defines the contract between the scheduler and the
// platform layers that deliver synthetic input, together with the
// focus-preserving injection transaction shared by every backend.
package backend

import "errors"

// ErrUnsupported is returned by backends for operations the platform cannot
// express, e.g. focus handling on a backend without addressable windows.
var ErrUnsupported = errors.New("operation not supported by backend")

// Focus identifies the current input-focus holder and the revert mode the
// server applies if that holder becomes unviewable.
type Focus struct {
	Window   uint32
	RevertTo byte
}

// Backend is the set of primitives a platform must provide. A Backend handle
// is a single-owner resource: it is handed to one Injector and never shared,
// so implementations need no internal locking.
type Backend interface {
	// ResolveKeyCode maps a logical key name to the backend's key code.
	ResolveKeyCode(name string) (uint8, error)

	// InjectKey emits a key-down immediately followed by a key-up for code
	// into whichever window currently has focus.
	InjectKey(code uint8) error

	// InjectButton emits a button-down immediately followed by a button-up
	// for the numbered pointer button.
	InjectButton(button uint8) error

	// Focus returns the current focus holder and revert mode.
	Focus() (Focus, error)

	// SetFocus makes f the focus holder.
	SetFocus(f Focus) error

	// Flush forces queued protocol traffic out so injected events are
	// guaranteed visible to the OS.
	Flush() error

	// ActivityIndicator reports whether the keyboard activity indicator is
	// raised, i.e. the user appears to be present.
	ActivityIndicator() (bool, error)

	// Close releases the backend's connection or device.
	Close() error
}
