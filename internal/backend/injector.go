package backend

import (
	"github.com/fidgetd/fidget/internal/event"
	"github.com/fidgetd/fidget/pkg/logger"
)

// Injector performs the focus-preserving injection transaction over a
// Backend and owns the memoized key-name resolution cache. It satisfies the
// scheduler's Sink contract.
type Injector struct {
	b      Backend
	log    logger.Logger
	target *Focus
	keys   map[string]uint8
}

// NewInjector wraps b. The Injector takes ownership of the backend handle.
func NewInjector(b Backend, log logger.Logger) *Injector {
	return &Injector{
		b:    b,
		log:  log,
		keys: make(map[string]uint8),
	}
}

// SetTarget pins injection to a specific window instead of whichever window
// holds focus at delivery time.
func (in *Injector) SetTarget(f Focus) {
	in.target = &f
}

// keyCode resolves a key name through the backend, memoizing the result for
// the process lifetime. The key-name set is small and static, so the map
// only ever grows.
func (in *Injector) keyCode(name string) (uint8, error) {
	if code, ok := in.keys[name]; ok {
		return code, nil
	}
	code, err := in.b.ResolveKeyCode(name)
	if err != nil {
		return 0, err
	}
	in.log.Debug("%s -> %d", name, code)
	in.keys[name] = code
	return code, nil
}

// Deliver injects one press+release for t without permanently altering which
// window holds input focus: it saves the current focus, flips to the
// configured target (or re-asserts the current holder), injects, restores
// the saved focus, and flushes. The bracket is not transactional at the OS
// level; if the process dies mid-sequence the original focus stays lost.
func (in *Injector) Deliver(t event.Target) error {
	saved, err := in.b.Focus()
	if err != nil {
		return err
	}
	next := saved
	if in.target != nil {
		next = *in.target
	}
	if err := in.b.SetFocus(next); err != nil {
		return err
	}
	switch t.Kind {
	case event.KindButton:
		err = in.b.InjectButton(t.Button)
	default:
		var code uint8
		if code, err = in.keyCode(t.Key); err == nil {
			err = in.b.InjectKey(code)
		}
	}
	if err != nil {
		return err
	}
	if err := in.b.SetFocus(saved); err != nil {
		return err
	}
	return in.b.Flush()
}

// Paused reports whether injection should be suppressed because the user
// appears active. A query error reports not-paused: a transient indicator
// failure must not silently stop the tool.
func (in *Injector) Paused() bool {
	raised, err := in.b.ActivityIndicator()
	if err != nil {
		in.log.Debug("activity indicator query failed: %v", err)
		return false
	}
	return raised
}
