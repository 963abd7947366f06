// Package x11 implements the injection backend over the X11 protocol using
// the pure-Go xgb bindings: XTEST fake input for delivery, the core input
// focus for the save/restore bracket, and XKB indicator state for the
// activity gate.
package x11

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xkb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"

	"github.com/fidgetd/fidget/internal/backend"
	"github.com/fidgetd/fidget/pkg/logger"
)

// X11/extensions/XKB.h: XkbUseCoreKbd 0x0100
const useCoreKbd xkb.DeviceSpec = 0x0100

// numLockIndicator is the Num Lock bit in the XKB indicator state word.
const numLockIndicator = 0x02

// Backend talks to one X display. It is a single-owner resource; see the
// backend package contract.
type Backend struct {
	conn     *xgb.Conn
	display  string
	setup    *xproto.SetupInfo
	xkbReady bool
	log      logger.Logger
}

// New connects to the named display ("" uses the DISPLAY environment
// variable) and initializes the XTEST and XKB extensions. A missing XKB
// extension is not fatal: the activity gate then reports ErrUnsupported and
// injection is never suppressed.
func New(display string, log logger.Logger) (*Backend, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("open display %q: %w", display, err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("xtest extension: %w", err)
	}
	b := &Backend{
		conn:    conn,
		display: display,
		setup:   xproto.Setup(conn),
		log:     log,
	}
	if err := xkb.Init(conn); err != nil {
		log.Warning("xkb extension unavailable, activity gate disabled: %v", err)
	} else if _, err := xkb.UseExtension(conn, 1, 0).Reply(); err != nil {
		log.Warning("xkb handshake failed, activity gate disabled: %v", err)
	} else {
		b.xkbReady = true
	}
	return b, nil
}

// ResolveKeyCode maps a key name to the keycode producing its keysym on the
// display's current keyboard mapping. The caller memoizes, so the mapping
// round-trip happens once per distinct key name.
func (b *Backend) ResolveKeyCode(name string) (uint8, error) {
	sym, err := keysymFromName(name)
	if err != nil {
		return 0, err
	}
	first, last := b.setup.MinKeycode, b.setup.MaxKeycode
	reply, err := xproto.GetKeyboardMapping(b.conn, first, byte(last-first+1)).Reply()
	if err != nil {
		return 0, fmt.Errorf("keyboard mapping: %w", err)
	}
	per := int(reply.KeysymsPerKeycode)
	for i := 0; i <= int(last)-int(first); i++ {
		for col := 0; col < per; col++ {
			if reply.Keysyms[i*per+col] == sym {
				return uint8(int(first) + i), nil
			}
		}
	}
	return 0, fmt.Errorf("no keycode maps to key %q on display %q", name, b.display)
}

// InjectKey emits an XTEST key press immediately followed by its release.
func (b *Backend) InjectKey(code uint8) error {
	if err := b.fakeInput(xproto.KeyPress, code); err != nil {
		return err
	}
	return b.fakeInput(xproto.KeyRelease, code)
}

// InjectButton emits an XTEST button press immediately followed by its
// release.
func (b *Backend) InjectButton(button uint8) error {
	if err := b.fakeInput(xproto.ButtonPress, button); err != nil {
		return err
	}
	return b.fakeInput(xproto.ButtonRelease, button)
}

func (b *Backend) fakeInput(kind byte, detail uint8) error {
	return xtest.FakeInputChecked(
		b.conn, kind, detail, xproto.TimeCurrentTime,
		xproto.Window(0), 0, 0, 0,
	).Check()
}

// Focus returns the current focus holder and revert mode.
func (b *Backend) Focus() (backend.Focus, error) {
	reply, err := xproto.GetInputFocus(b.conn).Reply()
	if err != nil {
		return backend.Focus{}, fmt.Errorf("get input focus: %w", err)
	}
	return backend.Focus{Window: uint32(reply.Focus), RevertTo: reply.RevertTo}, nil
}

// SetFocus makes f the focus holder.
func (b *Backend) SetFocus(f backend.Focus) error {
	return xproto.SetInputFocusChecked(
		b.conn, f.RevertTo, xproto.Window(f.Window), xproto.TimeCurrentTime,
	).Check()
}

// Flush forces the server to process everything queued ahead of it. xgb
// writes requests as they are made, so a focus round-trip is the sync point.
func (b *Backend) Flush() error {
	_, err := xproto.GetInputFocus(b.conn).Reply()
	return err
}

// ActivityIndicator reports whether the Num Lock light on the core keyboard
// is raised.
func (b *Backend) ActivityIndicator() (bool, error) {
	if !b.xkbReady {
		return false, backend.ErrUnsupported
	}
	reply, err := xkb.GetIndicatorState(b.conn, useCoreKbd).Reply()
	if err != nil {
		return false, fmt.Errorf("indicator state: %w", err)
	}
	return reply.State&numLockIndicator != 0, nil
}

// Close drops the display connection.
func (b *Backend) Close() error {
	b.conn.Close()
	return nil
}

var _ backend.Backend = (*Backend)(nil)
