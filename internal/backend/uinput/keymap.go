// Package uinput implements the injection backend on top of the Linux
// uinput subsystem: a virtual keyboard+mouse device is created through
// /dev/uinput and synthetic events are written to it. There is no notion of
// an addressable window here, so the focus bracket degrades to no-ops and
// the activity gate reports ErrUnsupported (injection is never suppressed).
package uinput

import "fmt"

// Linux input event codes, from input-event-codes.h.
const (
	evSyn     = 0x00
	evKey     = 0x01
	synReport = 0

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
)

// keyCodes maps logical key names to Linux key codes. X-style names are
// accepted as aliases so the same configuration works on both backends.
var keyCodes = map[string]uint8{
	"a": 30, "b": 48, "c": 46, "d": 32, "e": 18, "f": 33, "g": 34,
	"h": 35, "i": 23, "j": 36, "k": 37, "l": 38, "m": 50, "n": 49,
	"o": 24, "p": 25, "q": 16, "r": 19, "s": 31, "t": 20, "u": 22,
	"v": 47, "w": 17, "x": 45, "y": 21, "z": 44,

	"1": 2, "2": 3, "3": 4, "4": 5, "5": 6, "6": 7, "7": 8, "8": 9,
	"9": 10, "0": 11,

	"space":       57,
	"Return":      28,
	"Tab":         15,
	"Escape":      1,
	"BackSpace":   14,
	"Delete":      111,
	"Insert":      110,
	"Home":        102,
	"End":         107,
	"Page_Up":     104,
	"Page_Down":   109,
	"Up":          103,
	"Down":        108,
	"Left":        105,
	"Right":       106,
	"Shift_L":     42,
	"Shift_R":     54,
	"Control_L":   29,
	"Alt_L":       56,
	"Caps_Lock":   58,
	"Num_Lock":    69,
	"Scroll_Lock": 70,
	"F1":          59, "F2": 60, "F3": 61, "F4": 62, "F5": 63,
	"F6": 64, "F7": 65, "F8": 66, "F9": 67, "F10": 68,
	"F11": 87, "F12": 88,
}

// buttonCodes maps the X button numbering (1=left, 2=middle, 3=right) to
// Linux BTN_* codes. Wheel buttons have no BTN equivalent and are rejected.
var buttonCodes = map[uint8]uint16{
	1: btnLeft,
	2: btnMiddle,
	3: btnRight,
}

func lookupKey(name string) (uint8, error) {
	if code, ok := keyCodes[name]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("key %q has no uinput mapping", name)
}

func lookupButton(button uint8) (uint16, error) {
	if code, ok := buttonCodes[button]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("button %d has no uinput mapping", button)
}
