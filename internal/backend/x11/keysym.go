package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// namedKeysyms covers the multi-character key names users actually pass on
// the command line. Values are from X11/keysymdef.h.
var namedKeysyms = map[string]xproto.Keysym{
	"space":       0x0020,
	"BackSpace":   0xff08,
	"Tab":         0xff09,
	"Return":      0xff0d,
	"Pause":       0xff13,
	"Scroll_Lock": 0xff14,
	"Escape":      0xff1b,
	"Home":        0xff50,
	"Left":        0xff51,
	"Up":          0xff52,
	"Right":       0xff53,
	"Down":        0xff54,
	"Page_Up":     0xff55,
	"Page_Down":   0xff56,
	"End":         0xff57,
	"Insert":      0xff63,
	"Num_Lock":    0xff7f,
	"F1":          0xffbe,
	"F2":          0xffbf,
	"F3":          0xffc0,
	"F4":          0xffc1,
	"F5":          0xffc2,
	"F6":          0xffc3,
	"F7":          0xffc4,
	"F8":          0xffc5,
	"F9":          0xffc6,
	"F10":         0xffc7,
	"F11":         0xffc8,
	"F12":         0xffc9,
	"Shift_L":     0xffe1,
	"Shift_R":     0xffe2,
	"Control_L":   0xffe3,
	"Control_R":   0xffe4,
	"Caps_Lock":   0xffe5,
	"Meta_L":      0xffe7,
	"Meta_R":      0xffe8,
	"Alt_L":       0xffe9,
	"Alt_R":       0xffea,
	"Super_L":     0xffeb,
	"Super_R":     0xffec,
	"Delete":      0xffff,
}

// keysymFromName translates a key name into a keysym: the named table first,
// then the Latin-1 identity rule for single characters, then the Unicode
// keysym rule (codepoint | 0x01000000) for everything else single-rune.
func keysymFromName(name string) (xproto.Keysym, error) {
	if sym, ok := namedKeysyms[name]; ok {
		return sym, nil
	}
	runes := []rune(name)
	if len(runes) == 1 {
		r := runes[0]
		if r >= 0x20 && r < 0x100 {
			return xproto.Keysym(r), nil
		}
		return xproto.Keysym(0x01000000 | uint32(r)), nil
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}
