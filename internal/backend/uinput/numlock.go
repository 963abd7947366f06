package uinput

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fidgetd/fidget/internal/backend"
)

// numLockLEDGlob matches the per-keyboard Num Lock LED entries the kernel
// exposes in sysfs (e.g. input3::numlock).
const numLockLEDGlob = "/sys/class/leds/*::numlock/brightness"

// numLockLEDs reads the Num Lock light through sysfs. The light counts as
// raised when any keyboard's LED is lit.
type numLockLEDs struct {
	// filesystem seams, replaced in tests
	glob func() ([]string, error)
	read func(path string) ([]byte, error)
}

func newNumLockLEDs() *numLockLEDs {
	return &numLockLEDs{
		glob: func() ([]string, error) { return filepath.Glob(numLockLEDGlob) },
		read: os.ReadFile,
	}
}

// raised reports whether any Num Lock LED is lit. A host exposing no LED
// entries reports ErrUnsupported; a host where every entry is unreadable
// reports the read failure. A single dead entry among working ones is
// skipped, so unplugging one keyboard does not take the gate down.
func (n *numLockLEDs) raised() (bool, error) {
	paths, err := n.glob()
	if err != nil {
		return false, fmt.Errorf("enumerate leds: %w", err)
	}
	if len(paths) == 0 {
		return false, backend.ErrUnsupported
	}
	var lastErr error
	lit := false
	readable := 0
	for _, p := range paths {
		data, err := n.read(p)
		if err != nil {
			lastErr = err
			continue
		}
		brightness, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			lastErr = fmt.Errorf("parse %s: %w", p, err)
			continue
		}
		readable++
		if brightness > 0 {
			lit = true
		}
	}
	if readable == 0 {
		return false, lastErr
	}
	return lit, nil
}
