//go:build linux

package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/fidgetd/fidget/internal/backend"
	"github.com/fidgetd/fidget/pkg/logger"
)

const devicePath = "/dev/uinput"

// uinput ioctl numbers, from linux/uinput.h.
const (
	uiSetEvBit   = 0x40045564 // _IOW('U', 100, int)
	uiSetKeyBit  = 0x40045565 // _IOW('U', 101, int)
	uiDevSetup   = 0x405c5503 // _IOW('U', 3, struct uinput_setup)
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)
)

const busVirtual = 0x06

// uinputSetup mirrors struct uinput_setup.
type uinputSetup struct {
	ID           inputID
	Name         [80]byte
	FFEffectsMax uint32
}

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// inputEvent mirrors struct input_event on 64-bit Linux.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// Backend owns one virtual input device. Single-owner resource; see the
// backend package contract.
type Backend struct {
	fd   int
	leds *numLockLEDs
	log  logger.Logger
}

// New creates the virtual device and registers every key and button code the
// keymap can produce. The kernel needs a moment to wire the new device into
// the input stack; the scheduler's startup delay covers that settle time.
func New(log logger.Logger) (*Backend, error) {
	fd, err := unix.Open(devicePath, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", devicePath, err)
	}
	b := &Backend{fd: fd, leds: newNumLockLEDs(), log: log}
	if err := b.setup(); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return b, nil
}

func (b *Backend) setup() error {
	if err := unix.IoctlSetInt(b.fd, uiSetEvBit, evKey); err != nil {
		return fmt.Errorf("enable key events: %w", err)
	}
	for _, code := range keyCodes {
		if err := unix.IoctlSetInt(b.fd, uiSetKeyBit, int(code)); err != nil {
			return fmt.Errorf("register key code %d: %w", code, err)
		}
	}
	for _, code := range buttonCodes {
		if err := unix.IoctlSetInt(b.fd, uiSetKeyBit, int(code)); err != nil {
			return fmt.Errorf("register button code %d: %w", code, err)
		}
	}

	setup := uinputSetup{
		ID: inputID{Bustype: busVirtual, Vendor: 0x1, Product: 0x1, Version: 1},
	}
	copy(setup.Name[:], "fidget virtual input")
	if _, _, errno := unix.Syscall(
		unix.SYS_IOCTL, uintptr(b.fd), uiDevSetup, uintptr(unsafe.Pointer(&setup)),
	); errno != 0 {
		return fmt.Errorf("device setup: %w", errno)
	}
	if err := unix.IoctlSetInt(b.fd, uiDevCreate, 0); err != nil {
		return fmt.Errorf("device create: %w", err)
	}
	return nil
}

// ResolveKeyCode maps a key name through the static keymap.
func (b *Backend) ResolveKeyCode(name string) (uint8, error) {
	return lookupKey(name)
}

// InjectKey writes a key press+release followed by a sync report.
func (b *Backend) InjectKey(code uint8) error {
	return b.pressRelease(uint16(code))
}

// InjectButton writes a button press+release followed by a sync report.
func (b *Backend) InjectButton(button uint8) error {
	code, err := lookupButton(button)
	if err != nil {
		return err
	}
	return b.pressRelease(code)
}

func (b *Backend) pressRelease(code uint16) error {
	for _, value := range []int32{1, 0} {
		if err := b.writeEvent(evKey, code, value); err != nil {
			return err
		}
		if err := b.writeEvent(evSyn, synReport, 0); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) writeEvent(typ, code uint16, value int32) error {
	var buf bytes.Buffer
	ev := inputEvent{Type: typ, Code: code, Value: value}
	if err := binary.Write(&buf, binary.LittleEndian, &ev); err != nil {
		return err
	}
	if _, err := unix.Write(b.fd, buf.Bytes()); err != nil {
		return fmt.Errorf("write input event: %w", err)
	}
	return nil
}

// Focus is a no-op: uinput has no addressable windows to save.
func (b *Backend) Focus() (backend.Focus, error) {
	return backend.Focus{}, nil
}

// SetFocus is a no-op counterpart to Focus.
func (b *Backend) SetFocus(backend.Focus) error {
	return nil
}

// Flush is a no-op: event writes are synchronous.
func (b *Backend) Flush() error {
	return nil
}

// ActivityIndicator reports whether the Num Lock light on any real keyboard
// is raised, read from the kernel's LED entries in sysfs. The virtual device
// itself has no lock lights to consult.
func (b *Backend) ActivityIndicator() (bool, error) {
	return b.leds.raised()
}

// Close destroys the virtual device and closes the handle.
func (b *Backend) Close() error {
	if _, _, errno := unix.Syscall(
		unix.SYS_IOCTL, uintptr(b.fd), uiDevDestroy, 0,
	); errno != 0 {
		b.log.Warning("device destroy failed: %v", errno)
	}
	return unix.Close(b.fd)
}

var _ backend.Backend = (*Backend)(nil)
