//go:build !linux

package uinput

import (
	"errors"

	"github.com/fidgetd/fidget/internal/backend"
	"github.com/fidgetd/fidget/pkg/logger"
)

// Backend is unavailable off Linux.
type Backend struct{}

// New always fails: uinput is a Linux subsystem.
func New(log logger.Logger) (*Backend, error) {
	return nil, errors.New("uinput backend is only available on linux")
}

func (b *Backend) ResolveKeyCode(name string) (uint8, error) { return 0, backend.ErrUnsupported }
func (b *Backend) InjectKey(code uint8) error                { return backend.ErrUnsupported }
func (b *Backend) InjectButton(button uint8) error           { return backend.ErrUnsupported }
func (b *Backend) Focus() (backend.Focus, error)             { return backend.Focus{}, nil }
func (b *Backend) SetFocus(backend.Focus) error              { return nil }
func (b *Backend) Flush() error                              { return nil }
func (b *Backend) ActivityIndicator() (bool, error)          { return false, backend.ErrUnsupported }
func (b *Backend) Close() error                              { return nil }

var _ backend.Backend = (*Backend)(nil)
