//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/docktile/internal/x11"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend
// interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// EventLoop starts the X11 event loop (blocking).
func (b *LinuxBackend) EventLoop() {
	if b != nil && b.conn != nil {
		b.conn.EventLoop()
	}
}

// Close disconnects from the X11 server.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// XUtil returns the underlying xgbutil connection for X11-specific operations.
func (b *LinuxBackend) XUtil() *xgbutil.XUtil {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.XUtil
}

// RootWindow returns the X11 root window ID.
func (b *LinuxBackend) RootWindow() xproto.Window {
	if b == nil || b.conn == nil {
		return 0
	}
	return b.conn.Root
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("backend is not connected")
	}
	return b.conn, nil
}

// Position returns the window's top-left corner in root coordinates.
func (b *LinuxBackend) Position(id WindowID) (int, int, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, 0, err
	}
	return conn.WindowPosition(xproto.Window(id))
}

// Size returns the window's current dimensions.
func (b *LinuxBackend) Size(id WindowID) (int, int, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, 0, err
	}
	return conn.WindowSize(xproto.Window(id))
}

// Move places the window at (x, y) in root coordinates.
func (b *LinuxBackend) Move(id WindowID, x, y int) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveWindow(xproto.Window(id), x, y)
}

// ResizeWithHints resizes the window and pins min and max size hints to the
// new dimensions.
func (b *LinuxBackend) ResizeWithHints(id WindowID, w, h int) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.ResizeWindowWithHints(xproto.Window(id), w, h)
}

// SetDecorated toggles window-manager decorations via Motif WM hints.
func (b *LinuxBackend) SetDecorated(id WindowID, decorated bool) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.SetDecorated(xproto.Window(id), decorated)
}

// Decorated reports whether the window currently has WM decorations.
func (b *LinuxBackend) Decorated(id WindowID) (bool, error) {
	conn, err := b.connection()
	if err != nil {
		return false, err
	}
	return conn.Decorated(xproto.Window(id))
}

// Raise brings the window to the front and focuses it.
func (b *LinuxBackend) Raise(id WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.RaiseWindow(xproto.Window(id))
}

// ScreenSize returns the root screen dimensions.
func (b *LinuxBackend) ScreenSize() (int, int, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, 0, err
	}
	return conn.ScreenSize()
}
