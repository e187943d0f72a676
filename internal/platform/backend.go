package platform

// WindowID is a platform-neutral identifier for a toolkit-level top-level
// window. The core uses it as an identity key only and never owns window
// lifetime.
type WindowID uint32

// Toolkit abstracts the window-system operations the docking core consumes.
// Geometry queries always reflect the toolkit's live state; implementations
// must not cache positions or sizes across calls.
type Toolkit interface {
	// Position returns the window's top-left corner in root coordinates.
	Position(id WindowID) (x, y int, err error)
	// Size returns the window's current width and height.
	Size(id WindowID) (w, h int, err error)
	// Move places the window's top-left corner at (x, y).
	Move(id WindowID, x, y int) error
	// ResizeWithHints resizes the window and pins both its minimum and
	// maximum size hints to the new value, so the host window manager cannot
	// independently resize it.
	ResizeWithHints(id WindowID, w, h int) error
	// SetDecorated enables or disables host window-manager decorations.
	SetDecorated(id WindowID, decorated bool) error
	// Decorated reports whether the window currently has host decorations.
	Decorated(id WindowID) (bool, error)
	// Raise brings the window to the front and gives it focus.
	Raise(id WindowID) error
	// ScreenSize returns the root screen dimensions in pixels.
	ScreenSize() (w, h int, err error)
}

// Backend is a Toolkit with connection lifecycle management.
type Backend interface {
	Toolkit

	// EventLoop starts the toolkit event loop (blocking).
	EventLoop()
	// Close disconnects from the window system.
	Close()
}
