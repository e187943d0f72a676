package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// WindowPosition returns a window's top-left corner in root coordinates.
func (c *Connection) WindowPosition(windowID xproto.Window) (int, int, error) {
	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to translate coordinates for window %d: %w", windowID, err)
	}

	return int(translate.DstX), int(translate.DstY), nil
}

// WindowSize returns a window's current width and height.
func (c *Connection) WindowSize(windowID xproto.Window) (int, int, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get geometry for window %d: %w", windowID, err)
	}

	return int(geom.Width), int(geom.Height), nil
}

// MoveWindow moves a window to (x, y) in root coordinates without changing
// its size.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	width, height, err := c.WindowSize(windowID)
	if err != nil {
		return err
	}

	// Use EWMH MoveResize for better WM compatibility
	err = ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height)
	if err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, windowID).Move(x, y)
	}

	return nil
}

// RaiseWindow brings a window to the front and focuses it.
func (c *Connection) RaiseWindow(windowID xproto.Window) error {
	if err := ewmh.ActiveWindowReq(c.XUtil, windowID); err != nil {
		return fmt.Errorf("failed to activate window %d: %w", windowID, err)
	}
	return nil
}

// ScreenSize returns the root screen dimensions in pixels.
func (c *Connection) ScreenSize() (int, int, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get root geometry: %w", err)
	}

	return int(geom.Width), int(geom.Height), nil
}
