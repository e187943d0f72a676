package dock

import (
	"testing"

	"github.com/1broseidon/docktile/internal/geometry"
)

func TestShade_BelowWindowRidesAlong(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 0, Y: 100, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	ctl.Shade(1, 150)

	if got := tk.rect(1); got.Height != 150 || got.Y != 0 {
		t.Fatalf("shaded window: got y=%d h=%d, expected y=0 h=150", got.Y, got.Height)
	}
	if got := tk.rect(2); got.Y != 150 {
		t.Fatalf("window below should sit at y=150, got y=%d", got.Y)
	}
}

func TestShade_ChainMovesTransitively(t *testing.T) {
	tk := newFakeToolkit()
	tk.screenHeight = 2000
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 0, Y: 100, Width: 100, Height: 100})
	tk.addWindow(3, geometry.Rect{X: 0, Y: 200, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)
	ctl.AddWindow(3)

	ctl.Shade(1, 150)

	if got := tk.rect(2); got.Y != 150 {
		t.Fatalf("middle window at y=%d, expected 150", got.Y)
	}
	if got := tk.rect(3); got.Y != 250 {
		t.Fatalf("bottom window at y=%d, expected 250", got.Y)
	}
}

func TestShade_ClampedAtScreenBottom(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 800, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 0, Y: 900, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	// Growing by 200 would push the lower window to y=1100, 120 pixels past
	// the 1080-pixel screen; the shift is reduced so it stops at the edge.
	ctl.Shade(1, 300)

	if got := tk.rect(1); got.Height != 300 {
		t.Fatalf("shaded window height %d, expected 300", got.Height)
	}
	if got := tk.rect(2); got.Y != 980 {
		t.Fatalf("lower window at y=%d, expected 980 (flush with screen bottom)", got.Y)
	}
}

func TestShade_AboveWindowShiftsWhenBottomPinned(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 500, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 0, Y: 600, Width: 100, Height: 480})
	tk.addWindow(3, geometry.Rect{X: 0, Y: 400, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)
	ctl.AddWindow(3)

	// The window below already ends flush with the 1080-pixel screen bottom,
	// so growing by 200 cannot shift it down; the stack absorbs the growth
	// above the reference instead.
	ctl.Shade(1, 300)

	if got := tk.rect(1); got.Height != 300 || got.Y != 500 {
		t.Fatalf("shaded window: got y=%d h=%d, expected y=500 h=300", got.Y, got.Height)
	}
	if got := tk.rect(2); got.Y != 600 {
		t.Fatalf("bottom-pinned window moved to y=%d, expected 600", got.Y)
	}
	if got := tk.rect(3); got.Y != 200 {
		t.Fatalf("window above at y=%d, expected 200", got.Y)
	}
}

func TestShade_ShrinkPullsBelowWindowUp(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 0, Y: 100, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	ctl.Shade(1, 20)

	if got := tk.rect(1); got.Height != 20 {
		t.Fatalf("shaded window height %d, expected 20", got.Height)
	}
	if got := tk.rect(2); got.Y != 20 {
		t.Fatalf("window below should follow up to y=20, got y=%d", got.Y)
	}
}

func TestShade_SideNeighborUnaffected(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 100, Y: 0, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	ctl.Shade(1, 50)

	if got := tk.rect(1); got.Height != 50 {
		t.Fatalf("shaded window height %d, expected 50", got.Height)
	}
	if got := tk.rect(2); got.X != 100 || got.Y != 0 || got.Height != 100 {
		t.Fatalf("side neighbor changed: %+v", got)
	}
}

func TestShade_WMDecorationsOnlyResizes(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 0, Y: 100, Width: 100, Height: 100})
	ctl, cfg := newTestController(tk)
	cfg.ShowWMDecorations = true
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	ctl.Shade(1, 150)

	if got := tk.rect(1); got.Height != 150 {
		t.Fatalf("shaded window height %d, expected 150", got.Height)
	}
	if got := tk.rect(2); got.Y != 100 {
		t.Fatalf("window below moved to y=%d with host decorations active", got.Y)
	}
}
