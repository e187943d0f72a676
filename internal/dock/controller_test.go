package dock

import (
	"testing"

	"github.com/1broseidon/docktile/internal/config"
	"github.com/1broseidon/docktile/internal/geometry"
	"github.com/1broseidon/docktile/internal/platform"
)

func newTestController(tk platform.Toolkit) (*Controller, *config.Config) {
	cfg := config.Default()
	ctl := NewController(tk, cfg, nil)
	return ctl, cfg
}

func TestController_DragLifecycle(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 400, Y: 400, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)

	if ctl.IsMoving(1) {
		t.Fatalf("window moving before press")
	}

	ctl.Press(1, 10, 20, true)
	if !ctl.IsMoving(1) {
		t.Fatalf("expected moving state after press")
	}
	if len(tk.raised) != 1 || tk.raised[0] != 1 {
		t.Fatalf("expected press to raise window 1, got %v", tk.raised)
	}

	ctl.Motion(1, 510, 520)
	if got := tk.rect(1); got.X != 500 || got.Y != 500 {
		t.Fatalf("expected window at (500,500), got (%d,%d)", got.X, got.Y)
	}

	ctl.Release(1)
	if ctl.IsMoving(1) {
		t.Fatalf("still moving after release")
	}

	ctl.Motion(1, 900, 900)
	if got := tk.rect(1); got.X != 500 || got.Y != 500 {
		t.Fatalf("motion after release moved the window to (%d,%d)", got.X, got.Y)
	}
}

func TestController_PressIgnoredWithWMDecorations(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 400, Y: 400, Width: 100, Height: 100})
	ctl, cfg := newTestController(tk)
	cfg.ShowWMDecorations = true
	ctl.AddWindow(1)

	ctl.Press(1, 10, 20, true)
	if ctl.IsMoving(1) {
		t.Fatalf("press must be ignored when the window manager owns decorations")
	}
}

func TestController_GroupMovePreservesOffsets(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 400, Y: 400, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 500, Y: 400, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	ctl.Press(1, 0, 0, true)
	ctl.Motion(1, 600, 700)

	if got := tk.rect(1); got.X != 600 || got.Y != 700 {
		t.Fatalf("reference window at (%d,%d), expected (600,700)", got.X, got.Y)
	}
	if got := tk.rect(2); got.X != 700 || got.Y != 700 {
		t.Fatalf("docked window at (%d,%d), expected (700,700)", got.X, got.Y)
	}
}

func TestController_SingleWindowDragLeavesNeighbors(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 400, Y: 400, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 500, Y: 400, Width: 100, Height: 100})
	ctl, cfg := newTestController(tk)
	cfg.SnapWindows = false
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	ctl.Press(1, 0, 0, false)
	ctl.Motion(1, 600, 700)

	if got := tk.rect(1); got.X != 600 || got.Y != 700 {
		t.Fatalf("dragged window at (%d,%d), expected (600,700)", got.X, got.Y)
	}
	if got := tk.rect(2); got.X != 500 || got.Y != 400 {
		t.Fatalf("neighbor moved to (%d,%d) during single-window drag", got.X, got.Y)
	}
}

func TestController_MotionSnapsToNeighbor(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 400, Y: 400, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 200, Y: 400, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	// Dragging window 1 so its left edge lands within snap distance of
	// window 2's right edge pulls it flush.
	ctl.Press(1, 0, 0, true)
	ctl.Motion(1, 305, 400)

	if got := tk.rect(1); got.X != 300 || got.Y != 400 {
		t.Fatalf("expected snap to (300,400), got (%d,%d)", got.X, got.Y)
	}
}

func TestController_MoveToSnapsAndNotifies(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 400, Y: 400, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 200, Y: 400, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	var gotX, gotY int
	var calls int
	ctl.OnMoved(1, func(x, y int) {
		gotX, gotY = x, y
		calls++
	})

	ctl.MoveTo(1, 305, 420)

	if got := tk.rect(1); got.X != 300 || got.Y != 420 {
		t.Fatalf("expected window at (300,420), got (%d,%d)", got.X, got.Y)
	}
	if calls != 1 || gotX != 300 || gotY != 420 {
		t.Fatalf("move listener got (%d,%d) over %d calls, expected (300,420) once",
			gotX, gotY, calls)
	}
}

func TestController_MoveToMovesDockedGroup(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tk.addWindow(2, geometry.Rect{X: 100, Y: 0, Width: 100, Height: 100})
	ctl, cfg := newTestController(tk)
	cfg.SnapWindows = false
	ctl.AddWindow(1)
	ctl.AddWindow(2)

	ctl.MoveTo(1, 50, 60)

	if got := tk.rect(1); got.X != 50 || got.Y != 60 {
		t.Fatalf("reference window at (%d,%d), expected (50,60)", got.X, got.Y)
	}
	if got := tk.rect(2); got.X != 150 || got.Y != 60 {
		t.Fatalf("docked window at (%d,%d), expected (150,60)", got.X, got.Y)
	}
}

func TestController_SetDecoratedIdempotent(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)

	ctl.SetDecorated(1, true)
	if ctl.Registry().Contains(1) {
		t.Fatalf("decorated window must leave the registry")
	}
	if tk.decorateOps != 1 {
		t.Fatalf("expected 1 toolkit decoration call, got %d", tk.decorateOps)
	}

	ctl.SetDecorated(1, true)
	if tk.decorateOps != 1 {
		t.Fatalf("repeated SetDecorated reached the toolkit, %d calls", tk.decorateOps)
	}

	ctl.SetDecorated(1, false)
	if !ctl.Registry().Contains(1) {
		t.Fatalf("undecorated window must rejoin the registry")
	}
	if tk.decorateOps != 2 {
		t.Fatalf("expected 2 toolkit decoration calls, got %d", tk.decorateOps)
	}
}

func TestController_RemoveWindowClearsDragState(t *testing.T) {
	tk := newFakeToolkit()
	tk.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	ctl, _ := newTestController(tk)
	ctl.AddWindow(1)

	ctl.Press(1, 0, 0, true)
	if !ctl.IsMoving(1) {
		t.Fatalf("expected moving state after press")
	}

	ctl.RemoveWindow(1)
	if ctl.IsMoving(1) {
		t.Fatalf("drag state survived window removal")
	}
	if ctl.Registry().Contains(1) {
		t.Fatalf("window still registered after removal")
	}
}
