package daemon

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/1broseidon/docktile/internal/config"
	"github.com/1broseidon/docktile/internal/geometry"
	"github.com/1broseidon/docktile/internal/platform"
)

// fakeBackend is an in-memory Backend for exercising the manager without a
// window system.
type fakeBackend struct {
	rects        map[platform.WindowID]geometry.Rect
	decorated    map[platform.WindowID]bool
	screenWidth  int
	screenHeight int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		rects:        make(map[platform.WindowID]geometry.Rect),
		decorated:    make(map[platform.WindowID]bool),
		screenWidth:  1920,
		screenHeight: 1080,
	}
}

func (f *fakeBackend) addWindow(w platform.WindowID, r geometry.Rect) {
	f.rects[w] = r
}

func (f *fakeBackend) rect(w platform.WindowID) geometry.Rect {
	return f.rects[w]
}

func (f *fakeBackend) Position(id platform.WindowID) (int, int, error) {
	r, ok := f.rects[id]
	if !ok {
		return 0, 0, fmt.Errorf("unknown window %d", id)
	}
	return r.X, r.Y, nil
}

func (f *fakeBackend) Size(id platform.WindowID) (int, int, error) {
	r, ok := f.rects[id]
	if !ok {
		return 0, 0, fmt.Errorf("unknown window %d", id)
	}
	return r.Width, r.Height, nil
}

func (f *fakeBackend) Move(id platform.WindowID, x, y int) error {
	r, ok := f.rects[id]
	if !ok {
		return fmt.Errorf("unknown window %d", id)
	}
	r.X, r.Y = x, y
	f.rects[id] = r
	return nil
}

func (f *fakeBackend) ResizeWithHints(id platform.WindowID, w, h int) error {
	r, ok := f.rects[id]
	if !ok {
		return fmt.Errorf("unknown window %d", id)
	}
	r.Width, r.Height = w, h
	f.rects[id] = r
	return nil
}

func (f *fakeBackend) SetDecorated(id platform.WindowID, decorated bool) error {
	if _, ok := f.rects[id]; !ok {
		return fmt.Errorf("unknown window %d", id)
	}
	f.decorated[id] = decorated
	return nil
}

func (f *fakeBackend) Decorated(id platform.WindowID) (bool, error) {
	if _, ok := f.rects[id]; !ok {
		return false, fmt.Errorf("unknown window %d", id)
	}
	return f.decorated[id], nil
}

func (f *fakeBackend) Raise(id platform.WindowID) error {
	return nil
}

func (f *fakeBackend) ScreenSize() (int, int, error) {
	return f.screenWidth, f.screenHeight, nil
}

func (f *fakeBackend) EventLoop() {}

func (f *fakeBackend) Close() {}

func newTestManager(backend *fakeBackend) (*Manager, *config.Config) {
	cfg := config.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(cfg, backend, logger), cfg
}

func TestManage_RestoresRolePosition(t *testing.T) {
	backend := newFakeBackend()
	backend.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 200, Height: 100})
	m, cfg := newTestManager(backend)
	cfg.SetPosition("main", 400, 300)

	if err := m.Manage(1, "main"); err != nil {
		t.Fatalf("Manage failed: %v", err)
	}

	if got := backend.rect(1); got.X != 400 || got.Y != 300 {
		t.Fatalf("window at (%d, %d), expected restored position (400, 300)", got.X, got.Y)
	}
}

func TestMove_PersistsRolePosition(t *testing.T) {
	backend := newFakeBackend()
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 200, Height: 100})
	m, cfg := newTestManager(backend)

	if err := m.Manage(1, "main"); err != nil {
		t.Fatalf("Manage failed: %v", err)
	}
	if err := m.Move(1, 250, 320); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	pos, ok := cfg.PositionFor("main")
	if !ok {
		t.Fatal("no position saved for role \"main\"")
	}
	if pos.X != 250 || pos.Y != 320 {
		t.Fatalf("saved position (%d, %d), expected (250, 320)", pos.X, pos.Y)
	}
}

func TestMove_RolelessWindowNotPersisted(t *testing.T) {
	backend := newFakeBackend()
	backend.addWindow(1, geometry.Rect{X: 100, Y: 100, Width: 200, Height: 100})
	m, cfg := newTestManager(backend)

	if err := m.Manage(1, ""); err != nil {
		t.Fatalf("Manage failed: %v", err)
	}
	if err := m.Move(1, 250, 320); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if len(cfg.Positions) != 0 {
		t.Fatalf("expected no saved positions, got %v", cfg.Positions)
	}
	if got := backend.rect(1); got.X != 250 || got.Y != 320 {
		t.Fatalf("window at (%d, %d), expected (250, 320)", got.X, got.Y)
	}
}

func TestManage_RejectsDuplicate(t *testing.T) {
	backend := newFakeBackend()
	backend.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 200, Height: 100})
	m, _ := newTestManager(backend)

	if err := m.Manage(1, "main"); err != nil {
		t.Fatalf("Manage failed: %v", err)
	}
	if err := m.Manage(1, "other"); err == nil {
		t.Fatal("expected error managing an already managed window")
	}
	if got := m.ManagedCount(); got != 1 {
		t.Fatalf("managed count %d, expected 1", got)
	}
}

func TestManage_RejectsUnknownWindow(t *testing.T) {
	backend := newFakeBackend()
	m, _ := newTestManager(backend)

	if err := m.Manage(99, "main"); err == nil {
		t.Fatal("expected error managing a window the backend cannot find")
	}
	if got := m.ManagedCount(); got != 0 {
		t.Fatalf("managed count %d, expected 0", got)
	}
}

func TestUnmanage_RemovesWindow(t *testing.T) {
	backend := newFakeBackend()
	backend.addWindow(1, geometry.Rect{X: 0, Y: 0, Width: 200, Height: 100})
	m, _ := newTestManager(backend)

	if err := m.Manage(1, "main"); err != nil {
		t.Fatalf("Manage failed: %v", err)
	}
	if err := m.Unmanage(1); err != nil {
		t.Fatalf("Unmanage failed: %v", err)
	}

	if got := m.ManagedCount(); got != 0 {
		t.Fatalf("managed count %d, expected 0", got)
	}
	if err := m.Move(1, 50, 50); err == nil {
		t.Fatal("expected error moving an unmanaged window")
	}
	if err := m.Unmanage(1); err == nil {
		t.Fatal("expected error unmanaging a window twice")
	}
}
