package dock

import (
	"fmt"

	"github.com/1broseidon/docktile/internal/geometry"
	"github.com/1broseidon/docktile/internal/platform"
)

// fakeToolkit is an in-memory Toolkit for exercising the controller without
// a window system.
type fakeToolkit struct {
	rects        map[platform.WindowID]geometry.Rect
	decorated    map[platform.WindowID]bool
	raised       []platform.WindowID
	decorateOps  int
	screenWidth  int
	screenHeight int
}

func newFakeToolkit() *fakeToolkit {
	return &fakeToolkit{
		rects:        make(map[platform.WindowID]geometry.Rect),
		decorated:    make(map[platform.WindowID]bool),
		screenWidth:  1920,
		screenHeight: 1080,
	}
}

func (f *fakeToolkit) addWindow(w platform.WindowID, r geometry.Rect) {
	f.rects[w] = r
}

func (f *fakeToolkit) rect(w platform.WindowID) geometry.Rect {
	return f.rects[w]
}

func (f *fakeToolkit) Position(id platform.WindowID) (int, int, error) {
	r, ok := f.rects[id]
	if !ok {
		return 0, 0, fmt.Errorf("unknown window %d", id)
	}
	return r.X, r.Y, nil
}

func (f *fakeToolkit) Size(id platform.WindowID) (int, int, error) {
	r, ok := f.rects[id]
	if !ok {
		return 0, 0, fmt.Errorf("unknown window %d", id)
	}
	return r.Width, r.Height, nil
}

func (f *fakeToolkit) Move(id platform.WindowID, x, y int) error {
	r, ok := f.rects[id]
	if !ok {
		return fmt.Errorf("unknown window %d", id)
	}
	r.X, r.Y = x, y
	f.rects[id] = r
	return nil
}

func (f *fakeToolkit) ResizeWithHints(id platform.WindowID, w, h int) error {
	r, ok := f.rects[id]
	if !ok {
		return fmt.Errorf("unknown window %d", id)
	}
	r.Width, r.Height = w, h
	f.rects[id] = r
	return nil
}

func (f *fakeToolkit) SetDecorated(id platform.WindowID, decorated bool) error {
	if _, ok := f.rects[id]; !ok {
		return fmt.Errorf("unknown window %d", id)
	}
	f.decorated[id] = decorated
	f.decorateOps++
	return nil
}

func (f *fakeToolkit) Decorated(id platform.WindowID) (bool, error) {
	if _, ok := f.rects[id]; !ok {
		return false, fmt.Errorf("unknown window %d", id)
	}
	return f.decorated[id], nil
}

func (f *fakeToolkit) Raise(id platform.WindowID) error {
	f.raised = append(f.raised, id)
	return nil
}

func (f *fakeToolkit) ScreenSize() (int, int, error) {
	return f.screenWidth, f.screenHeight, nil
}
