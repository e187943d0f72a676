package pointer

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/docktile/internal/dock"
	"github.com/1broseidon/docktile/internal/platform"
)

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
}

// Adapter subscribes managed windows to pointer events and translates them
// into controller press, motion and release calls. Button 1 starts a group
// move; holding Shift restricts the drag to the pressed window.
//
// Event callbacks run on the X event loop goroutine; the shared lock
// serializes them against IPC-driven operations.
type Adapter struct {
	xu  *xgbutil.XUtil
	ctl *dock.Controller
	mu  sync.Locker
}

// NewAdapter creates an adapter over an X11-capable backend.
func NewAdapter(backend platform.Backend, ctl *dock.Controller, mu sync.Locker) (*Adapter, error) {
	acc, ok := backend.(x11Accessor)
	if !ok {
		return nil, fmt.Errorf("backend does not expose X11 internals")
	}
	if ctl == nil || mu == nil {
		return nil, fmt.Errorf("controller and lock are required")
	}
	return &Adapter{xu: acc.XUtil(), ctl: ctl, mu: mu}, nil
}

// Attach subscribes a window to button and motion events.
func (a *Adapter) Attach(w platform.WindowID) error {
	xwin := xproto.Window(w)

	win := xwindow.New(a.xu, xwin)
	if err := win.Listen(xproto.EventMaskButtonPress,
		xproto.EventMaskButtonRelease, xproto.EventMaskButtonMotion); err != nil {
		return fmt.Errorf("subscribe window %d to pointer events: %w", w, err)
	}

	xevent.ButtonPressFun(func(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		if ev.Detail != 1 {
			return
		}
		groupMove := ev.State&xproto.ModMaskShift == 0
		a.mu.Lock()
		a.ctl.Press(w, int(ev.EventX), int(ev.EventY), groupMove)
		a.mu.Unlock()
	}).Connect(a.xu, xwin)

	xevent.MotionNotifyFun(func(xu *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		a.mu.Lock()
		a.ctl.Motion(w, int(ev.RootX), int(ev.RootY))
		a.mu.Unlock()
	}).Connect(a.xu, xwin)

	xevent.ButtonReleaseFun(func(xu *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		if ev.Detail != 1 {
			return
		}
		a.mu.Lock()
		a.ctl.Release(w)
		a.mu.Unlock()
	}).Connect(a.xu, xwin)

	return nil
}

// Detach removes all event callbacks for a window.
func (a *Adapter) Detach(w platform.WindowID) {
	xevent.Detach(a.xu, xproto.Window(w))
}
