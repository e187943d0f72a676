package dock

import (
	"io"
	"log/slog"

	"github.com/1broseidon/docktile/internal/config"
	"github.com/1broseidon/docktile/internal/geometry"
	"github.com/1broseidon/docktile/internal/platform"
)

// MovedFunc receives a window's new top-left corner after a controller-driven
// group move. Registered per window, it decouples position persistence from
// the controller.
type MovedFunc func(x, y int)

// dragState is the transient state attached to a window for the duration of
// an in-progress move: the press point relative to the window's origin and
// the dock group snapshot built on press.
type dragState struct {
	offsetX int
	offsetY int
	group   Group
}

// Controller orchestrates group-wide move and shade operations over the
// windows in its registry. All methods are defensive no-ops when required
// live objects are missing; the subsystem is driven entirely by
// internally-generated UI events and never reports errors to callers.
//
// The controller is not safe for concurrent use; callers serialize access
// (everything runs on the toolkit event dispatch path).
type Controller struct {
	tk       platform.Toolkit
	cfg      *config.Config
	registry *Registry
	drags    map[platform.WindowID]*dragState
	moved    map[platform.WindowID]MovedFunc
	logger   *slog.Logger
}

// NewController creates a controller with an empty registry.
func NewController(tk platform.Toolkit, cfg *config.Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		tk:       tk,
		cfg:      cfg,
		registry: NewRegistry(),
		drags:    make(map[platform.WindowID]*dragState),
		moved:    make(map[platform.WindowID]MovedFunc),
		logger:   logger,
	}
}

func (c *Controller) valid() bool {
	return c != nil && c.tk != nil && c.cfg != nil && c.registry != nil
}

// Registry returns the controller's window registry.
func (c *Controller) Registry() *Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// AddWindow registers a window for dock and snap participation.
func (c *Controller) AddWindow(w platform.WindowID) {
	if c == nil {
		return
	}
	c.registry.Add(w)
}

// RemoveWindow unregisters a window and discards any drag state or move
// listener attached to it.
func (c *Controller) RemoveWindow(w platform.WindowID) {
	if c == nil {
		return
	}
	c.registry.Remove(w)
	delete(c.drags, w)
	delete(c.moved, w)
}

// OnMoved registers a listener invoked with w's new position whenever a
// group move repositions it.
func (c *Controller) OnMoved(w platform.WindowID, fn MovedFunc) {
	if c == nil || fn == nil {
		return
	}
	c.moved[w] = fn
}

// SetDecorated toggles a window's decorated state. Decorated windows are
// removed from dock/snap participation since the host window manager snaps
// them itself; undecorating re-adds the window. Repeating the current state
// is a no-op.
func (c *Controller) SetDecorated(w platform.WindowID, decorated bool) {
	if !c.valid() {
		return
	}

	current, err := c.tk.Decorated(w)
	if err != nil {
		c.logger.Debug("decorated query failed", "window", w, "error", err)
		return
	}
	if current == decorated {
		return
	}

	if decorated {
		c.RemoveWindow(w)
	} else {
		c.registry.Add(w)
	}

	if err := c.tk.SetDecorated(w, decorated); err != nil {
		c.logger.Debug("set decorated failed", "window", w, "error", err)
	}
}

// Press begins a move gesture on w. The press point (pressX, pressY) is
// relative to the window's origin. When groupMove is set the whole dock
// group rooted at w moves together; otherwise only w moves.
func (c *Controller) Press(w platform.WindowID, pressX, pressY int, groupMove bool) {
	if !c.valid() {
		return
	}
	if c.cfg.ShowWMDecorations {
		return
	}

	if err := c.tk.Raise(w); err != nil {
		c.logger.Debug("raise failed", "window", w, "error", err)
	}

	var group Group
	if groupMove {
		group = BuildGroup(c.tk, c.registry, w)
	} else if _, ok := windowRect(c.tk, w); ok {
		group = Group{{Window: w}}
	}
	if len(group) == 0 {
		return
	}

	c.drags[w] = &dragState{offsetX: pressX, offsetY: pressY, group: group}
}

// Motion updates an in-progress move with a new pointer position in root
// coordinates. Ignored when w is not in the Moving state.
func (c *Controller) Motion(w platform.WindowID, rootX, rootY int) {
	if !c.valid() {
		return
	}
	drag, ok := c.drags[w]
	if !ok {
		return
	}

	x := rootX - drag.offsetX
	y := rootY - drag.offsetY

	offX, offY := c.snapOffset(drag.group, x, y)
	c.moveGroup(drag.group, x+offX, y+offY)
}

// Release ends a move gesture, discarding the drag state and its group
// snapshot. No-op when w is not moving.
func (c *Controller) Release(w platform.WindowID) {
	if c == nil {
		return
	}
	delete(c.drags, w)
}

// IsMoving reports whether a move gesture is in progress on w.
func (c *Controller) IsMoving(w platform.WindowID) bool {
	if c == nil {
		return false
	}
	_, ok := c.drags[w]
	return ok
}

// MoveTo moves the dock group rooted at w so that w's top-left lands at
// (x, y), subject to the same snapping as an interactive drag. Backs the
// programmatic move surface.
func (c *Controller) MoveTo(w platform.WindowID, x, y int) {
	if !c.valid() {
		return
	}

	group := BuildGroup(c.tk, c.registry, w)
	if len(group) == 0 {
		return
	}

	offX, offY := c.snapOffset(group, x, y)
	c.moveGroup(group, x+offX, y+offY)
}

// snapOffset computes the accumulated snap offset for placing the group's
// reference window at (x, y), snapping members against the screen bounds and
// every registered window outside the group.
func (c *Controller) snapOffset(group Group, x, y int) (int, int) {
	screenW, screenH, err := c.tk.ScreenSize()
	if err != nil {
		c.logger.Debug("screen size query failed", "error", err)
		return 0, 0
	}

	members := make([]geometry.Member, 0, len(group))
	for _, e := range group {
		w, h, err := c.tk.Size(e.Window)
		if err != nil {
			continue
		}
		members = append(members, geometry.Member{
			OffsetX: e.OffsetX,
			OffsetY: e.OffsetY,
			Width:   w,
			Height:  h,
		})
	}

	var others []geometry.Rect
	for _, w := range c.registry.Windows() {
		if group.Contains(w) {
			continue
		}
		rect, ok := windowRect(c.tk, w)
		if !ok {
			continue
		}
		others = append(others, rect)
	}

	snap := geometry.SnapConfig{Enabled: c.cfg.SnapWindows, Distance: c.cfg.SnapDistance}
	return geometry.CalcSnapOffset(members, others, x, y, screenW, screenH, snap)
}

// moveGroup positions every group member at the reference position plus its
// stored offset, notifying per-window move listeners.
func (c *Controller) moveGroup(group Group, x, y int) {
	for _, e := range group {
		c.moveOne(e.Window, x+e.OffsetX, y+e.OffsetY)
	}
}

func (c *Controller) moveOne(w platform.WindowID, x, y int) {
	if err := c.tk.Move(w, x, y); err != nil {
		c.logger.Debug("move failed", "window", w, "error", err)
		return
	}
	if fn, ok := c.moved[w]; ok {
		fn(x, y)
	}
}
