package dock

import (
	"github.com/1broseidon/docktile/internal/geometry"
	"github.com/1broseidon/docktile/internal/platform"
)

// Entry records a window's position relative to a group's reference window
// at the moment the group was built.
type Entry struct {
	Window  platform.WindowID
	OffsetX int
	OffsetY int
}

// Group is a snapshot of windows that move together: the reference window at
// offset (0, 0) followed by every window transitively docked to it. It is
// built fresh for each move or shade operation and discarded when the
// operation ends.
type Group []Entry

// Contains reports whether a window is part of the group.
func (g Group) Contains(w platform.WindowID) bool {
	for _, e := range g {
		if e.Window == w {
			return true
		}
	}
	return false
}

// Windows returns the group's window handles in traversal order.
func (g Group) Windows() []platform.WindowID {
	out := make([]platform.WindowID, len(g))
	for i, e := range g {
		out[i] = e.Window
	}
	return out
}

// BuildGroup computes the transitive closure of registered windows docked to
// ref, with offsets relative to ref's current position. The reference window
// appears first at offset (0, 0); every other window appears at most once.
// Returns nil when ref's geometry cannot be read.
func BuildGroup(tk platform.Toolkit, registry *Registry, ref platform.WindowID) Group {
	if tk == nil || registry == nil {
		return nil
	}

	refRect, ok := windowRect(tk, ref)
	if !ok {
		return nil
	}

	group := Group{{Window: ref}}
	return extendGroup(tk, registry, group, refRect, 0, 0)
}

// extendGroup adds every registered window docked to the window at fromRect,
// then recurses from each addition with its accumulated offset. The group
// membership check doubles as the visited set, so traversal terminates once
// every reachable window has been added.
func extendGroup(tk platform.Toolkit, registry *Registry, group Group, fromRect geometry.Rect, offX, offY int) Group {
	for _, w := range registry.Windows() {
		if group.Contains(w) {
			continue
		}

		rect, ok := windowRect(tk, w)
		if !ok {
			continue
		}
		if !geometry.IsDocked(fromRect, rect) {
			continue
		}

		entry := Entry{
			Window:  w,
			OffsetX: rect.X - fromRect.X + offX,
			OffsetY: rect.Y - fromRect.Y + offY,
		}
		group = append(group, entry)
		group = extendGroup(tk, registry, group, rect, entry.OffsetX, entry.OffsetY)
	}
	return group
}

// windowRect reads a window's live geometry from the toolkit.
func windowRect(tk platform.Toolkit, w platform.WindowID) (geometry.Rect, bool) {
	x, y, err := tk.Position(w)
	if err != nil {
		return geometry.Rect{}, false
	}
	width, height, err := tk.Size(w)
	if err != nil {
		return geometry.Rect{}, false
	}
	return geometry.Rect{X: x, Y: y, Width: width, Height: height}, true
}
