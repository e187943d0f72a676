package dock

import (
	"github.com/1broseidon/docktile/internal/geometry"
	"github.com/1broseidon/docktile/internal/platform"
)

// Shade resizes w to newHeight while keeping vertically stacked neighbors
// glued to it: windows docked below w ride along with its bottom edge, and
// the whole stack shifts upward when the resize would push a member past
// the bottom of the screen. When the host window manager owns decorations
// only the resize is performed.
func (c *Controller) Shade(w platform.WindowID, newHeight int) {
	if !c.valid() {
		return
	}
	rect, ok := windowRect(c.tk, w)
	if !ok {
		return
	}

	if c.cfg.ShowWMDecorations {
		c.resizeWithHints(w, rect.Width, newHeight)
		return
	}

	_, screenH, err := c.tk.ScreenSize()
	if err != nil {
		c.logger.Debug("screen size query failed", "error", err)
		c.resizeWithHints(w, rect.Width, newHeight)
		return
	}

	group := BuildGroup(c.tk, c.registry, w)
	parts := shadeParticipants(c.tk, group, w)

	delta := newHeight - rect.Height

	// The shift applied below w starts as the height change and is corrected
	// until no participant would land past the bottom of the screen or above
	// the top. Each pass settles at least one window, so the count of
	// participants bounds the passes needed.
	offY := delta
	for pass := 0; pass < len(parts)+2; pass++ {
		orig := offY
		for _, win := range parts {
			if win == w {
				continue
			}
			d, ok := windowRect(c.tk, win)
			if !ok {
				continue
			}
			if d.Y >= rect.Y && d.Y+offY+d.Height > screenH {
				offY -= d.Y + offY + d.Height - screenH
			} else if d.Y >= rect.Y && d.Y+d.Height == screenH {
				offY = 0
			}
			if d.Y >= rect.Y && d.Y+offY < 0 {
				offY -= d.Y + offY
			}
			if d.Y < rect.Y && d.Y+(offY-delta) < 0 {
				offY -= d.Y + (offY - delta)
			}
		}
		if offY == orig {
			break
		}
	}

	// Partition the stack at w: neighbors below it shift by the corrected
	// offset, neighbors above by the residual once the height change is
	// accounted for. Each neighbor drags its own subtree along.
	var list []platform.WindowID
	for _, win := range parts {
		if win != w {
			list = append(list, win)
		}
	}
	for i := 0; i < len(list); {
		win := list[i]
		d, ok := windowRect(c.tk, win)
		if !ok {
			i++
			continue
		}
		if geometry.IsDocked(rect, d) && d.X+d.Width > rect.X && d.X < rect.X+rect.Width {
			list = append(list[:i], list[i+1:]...)
			if d.Y > rect.Y {
				list = c.shadeMove(list, win, offY)
			} else if offY-delta != 0 {
				list = c.shadeMove(list, win, offY-delta)
			}
			i = 0
		} else {
			i++
		}
	}

	c.resizeWithHints(w, rect.Width, newHeight)
}

// shadeMove shifts w vertically by offset, first recursing into any window
// remaining in list that is stacked onto w. Consumed windows are removed
// from the returned list.
func (c *Controller) shadeMove(list []platform.WindowID, w platform.WindowID, offset int) []platform.WindowID {
	rect, ok := windowRect(c.tk, w)
	if !ok {
		return list
	}
	for i := 0; i < len(list); {
		win := list[i]
		d, ok := windowRect(c.tk, win)
		if !ok {
			i++
			continue
		}
		if geometry.IsDocked(rect, d) && d.X+d.Width > rect.X && d.X < rect.X+rect.Width {
			list = append(list[:i], list[i+1:]...)
			list = c.shadeMove(list, win, offset)
			i = 0
		} else {
			i++
		}
	}
	if err := c.tk.Move(w, rect.X, rect.Y+offset); err != nil {
		c.logger.Debug("shade move failed", "window", w, "error", err)
	}
	return list
}

func (c *Controller) resizeWithHints(w platform.WindowID, width, height int) {
	if err := c.tk.ResizeWithHints(w, width, height); err != nil {
		c.logger.Debug("resize failed", "window", w, "error", err)
	}
}

// shadeParticipants returns the windows in group connected to ref through a
// chain of vertically stacked, horizontally overlapping neighbors. ref is
// always included.
func shadeParticipants(tk platform.Toolkit, group Group, ref platform.WindowID) []platform.WindowID {
	return findShade(tk, group, ref, []platform.WindowID{ref})
}

func findShade(tk platform.Toolkit, group Group, from platform.WindowID, parts []platform.WindowID) []platform.WindowID {
	fromRect, ok := windowRect(tk, from)
	if !ok {
		return parts
	}
	for _, e := range group {
		if containsWindow(parts, e.Window) {
			continue
		}
		rect, ok := windowRect(tk, e.Window)
		if !ok {
			continue
		}
		if geometry.IsDocked(fromRect, rect) &&
			rect.X+rect.Width > fromRect.X && rect.X < fromRect.X+fromRect.Width {
			parts = append(parts, e.Window)
			parts = findShade(tk, group, e.Window, parts)
		}
	}
	return parts
}

func containsWindow(list []platform.WindowID, w platform.WindowID) bool {
	for _, v := range list {
		if v == w {
			return true
		}
	}
	return false
}
