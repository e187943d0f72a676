package geometry

// SnapConfig controls edge snapping behavior.
type SnapConfig struct {
	// Enabled gates all snapping; when false CalcSnapOffset returns (0, 0).
	Enabled bool
	// Distance is the pixel threshold within which an edge is pulled into
	// exact alignment.
	Distance int
}

// Member describes one dock-group member during a snap computation: its size
// plus its offset from the group's reference window at the time the group was
// built.
type Member struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// SnapEdge snaps the moving rect (x, y, w, h) against one axis of the
// stationary rect (bx, by, bw, bh). If the moving rect's trailing edge lies
// within dist of the stationary rect's leading edge (or vice versa) and the
// perpendicular spans are within dist of touching, the moving edge is clamped
// exactly onto the stationary edge. Perpendicular edges within dist of the
// stationary rect's corresponding edges are clamped too (corner alignment).
//
// Call once for horizontal snapping and once with axes transposed for
// vertical snapping; Snap does both.
func SnapEdge(x, y, w, h, bx, by, bw, bh, dist int) (int, int) {
	// Moving right edge onto stationary left edge.
	if x+w > bx-dist && x+w < bx+dist &&
		y > by-h-dist && y < by+bh+dist {
		x = bx - w
		if y > by-dist && y < by+dist {
			y = by
		}
		if y+h > by+bh-dist && y+h < by+bh+dist {
			y = by + bh - h
		}
	}

	// Moving left edge onto stationary right edge.
	if x > bx+bw-dist && x < bx+bw+dist &&
		y > by-h-dist && y < by+bh+dist {
		x = bx + bw
		if y > by-dist && y < by+dist {
			y = by
		}
		if y+h > by+bh-dist && y+h < by+bh+dist {
			y = by + bh - h
		}
	}

	return x, y
}

// Snap applies SnapEdge in both orientations, snapping the moving rect
// (x, y, w, h) against the stationary rect b.
func Snap(x, y, w, h int, b Rect, dist int) (int, int) {
	x, y = SnapEdge(x, y, w, h, b.X, b.Y, b.Width, b.Height, dist)
	y, x = SnapEdge(y, x, h, w, b.Y, b.X, b.Height, b.Width, dist)
	return x, y
}

// CalcSnapOffset accumulates a total offset such that every group member,
// placed at the proposed reference position (x, y) plus its stored offset
// plus the returned offset, snaps to the screen bounds and to any candidate
// rect in others. Adjustments compose additively across members and
// candidates. The others slice must not contain rects of group members.
//
// Screen-edge snapping is one-sided: a member proposed past a screen edge is
// pulled back onto it regardless of how far past it is, so a group drag can
// never land members off-screen while snapping is enabled.
func CalcSnapOffset(members []Member, others []Rect, x, y, screenW, screenH int, snap SnapConfig) (int, int) {
	offX, offY := 0, 0

	if !snap.Enabled {
		return 0, 0
	}

	for _, m := range members {
		if m.Width <= 0 || m.Height <= 0 {
			continue
		}

		nx := m.OffsetX + offX + x
		ny := m.OffsetY + offY + y

		// Snap to screen edges.
		if nx < snap.Distance {
			offX -= nx
		}
		if ny < snap.Distance {
			offY -= ny
		}
		if nx+m.Width > screenW-snap.Distance {
			offX -= nx + m.Width - screenW
		}
		if ny+m.Height > screenH-snap.Distance {
			offY -= ny + m.Height - screenH
		}

		// Snap to other windows.
		for _, o := range others {
			if o.Degenerate() {
				continue
			}

			nx = m.OffsetX + offX + x
			ny = m.OffsetY + offY + y

			sx, sy := Snap(nx, ny, m.Width, m.Height, o, snap.Distance)

			offX += sx - nx
			offY += sy - ny
		}
	}

	return offX, offY
}
