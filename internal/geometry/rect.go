package geometry

// Rect represents a window position and size in screen coordinates
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Degenerate reports whether the rect has no usable area. Degenerate rects
// never dock and never snap.
func (r Rect) Degenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsDocked reports whether two rects are docked: an edge of one coincides
// exactly with the opposing edge of the other while their spans along that
// edge overlap or touch. Exact equality defines "docked"; proximity within a
// threshold is "snap" territory and handled separately.
func IsDocked(a, b Rect) bool {
	if a.Degenerate() || b.Degenerate() {
		return false
	}

	// Shared vertical edge (left/right adjacency) with vertical span contact.
	if (a.X == b.X+b.Width || a.X+a.Width == b.X) &&
		b.Y+b.Height >= a.Y && b.Y <= a.Y+a.Height {
		return true
	}

	// Shared horizontal edge (top/bottom adjacency) with horizontal span contact.
	if (a.Y == b.Y+b.Height || a.Y+a.Height == b.Y) &&
		b.X+b.Width >= a.X && b.X <= a.X+a.Width {
		return true
	}

	return false
}
