package dock

import "github.com/1broseidon/docktile/internal/platform"

// Registry is the ordered set of windows eligible for dock and snap
// participation. Membership is mutated explicitly as windows are created,
// destroyed, or toggle decorated state; the registry never owns window
// lifetime.
type Registry struct {
	windows []platform.WindowID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a window to the registry. Adding a window that is already
// present is a no-op.
func (r *Registry) Add(w platform.WindowID) {
	if r == nil || r.Contains(w) {
		return
	}
	r.windows = append(r.windows, w)
}

// Remove deletes a window from the registry if present.
func (r *Registry) Remove(w platform.WindowID) {
	if r == nil {
		return
	}
	for i, win := range r.windows {
		if win == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			return
		}
	}
}

// Contains reports whether a window is registered.
func (r *Registry) Contains(w platform.WindowID) bool {
	if r == nil {
		return false
	}
	for _, win := range r.windows {
		if win == w {
			return true
		}
	}
	return false
}

// Windows returns the registered windows in registration order.
func (r *Registry) Windows() []platform.WindowID {
	if r == nil {
		return nil
	}
	out := make([]platform.WindowID, len(r.windows))
	copy(out, r.windows)
	return out
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.windows)
}
