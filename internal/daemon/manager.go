package daemon

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/1broseidon/docktile/internal/config"
	"github.com/1broseidon/docktile/internal/dock"
	"github.com/1broseidon/docktile/internal/platform"
)

// Attacher subscribes managed windows to pointer-driven move gestures.
type Attacher interface {
	Attach(w platform.WindowID) error
	Detach(w platform.WindowID)
}

// WindowInfo describes one managed window.
type WindowInfo struct {
	ID        platform.WindowID
	Role      string
	X         int
	Y         int
	Width     int
	Height    int
	Decorated bool
	Moving    bool
}

// Manager owns the daemon-side state: the docking controller, the set of
// managed windows and their roles, and the persisted configuration. A single
// mutex serializes IPC handlers against the pointer event dispatch path,
// which shares the same lock through Locker.
type Manager struct {
	mu      sync.Mutex
	cfg     *config.Config
	backend platform.Backend
	ctl     *dock.Controller
	adapter Attacher
	roles   map[platform.WindowID]string
	logger  *slog.Logger
}

// NewManager creates a manager around a backend and loaded configuration.
func NewManager(cfg *config.Config, backend platform.Backend, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		cfg:     cfg,
		backend: backend,
		ctl:     dock.NewController(backend, cfg, logger),
		roles:   make(map[platform.WindowID]string),
		logger:  logger,
	}
}

// Controller returns the docking controller. Callers outside the manager
// must hold Locker while using it.
func (m *Manager) Controller() *dock.Controller {
	return m.ctl
}

// Locker returns the lock serializing all docking operations.
func (m *Manager) Locker() sync.Locker {
	return &m.mu
}

// SetAdapter wires the pointer adapter used to subscribe managed windows to
// move gestures. Optional; without one, windows are still managed but only
// movable programmatically.
func (m *Manager) SetAdapter(a Attacher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adapter = a
}

// Manage registers a window for docking and snapping. A non-empty role keys
// position persistence: the window is restored to the role's saved position
// and every subsequent move updates it.
func (m *Manager) Manage(w platform.WindowID, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roles[w]; ok {
		return fmt.Errorf("window %d is already managed", w)
	}
	if _, _, err := m.backend.Position(w); err != nil {
		return fmt.Errorf("window %d: %w", w, err)
	}

	m.ctl.AddWindow(w)
	m.roles[w] = role

	if role != "" {
		m.ctl.OnMoved(w, func(x, y int) {
			m.cfg.SetPosition(role, x, y)
		})
		if pos, ok := m.cfg.PositionFor(role); ok {
			m.ctl.MoveTo(w, pos.X, pos.Y)
		}
	}

	if m.adapter != nil {
		if err := m.adapter.Attach(w); err != nil {
			m.logger.Warn("pointer attach failed", "window", w, "error", err)
		}
	}

	m.logger.Info("window managed", "window", w, "role", role)
	return nil
}

// Unmanage removes a window from docking participation.
func (m *Manager) Unmanage(w platform.WindowID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roles[w]; !ok {
		return fmt.Errorf("window %d is not managed", w)
	}
	if m.adapter != nil {
		m.adapter.Detach(w)
	}
	m.ctl.RemoveWindow(w)
	delete(m.roles, w)

	m.logger.Info("window unmanaged", "window", w)
	return nil
}

// Move places a managed window's dock group at (x, y), with snapping.
func (m *Manager) Move(w platform.WindowID, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roles[w]; !ok {
		return fmt.Errorf("window %d is not managed", w)
	}
	m.ctl.MoveTo(w, x, y)
	return nil
}

// Shade resizes a managed window to height, shifting its vertical stack.
func (m *Manager) Shade(w platform.WindowID, height int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roles[w]; !ok {
		return fmt.Errorf("window %d is not managed", w)
	}
	if height <= 0 {
		return fmt.Errorf("invalid shade height %d", height)
	}
	m.ctl.Shade(w, height)
	return nil
}

// SetDecorated toggles host decorations on a managed window. Decorated
// windows stop participating in docking until undecorated again.
func (m *Manager) SetDecorated(w platform.WindowID, decorated bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roles[w]; !ok {
		return fmt.Errorf("window %d is not managed", w)
	}
	m.ctl.SetDecorated(w, decorated)
	return nil
}

// Windows returns a snapshot of all managed windows.
func (m *Manager) Windows() []WindowInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	infos := make([]WindowInfo, 0, len(m.roles))
	for w, role := range m.roles {
		info := WindowInfo{ID: w, Role: role, Moving: m.ctl.IsMoving(w)}
		if x, y, err := m.backend.Position(w); err == nil {
			info.X, info.Y = x, y
		}
		if width, height, err := m.backend.Size(w); err == nil {
			info.Width, info.Height = width, height
		}
		if dec, err := m.backend.Decorated(w); err == nil {
			info.Decorated = dec
		}
		infos = append(infos, info)
	}
	return infos
}

// SnapSettings returns the active snap toggle and distance.
func (m *Manager) SnapSettings() (bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.SnapWindows, m.cfg.SnapDistance
}

// ManagedCount returns the number of managed windows.
func (m *Manager) ManagedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.roles)
}

// Reload replaces the active configuration with the on-disk one. The
// controller sees the change immediately since it shares the config value.
func (m *Manager) Reload() error {
	newCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	*m.cfg = *newCfg

	m.logger.Info("config reloaded",
		"snap_windows", m.cfg.SnapWindows,
		"snap_distance", m.cfg.SnapDistance)
	return nil
}

// SavePositions persists the current role positions to the config file.
func (m *Manager) SavePositions() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return config.Save(m.cfg)
}
