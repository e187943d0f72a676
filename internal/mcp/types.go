package mcp

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	ManagedCount  int   `json:"managed_count"`
	SnapWindows   bool  `json:"snap_windows"`
	SnapDistance  int   `json:"snap_distance"`
	UptimeSeconds int64 `json:"uptime_seconds"`
	DaemonRunning bool  `json:"daemon_running"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes a single managed window.
type WindowInfo struct {
	ID        uint32 `json:"id"`
	Role      string `json:"role,omitempty"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Decorated bool   `json:"decorated"`
	Moving    bool   `json:"moving"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// ManageWindowInput is the input for the manage_window tool.
type ManageWindowInput struct {
	Window uint32 `json:"window" jsonschema:"required,X11 window ID to enroll for docking"`
	Role   string `json:"role,omitempty" jsonschema:"Optional role name; the window's position is persisted and restored under this key"`
}

// ManageWindowOutput is the output for the manage_window tool.
type ManageWindowOutput struct {
	Window  uint32 `json:"window"`
	Managed bool   `json:"managed"`
}

// UnmanageWindowInput is the input for the unmanage_window tool.
type UnmanageWindowInput struct {
	Window uint32 `json:"window" jsonschema:"required,X11 window ID to remove from docking"`
}

// UnmanageWindowOutput is the output for the unmanage_window tool.
type UnmanageWindowOutput struct {
	Window  uint32 `json:"window"`
	Managed bool   `json:"managed"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	Window uint32 `json:"window" jsonschema:"required,X11 window ID to move"`
	X      int    `json:"x" jsonschema:"required,Target x coordinate of the window's top-left corner"`
	Y      int    `json:"y" jsonschema:"required,Target y coordinate of the window's top-left corner"`
}

// MoveWindowOutput is the output for the move_window tool.
type MoveWindowOutput struct {
	Window uint32 `json:"window"`
	Moved  bool   `json:"moved"`
}

// ShadeWindowInput is the input for the shade_window tool.
type ShadeWindowInput struct {
	Window uint32 `json:"window" jsonschema:"required,X11 window ID to resize"`
	Height int    `json:"height" jsonschema:"required,New window height in pixels; docked neighbors shift to stay attached"`
}

// ShadeWindowOutput is the output for the shade_window tool.
type ShadeWindowOutput struct {
	Window uint32 `json:"window"`
	Shaded bool   `json:"shaded"`
}
