package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandReload         CommandType = "RELOAD"
	CommandGetStatus      CommandType = "GET_STATUS"
	CommandListWindows    CommandType = "LIST_WINDOWS"
	CommandManageWindow   CommandType = "MANAGE_WINDOW"
	CommandUnmanageWindow CommandType = "UNMANAGE_WINDOW"
	CommandMoveWindow     CommandType = "MOVE_WINDOW"
	CommandShadeWindow    CommandType = "SHADE_WINDOW"
	CommandSetDecorated   CommandType = "SET_DECORATED"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	ManagedCount  int   `json:"managed_count"`
	SnapWindows   bool  `json:"snap_windows"`
	SnapDistance  int   `json:"snap_distance"`
	UptimeSeconds int64 `json:"uptime_seconds"`
	DaemonRunning bool  `json:"daemon_running"`
}

// WindowInfo represents one managed window in LIST_WINDOWS output
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

// WindowsData represents the data returned by LIST_WINDOWS
type WindowsData struct {
	Windows []WindowInfo `json:"windows"`
}

// ManageWindowPayload represents the payload for MANAGE_WINDOW
type ManageWindowPayload struct {
	Window uint32 `json:"window"`
	Role   string `json:"role,omitempty"`
}

// WindowPayload carries a bare window identifier (UNMANAGE_WINDOW)
type WindowPayload struct {
	Window uint32 `json:"window"`
}

// MoveWindowPayload represents the payload for MOVE_WINDOW
type MoveWindowPayload struct {
	Window uint32 `json:"window"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// ShadeWindowPayload represents the payload for SHADE_WINDOW
type ShadeWindowPayload struct {
	Window uint32 `json:"window"`
	Height int    `json:"height"`
}

// SetDecoratedPayload represents the payload for SET_DECORATED
type SetDecoratedPayload struct {
	Window    uint32 `json:"window"`
	Decorated bool   `json:"decorated"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
