package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/docktile/internal/ipc"
)

const (
	ServerName    = "docktile"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing window docking operations. Every tool is
// a thin wrapper over the daemon IPC surface, so a running daemon is
// required.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates an MCP server backed by the daemon's IPC socket.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Get the docking daemon's status: managed window count, snap settings and uptime.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all managed windows with their roles, geometry and state.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "manage_window",
		Description: "Enroll an X11 window for edge docking and snapping. Windows docked edge to edge move as a group. An optional role persists the window's position across daemon restarts.",
	}, s.handleManageWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "unmanage_window",
		Description: "Remove a window from docking management.",
	}, s.handleUnmanageWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move a managed window to a new position. Windows docked to it move along, and edges within the snap distance of other managed windows or the screen border snap flush.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "shade_window",
		Description: "Resize a managed window to a new height. Windows docked below it slide to stay attached, clamped to the screen.",
	}, s.handleShadeWindow)
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, fmt.Errorf("get status: %w", err)
	}

	return nil, GetStatusOutput{
		ManagedCount:  status.ManagedCount,
		SnapWindows:   status.SnapWindows,
		SnapDistance:  status.SnapDistance,
		UptimeSeconds: status.UptimeSeconds,
		DaemonRunning: status.DaemonRunning,
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	data, err := s.client.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("list windows: %w", err)
	}

	out := ListWindowsOutput{Windows: make([]WindowInfo, len(data.Windows))}
	for i, w := range data.Windows {
		out.Windows[i] = WindowInfo{
			ID:        w.ID,
			Role:      w.Role,
			X:         w.X,
			Y:         w.Y,
			Width:     w.Width,
			Height:    w.Height,
			Decorated: w.Decorated,
			Moving:    w.Moving,
		}
	}
	return nil, out, nil
}

func (s *Server) handleManageWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ManageWindowInput) (*mcpsdk.CallToolResult, ManageWindowOutput, error) {
	if args.Window == 0 {
		return nil, ManageWindowOutput{}, fmt.Errorf("window is required")
	}
	if err := s.client.ManageWindow(args.Window, args.Role); err != nil {
		return nil, ManageWindowOutput{}, fmt.Errorf("manage window %d: %w", args.Window, err)
	}
	return nil, ManageWindowOutput{Window: args.Window, Managed: true}, nil
}

func (s *Server) handleUnmanageWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args UnmanageWindowInput) (*mcpsdk.CallToolResult, UnmanageWindowOutput, error) {
	if args.Window == 0 {
		return nil, UnmanageWindowOutput{}, fmt.Errorf("window is required")
	}
	if err := s.client.UnmanageWindow(args.Window); err != nil {
		return nil, UnmanageWindowOutput{}, fmt.Errorf("unmanage window %d: %w", args.Window, err)
	}
	return nil, UnmanageWindowOutput{Window: args.Window, Managed: false}, nil
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, MoveWindowOutput, error) {
	if args.Window == 0 {
		return nil, MoveWindowOutput{}, fmt.Errorf("window is required")
	}
	if err := s.client.MoveWindow(args.Window, args.X, args.Y); err != nil {
		return nil, MoveWindowOutput{}, fmt.Errorf("move window %d: %w", args.Window, err)
	}
	return nil, MoveWindowOutput{Window: args.Window, Moved: true}, nil
}

func (s *Server) handleShadeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ShadeWindowInput) (*mcpsdk.CallToolResult, ShadeWindowOutput, error) {
	if args.Window == 0 {
		return nil, ShadeWindowOutput{}, fmt.Errorf("window is required")
	}
	if args.Height <= 0 {
		return nil, ShadeWindowOutput{}, fmt.Errorf("height must be positive, got %d", args.Height)
	}
	if err := s.client.ShadeWindow(args.Window, args.Height); err != nil {
		return nil, ShadeWindowOutput{}, fmt.Errorf("shade window %d: %w", args.Window, err)
	}
	return nil, ShadeWindowOutput{Window: args.Window, Shaded: true}, nil
}
