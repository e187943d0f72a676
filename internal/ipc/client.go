package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/docktile/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	pathErr    error
	timeout    time.Duration
}

// NewClient creates a new IPC client. A socket path resolution failure is
// kept in the client and reported by the first request.
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	return &Client{
		socketPath: socketPath,
		pathErr:    err,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	if c.pathErr != nil {
		return nil, fmt.Errorf("failed to resolve socket path: %w", c.pathErr)
	}

	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// Reload sends a RELOAD command to the daemon
func (c *Client) Reload() error {
	req := &Request{
		Command: CommandReload,
	}

	_, err := c.sendRequest(req)
	return err
}

// GetStatus retrieves daemon status
func (c *Client) GetStatus() (*StatusData, error) {
	req := &Request{
		Command: CommandGetStatus,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}

	return &status, nil
}

// ListWindows retrieves the managed window list
func (c *Client) ListWindows() (*WindowsData, error) {
	req := &Request{
		Command: CommandListWindows,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var data WindowsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse windows data: %w", err)
	}

	return &data, nil
}

// ManageWindow enrolls a window, optionally under a persistent role
func (c *Client) ManageWindow(window uint32, role string) error {
	payload, err := json.Marshal(ManageWindowPayload{
		Window: window,
		Role:   role,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal manage payload: %w", err)
	}

	req := &Request{
		Command: CommandManageWindow,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// UnmanageWindow removes a window from docking management
func (c *Client) UnmanageWindow(window uint32) error {
	payload, err := json.Marshal(WindowPayload{Window: window})
	if err != nil {
		return fmt.Errorf("failed to marshal unmanage payload: %w", err)
	}

	req := &Request{
		Command: CommandUnmanageWindow,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// MoveWindow moves a managed window's dock group, with snapping
func (c *Client) MoveWindow(window uint32, x, y int) error {
	payload, err := json.Marshal(MoveWindowPayload{
		Window: window,
		X:      x,
		Y:      y,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal move payload: %w", err)
	}

	req := &Request{
		Command: CommandMoveWindow,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// ShadeWindow resizes a managed window to the given height, shifting its
// vertical stack with it
func (c *Client) ShadeWindow(window uint32, height int) error {
	payload, err := json.Marshal(ShadeWindowPayload{
		Window: window,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal shade payload: %w", err)
	}

	req := &Request{
		Command: CommandShadeWindow,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// SetDecorated toggles host window-manager decorations on a managed window
func (c *Client) SetDecorated(window uint32, decorated bool) error {
	payload, err := json.Marshal(SetDecoratedPayload{
		Window:    window,
		Decorated: decorated,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal decorate payload: %w", err)
	}

	req := &Request{
		Command: CommandSetDecorated,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// Ping checks if the daemon is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
