package ipc

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSendRequestReportsSocketPathFailure(t *testing.T) {
	pathErr := errors.New("no runtime directory")
	c := &Client{pathErr: pathErr, timeout: time.Second}

	_, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err == nil {
		t.Fatal("expected error when socket path resolution failed, got nil")
	}
	if !errors.Is(err, pathErr) {
		t.Fatalf("expected wrapped path error, got %v", err)
	}
	if !strings.Contains(err.Error(), "socket path") {
		t.Fatalf("error %q does not mention the socket path", err)
	}
}
