package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request is the JSON envelope sent to the editor command listener.
// Messages are newline-delimited on the wire.
type Request struct {
	Action    string         `json:"action"`
	Params    map[string]any `json:"params"`
	ID        string         `json:"id"`
	Timestamp int64          `json:"timestamp"`
}

// Response is the editor's reply envelope.
type Response struct {
	ID      string          `json:"id"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// EditorError is a failure reported by the editor itself, as opposed to a
// transport failure. Editor errors are not retried.
type EditorError struct {
	Action  string
	Message string
}

func (e *EditorError) Error() string {
	return fmt.Sprintf("editor rejected %s: %s", e.Action, e.Message)
}

// Client maintains a single TCP connection to the Unity editor and executes
// request/response round trips over it. It is safe for concurrent use; calls
// are serialized on the connection.
type Client struct {
	cfg    Config
	logger *zap.Logger

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

// NewClient creates a client for the given editor endpoint. No connection is
// made until the first call.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

// IsConnected reports whether a live editor connection is currently held.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Close tears down the editor connection if one is open.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}

// connect dials the editor. The caller must hold mu.
func (c *Client) connect() error {
	conn, err := net.DialTimeout("tcp", c.cfg.Addr(), c.cfg.ConnectTimeoutDuration())
	if err != nil {
		return fmt.Errorf("failed to connect to editor at %s: %w", c.cfg.Addr(), err)
	}
	c.conn = conn
	c.reader = bufio.NewReaderSize(conn, c.cfg.BufferSize)
	return nil
}

// drop discards a connection after a transport failure. The caller must hold mu.
func (c *Client) drop() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
		c.reader = nil
	}
}

// roundTrip sends one request and reads its reply. The caller must hold mu.
func (c *Client) roundTrip(req Request) (*Response, error) {
	if c.conn == nil {
		if err := c.connect(); err != nil {
			return nil, err
		}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", req.Action, err)
	}
	payload = append(payload, '\n')

	if _, err := c.conn.Write(payload); err != nil {
		c.drop()
		return nil, fmt.Errorf("failed to send %s: %w", req.Action, err)
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		c.drop()
		return nil, fmt.Errorf("failed to read reply for %s: %w", req.Action, err)
	}

	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		c.drop()
		return nil, fmt.Errorf("malformed reply for %s: %w", req.Action, err)
	}
	if resp.ID != "" && resp.ID != req.ID {
		c.drop()
		return nil, fmt.Errorf("reply id %q does not match request id %q", resp.ID, req.ID)
	}

	return &resp, nil
}

// Call executes one editor action. Transport failures are retried up to the
// configured attempt ceiling with a fixed delay between attempts; a failure
// reported by the editor itself is returned immediately as *EditorError.
func (c *Client) Call(ctx context.Context, action string, params map[string]any) (json.RawMessage, error) {
	req := Request{
		Action:    action,
		Params:    params,
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
	}

	attempts := c.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.mu.Lock()
		resp, err := c.roundTrip(req)
		c.mu.Unlock()

		if err == nil {
			if !resp.Success {
				return nil, &EditorError{Action: action, Message: resp.Error}
			}
			return resp.Data, nil
		}

		lastErr = err
		c.logger.Warn("Editor call failed",
			zap.String("action", action),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err))

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.RetryDelayDuration()):
			}
		}
	}

	return nil, fmt.Errorf("editor unreachable after %d attempts: %w", attempts, lastErr)
}
