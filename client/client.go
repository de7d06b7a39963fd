// Package client talks to a HangHub server. Every call is bounded by the
// client timeout; transport failures wrap ErrNetwork and error bodies
// become *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nakamauwu/hanghub/catalog"
	"github.com/nakamauwu/hanghub/ptr"
	"github.com/nakamauwu/hanghub/types"
)

const (
	DefaultTimeout      = 10 * time.Second
	DefaultPollInterval = 3 * time.Second
)

var ErrNetwork = errors.New("network error")

type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hanghub: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// New returns a client for baseURL such as "http://localhost:4444".
// A nil httpClient uses http.DefaultClient and a zero timeout uses DefaultTimeout.
func New(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// TestConnection reports whether the server answers its liveness route.
func (c *Client) TestConnection(ctx context.Context) error {
	var out struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodGet, "/", nil, &out)
}

func (c *Client) CreateRoom(ctx context.Context, in types.CreateRoom) (types.CreatedRoom, error) {
	var out types.CreatedRoom
	err := c.do(ctx, http.MethodPost, "/api/rooms", in, &out)
	return out, err
}

func (c *Client) JoinRoom(ctx context.Context, code, userName string) (types.Participant, error) {
	var out struct {
		Participant types.Participant `json:"participant"`
	}
	err := c.do(ctx, http.MethodPost, roomPath(code, "join"), types.JoinRoom{UserName: userName}, &out)
	return out.Participant, err
}

func (c *Client) Room(ctx context.Context, code string) (types.Room, error) {
	var out struct {
		Room types.Room `json:"room"`
	}
	err := c.do(ctx, http.MethodGet, roomPath(code), nil, &out)
	return out.Room, err
}

func (c *Client) UpdatePreferences(ctx context.Context, code, participantID string, prefs types.Preferences) error {
	in := types.UpdatePreferences{
		MaxDistance:        ptr.From(prefs.MaxDistance),
		Budget:             ptr.From(prefs.Budget),
		DrivingWillingness: ptr.From(prefs.DrivingWillingness),
		GroupSize:          ptr.From(prefs.GroupSize),
		TimeFlexibility:    ptr.From(prefs.TimeFlexibility),
	}
	return c.do(ctx, http.MethodPut, roomPath(code, "participants", participantID, "preferences"), in, nil)
}

func (c *Client) SubmitSwipes(ctx context.Context, code, participantID string, liked, passed []string) error {
	in := types.SubmitSwipes{
		LikedActivities:  liked,
		PassedActivities: passed,
	}
	return c.do(ctx, http.MethodPost, roomPath(code, "participants", participantID, "swipes"), in, nil)
}

func (c *Client) RoomStats(ctx context.Context, code string) (types.RoomStats, error) {
	var out struct {
		Stats types.RoomStats `json:"stats"`
	}
	err := c.do(ctx, http.MethodGet, roomPath(code, "stats"), nil, &out)
	return out.Stats, err
}

func (c *Client) Activities(ctx context.Context) ([]catalog.Activity, error) {
	var out struct {
		Activities []catalog.Activity `json:"activities"`
	}
	err := c.do(ctx, http.MethodGet, "/api/activities", nil, &out)
	return out.Activities, err
}

// RoomWithStats fetches a room and its stats concurrently, as the
// results screen shows both.
func (c *Client) RoomWithStats(ctx context.Context, code string) (types.Room, types.RoomStats, error) {
	var (
		room  types.Room
		stats types.RoomStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		room, err = c.Room(gctx, code)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = c.RoomStats(gctx, code)
		return err
	})

	if err := g.Wait(); err != nil {
		return types.Room{}, types.RoomStats{}, err
	}

	return room, stats, nil
}

func roomPath(code string, rest ...string) string {
	parts := append([]string{"api", "rooms", code}, rest...)
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/" + strings.Join(parts, "/")
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %w", ErrNetwork, err)
	}

	var envelope struct {
		Success *bool               `json:"success"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("json unmarshal response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || (envelope.Success != nil && !*envelope.Success) {
		msg := envelope.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg, Fields: envelope.Errors}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("json unmarshal response body: %w", err)
	}

	return nil
}
