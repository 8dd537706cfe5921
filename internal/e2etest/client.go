package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/myrjola/pitwall/internal/errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// SessionIDHeader carries the game session ID in both directions.
const SessionIDHeader = "X-Session-ID"

var ErrUnexpectedStatus = errors.NewSentinel("unexpected status code")

type AskResponse struct {
	Answer    string `json:"answer"`
	GameOver  bool   `json:"game_over"`
	SessionID string `json:"session_id"`
}

type HintResponse struct {
	Hint      string `json:"hint"`
	SessionID string `json:"session_id"`
}

// Client is a JSON client for the investigation API.
type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string) *Client {
	return &Client{
		client: &http.Client{Timeout: time.Minute},
		url:    url,
	}
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		resp *http.Response
	)
	for {
		if resp, err = c.Get(ctx, urlPath, ""); err == nil {
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response. The session header is omitted when sessionID is empty.
func (c *Client) Get(ctx context.Context, urlPath string, sessionID string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, urlPath, sessionID, nil)
}

// PostJSON posts body encoded as JSON and returns the response.
func (c *Client) PostJSON(ctx context.Context, urlPath string, sessionID string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal body")
	}
	return c.Do(ctx, http.MethodPost, urlPath, sessionID, bytes.NewReader(data))
}

// Do sends a request to the server.
func (c *Client) Do(
	ctx context.Context,
	method, urlPath, sessionID string,
	body io.Reader,
) (*http.Response, error) {
	var (
		req  *http.Request
		resp *http.Response
		err  error
	)
	if req, err = http.NewRequestWithContext(ctx, method, c.url+urlPath, body); err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(SessionIDHeader, sessionID)
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// Ask posts a question. A new session is started when sessionID is empty.
func (c *Client) Ask(ctx context.Context, sessionID, question string) (AskResponse, error) {
	var out AskResponse
	resp, err := c.PostJSON(ctx, "/ask", sessionID, map[string]string{"question": question})
	if err != nil {
		return out, errors.Wrap(err, "post question")
	}
	if err = decodeResponse(resp, &out); err != nil {
		return out, errors.Wrap(err, "decode answer")
	}
	return out, nil
}

// Hint requests the next hint. A new session is started when sessionID is empty.
func (c *Client) Hint(ctx context.Context, sessionID string) (HintResponse, error) {
	var out HintResponse
	resp, err := c.Get(ctx, "/hint", sessionID)
	if err != nil {
		return out, errors.Wrap(err, "get hint")
	}
	if err = decodeResponse(resp, &out); err != nil {
		return out, errors.Wrap(err, "decode hint")
	}
	return out, nil
}

// decodeResponse decodes a 200 OK JSON response into dst and closes the body.
func decodeResponse(resp *http.Response, dst any) error {
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return errors.Wrap(ErrUnexpectedStatus, "check status", slog.Int("status", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decode JSON")
	}
	return nil
}
