package slidespeak

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/slidespeak/slidespeak-mcp-go/internal/models"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/httpclient"
	"github.com/slidespeak/slidespeak-mcp-go/pkg/logger"
)

const clientService = "slidespeak_api"

// maxLoggedBody caps response bodies in diagnostic log entries.
const maxLoggedBody = 500

// Client is the gateway for all SlideSpeak API calls. It attaches the
// fixed identification headers, bounds every call with a timeout and
// collapses transport, status and decode failures into *APIError.
type Client struct {
	opts Options
	http *httpclient.Client
}

// NewClient creates a Client from resolved options and an HTTP client.
func NewClient(opts Options, hc *httpclient.Client) *Client {
	return &Client{opts: opts, http: hc}
}

// HasAPIKey reports whether an API key is configured. Tools check this
// up front to short-circuit with a fixed message.
func (c *Client) HasAPIKey() bool {
	return c.opts.APIKey != ""
}

// Request performs one API call and returns the decoded JSON response.
// method is GET or POST; endpoint is the path under the API base, e.g.
// "/presentation/templates". For POST the payload is sent as a JSON
// body; for GET it is ignored. A non-positive timeout leaves the call
// bounded only by ctx. Without a configured API key the call fails
// immediately, before any network I/O.
func (c *Client) Request(ctx context.Context, method, endpoint string, payload any, timeout time.Duration) (any, error) {
	lg := logger.New(clientService, uuid.NewString())

	if !c.HasAPIKey() {
		lg.WithError(models.ErrorInfo{
			Message: ErrMissingAPIKey.Error(),
			Type:    string(ErrKindMissingKey),
		}).Error("API key is missing, refusing to make API request")
		return nil, &APIError{Kind: ErrKindMissingKey, Method: method, Endpoint: endpoint, Err: ErrMissingAPIKey}
	}

	var body io.Reader
	if method == http.MethodPost && payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &APIError{Kind: ErrKindTransport, Method: method, Endpoint: endpoint, Err: err}
		}
		lg.WithPayload(map[string]interface{}{
			"payload": truncate(string(encoded), maxLoggedBody),
		}).Debug("API request payload")
		body = bytes.NewReader(encoded)
	}

	reqCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.opts.BaseURL+endpoint, body)
	if err != nil {
		return nil, &APIError{Kind: ErrKindTransport, Method: method, Endpoint: endpoint, Err: err}
	}
	c.setCommonHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, lg, method, endpoint)
}

// Get performs a GET bounded by the standard request timeout.
func (c *Client) Get(ctx context.Context, endpoint string) (any, error) {
	return c.Request(ctx, http.MethodGet, endpoint, nil, c.opts.RequestTimeout)
}

// TaskStatus fetches the status document for one task. Status lookups
// use the short per-poll timeout so a slow check cannot eat into a
// generation deadline.
func (c *Client) TaskStatus(ctx context.Context, taskID string) (any, error) {
	return c.Request(ctx, http.MethodGet, "/task_status/"+taskID, nil, c.opts.PollTimeout)
}

// setCommonHeaders attaches the headers every outbound request carries.
func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.opts.APIKey)
}

// send executes a prepared request and decodes the JSON response.
func (c *Client) send(req *http.Request, lg *logger.Logger, method, endpoint string) (any, error) {
	lg.WithRequest(models.RequestInfo{Method: method, Path: endpoint}).Info("making API request")

	resp, err := c.http.Do(req)
	if err != nil {
		lg.WithError(models.ErrorInfo{
			Message: err.Error(),
			Type:    string(ErrKindTransport),
		}).Error("API request failed")
		return nil, &APIError{Kind: ErrKindTransport, Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		lg.WithError(models.ErrorInfo{
			Message:    err.Error(),
			Type:       string(ErrKindTransport),
			StatusCode: resp.StatusCode,
		}).Error("failed to read API response body")
		return nil, &APIError{Kind: ErrKindTransport, Method: method, Endpoint: endpoint, Status: resp.StatusCode, Err: err}
	}

	lg.WithRequest(models.RequestInfo{Method: method, Path: endpoint, Status: resp.StatusCode}).
		Info("API response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		lg.WithError(models.ErrorInfo{
			Message:    truncate(string(raw), maxLoggedBody),
			Type:       string(ErrKindHTTPStatus),
			StatusCode: resp.StatusCode,
		}).Error("API returned an error status")
		return nil, &APIError{Kind: ErrKindHTTPStatus, Method: method, Endpoint: endpoint, Status: resp.StatusCode, Body: string(raw)}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		lg.WithError(models.ErrorInfo{
			Message:    err.Error(),
			Type:       string(ErrKindDecode),
			StatusCode: resp.StatusCode,
		}).Error("failed to decode API response as JSON")
		return nil, &APIError{Kind: ErrKindDecode, Method: method, Endpoint: endpoint, Status: resp.StatusCode, Body: string(raw), Err: err}
	}

	lg.WithPayload(map[string]interface{}{
		"body": truncate(string(raw), maxLoggedBody),
	}).Debug("API response body")

	return decoded, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
