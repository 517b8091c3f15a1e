package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/modwarden/modwarden/module/mods/http/modifier"
	"github.com/rs/zerolog/log"
)

const maxErrorBody = 512

// Options configures the retry and timeout behaviour of a Client.
type Options struct {
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Timeout      time.Duration
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		RetryMax:     3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 10 * time.Second,
		Timeout:      30 * time.Second,
	}
}

// StatusError is returned when the server answers with a non 2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: code: %d, message: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Client is a util for common HTTP operations against registry APIs.
// Requests are retried on connection errors, 429 and 5xx responses.
// Use Do instead if Get and Post can not meet your requirement.
type Client struct {
	modifiers []modifier.Modifier
	client    *retryablehttp.Client
}

// NewClient creates an instance of Client.
// Modifiers modify the request before sending it.
func NewClient(opts Options, modifiers ...modifier.Modifier) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	rc.HTTPClient.Timeout = opts.Timeout
	rc.Logger = leveledLogger{}
	// Hand the last response back instead of a generic "giving up" error so
	// callers can map the status code.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		modifiers: modifiers,
		client:    rc,
	}
}

// Do applies the modifiers and sends the request.
func (c *Client) Do(req *retryablehttp.Request) (*http.Response, error) {
	for _, m := range c.modifiers {
		if err := m.Modify(req.Request); err != nil {
			return nil, err
		}
	}
	return c.client.Do(req)
}

// Get sends a GET request and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, url string, v interface{}) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, v)
}

// Post sends body as JSON and decodes the JSON response into v.
func (c *Client) Post(ctx context.Context, url string, body, v interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, v)
}

func (c *Client) do(req *retryablehttp.Request, v interface{}) error {
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// leveledLogger routes retryablehttp logging to zerolog at debug level,
// retries at warn.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...interface{}) { log.Error().Fields(kv).Msg(msg) }
func (leveledLogger) Info(msg string, kv ...interface{})  { log.Debug().Fields(kv).Msg(msg) }
func (leveledLogger) Debug(msg string, kv ...interface{}) { log.Debug().Fields(kv).Msg(msg) }
func (leveledLogger) Warn(msg string, kv ...interface{})  { log.Warn().Fields(kv).Msg(msg) }
