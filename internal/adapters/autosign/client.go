package autosign

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
)

const (
	DefaultTimeout  = 5 * time.Second
	maxResponseSize = 1 << 20
)

// TokenSource returns the bearer credential for the endpoints. An empty token
// sends the request without credentials.
type TokenSource func(ctx context.Context) (string, error)

// Client talks to the silent login and signing endpoints under BaseURL.
type Client struct {
	BaseURL    string
	ReturnTemp bool
	HTTPClient *http.Client
	Timeout    time.Duration
	Token      TokenSource
}

var _ ports.AutoSignEndpoint = (*Client)(nil)

func (c *Client) Login(ctx context.Context) (domain.LoginResult, error) {
	endpoint, err := c.endpoint("login")
	if err != nil {
		return domain.LoginResult{}, err
	}
	if c.ReturnTemp {
		endpoint += "?returnTemp=true"
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("create login request: %w", err)
	}

	body, err := c.do(req, "login")
	if err != nil {
		return domain.LoginResult{}, err
	}

	var result domain.LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.LoginResult{}, &domain.EndpointError{Op: "login", Err: fmt.Errorf("decode response: %w", err)}
	}
	return result, nil
}

func (c *Client) Sign(ctx context.Context, signing domain.SigningRequest) (domain.SigningResult, error) {
	endpoint, err := c.endpoint("signing")
	if err != nil {
		return domain.SigningResult{}, err
	}

	signing.Type = ""
	signing.StartTime = 0
	payload, err := json.Marshal(signing)
	if err != nil {
		return domain.SigningResult{}, fmt.Errorf("encode signing request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.SigningResult{}, fmt.Errorf("create signing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, "signing")
	if err != nil {
		return domain.SigningResult{}, err
	}

	var result domain.SigningResult
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.SigningResult{}, &domain.EndpointError{Op: "signing", Err: fmt.Errorf("decode response: %w", err)}
	}
	if result.Type != domain.MessageTypeTxSigned {
		return domain.SigningResult{}, &domain.EndpointError{
			Op:  "signing",
			Err: fmt.Errorf("%w: %s", domain.ErrUnexpectedResponse, strings.TrimSpace(string(body))),
		}
	}
	return result, nil
}

// do sends req and returns the body of a 2xx response that carries no
// except envelope.
func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &domain.EndpointError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.EndpointError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &domain.EndpointError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	var envelope domain.ExceptEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Failed() {
		return nil, &domain.EndpointError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status, Except: envelope.Processed.Except}
	}
	return body, nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.Token == nil {
		return nil
	}
	token, err := c.Token(req.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil
		}
		return fmt.Errorf("load endpoint credentials: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) endpoint(path string) (string, error) {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		return "", errors.New("auto-signing url is required")
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + path, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// requestContext bounds every call by Timeout even when ctx already carries a
// longer deadline.
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
