package activation

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

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
)

const (
	DefaultPollInterval = 15 * time.Second
	maxResponseBytes    = 1 << 20
)

// Client requests dapp activation codes and polls until the user approves
// one in their wallet.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Clock          ports.Clock
}

var _ ports.ActivationAPI = (*Client)(nil)

func (c *Client) RequestCode(ctx context.Context, dapp string) (domain.RequisitionInfo, error) {
	endpoint, err := c.endpoint("dapp/code", dapp)
	if err != nil {
		return domain.RequisitionInfo{}, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.RequisitionInfo{}, fmt.Errorf("create activation code request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.RequisitionInfo{}, fmt.Errorf("%w: %w", domain.ErrActivationFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.RequisitionInfo{}, fmt.Errorf("%w: status %d", domain.ErrActivationFetch, resp.StatusCode)
	}

	var info domain.RequisitionInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&info); err != nil {
		return domain.RequisitionInfo{}, fmt.Errorf("%w: decode response: %w", domain.ErrActivationFetch, err)
	}
	if info.Code == "" || info.Expire <= 0 {
		return domain.RequisitionInfo{}, fmt.Errorf("%w: response missing code or expiry", domain.ErrActivationFetch)
	}
	return info, nil
}

// PollActivation checks the code every interval until it is activated,
// rejected or expired.
func (c *Client) PollActivation(ctx context.Context, dapp string, info domain.RequisitionInfo, interval time.Duration) (domain.ActivatedData, error) {
	if info.Code == "" {
		return domain.ActivatedData{}, errors.New("activation code is required")
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	for {
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return domain.ActivatedData{}, ctx.Err()
		case <-timer.C:
		}

		if info.Expired(c.now()) {
			return domain.ActivatedData{}, domain.ErrActivationExpired
		}

		data, pending, err := c.checkOnce(ctx, dapp, info.Code)
		if err != nil {
			return domain.ActivatedData{}, err
		}
		if !pending {
			return data, nil
		}
	}
}

func (c *Client) checkOnce(ctx context.Context, dapp string, code string) (domain.ActivatedData, bool, error) {
	endpoint, err := c.endpoint("dapp/code/check", dapp)
	if err != nil {
		return domain.ActivatedData{}, false, err
	}

	body, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return domain.ActivatedData{}, false, fmt.Errorf("encode activation check: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.ActivatedData{}, false, fmt.Errorf("create activation check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.ActivatedData{}, false, fmt.Errorf("check activation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.ActivatedData{}, false, domain.ErrInvalidActivationCode
	case resp.StatusCode == http.StatusAccepted:
		return domain.ActivatedData{}, true, nil
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return domain.ActivatedData{}, false, fmt.Errorf("check activation: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return domain.ActivatedData{}, true, nil
	}

	var data domain.ActivatedData
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&data); err != nil {
		return domain.ActivatedData{}, false, fmt.Errorf("decode activation: %w", err)
	}
	if data.Account == "" || len(data.Keys) == 0 {
		return domain.ActivatedData{}, false, domain.ErrNoAccount
	}
	return data, false, nil
}

func (c *Client) endpoint(path string, dapp string) (string, error) {
	if c.BaseURL == "" {
		return "", errors.New("activation url is required")
	}
	base, err := url.Parse(strings.TrimRight(c.BaseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("parse activation url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return "", errors.New("activation url must use http or https")
	}

	endpoint, err := base.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse activation path: %w", err)
	}
	q := endpoint.Query()
	q.Set("dapp", dapp)
	endpoint.RawQuery = q.Encode()
	return endpoint.String(), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *Client) now() time.Time {
	if c.Clock != nil {
		return c.Clock.Now()
	}
	return time.Now()
}
