package chainrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	"golang.org/x/sync/singleflight"
)

const maxAccountResponseBytes = 1 << 20

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration

	lookups singleflight.Group
	mu      sync.RWMutex
	keys    map[domain.AccountName]string
}

var _ ports.ChainReader = (*Client)(nil)

type accountResponse struct {
	Permissions []struct {
		PermName     string `json:"perm_name"`
		RequiredAuth struct {
			Keys []struct {
				Key string `json:"key"`
			} `json:"keys"`
		} `json:"required_auth"`
	} `json:"permissions"`
}

// ActivePermissionKey returns the first key of account's active permission.
// Successful lookups are cached for the lifetime of the client.
func (c *Client) ActivePermissionKey(ctx context.Context, account domain.AccountName) (string, error) {
	c.mu.RLock()
	key, ok := c.keys[account]
	c.mu.RUnlock()
	if ok {
		return key, nil
	}

	value, err, _ := c.lookups.Do(string(account), func() (any, error) {
		key, err := c.fetchActiveKey(ctx, account)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		if c.keys == nil {
			c.keys = make(map[domain.AccountName]string)
		}
		c.keys[account] = key
		c.mu.Unlock()
		return key, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

func (c *Client) fetchActiveKey(ctx context.Context, account domain.AccountName) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return "", fmt.Errorf("%w: rpc url is required", domain.ErrKeyLookup)
	}

	payload, err := json.Marshal(map[string]string{"account_name": string(account)})
	if err != nil {
		return "", fmt.Errorf("encode get_account request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, base+"/v1/chain/get_account", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create get_account request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: get_account %s: %w", domain.ErrKeyLookup, account, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: get_account %s: status %d", domain.ErrKeyLookup, account, resp.StatusCode)
	}

	var decoded accountResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAccountResponseBytes)).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: decode get_account %s: %w", domain.ErrKeyLookup, account, err)
	}

	for _, perm := range decoded.Permissions {
		if perm.PermName != "active" {
			continue
		}
		if len(perm.RequiredAuth.Keys) == 0 || perm.RequiredAuth.Keys[0].Key == "" {
			return "", fmt.Errorf("%w: %s@active has no keys", domain.ErrKeyLookup, account)
		}
		return perm.RequiredAuth.Keys[0].Key, nil
	}

	return "", fmt.Errorf("%w: %s has no active permission", domain.ErrKeyLookup, account)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

