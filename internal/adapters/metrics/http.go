package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/ports"
	"go.uber.org/zap"
)

const defaultPostTimeout = 5 * time.Second

// Poster sends timing metrics to the wallet's metric endpoint in the
// background. Failures are logged and dropped.
type Poster struct {
	URL        string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger

	wg sync.WaitGroup
}

var _ ports.MetricsRecorder = (*Poster)(nil)

type metricPayload struct {
	Name  string   `json:"name"`
	Value int64    `json:"value"`
	Tags  []string `json:"tags"`
}

func (p *Poster) RecordDuration(ctx context.Context, name string, elapsed time.Duration) {
	if p.URL == "" {
		return
	}

	payload := metricPayload{Name: name, Value: elapsed.Milliseconds(), Tags: []string{}}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.post(context.WithoutCancel(ctx), payload); err != nil {
			p.logger().Debug("metric post failed", zap.String("metric", name), zap.Error(err))
		}
	}()
}

// Flush waits for in-flight posts or for ctx to end.
func (p *Poster) Flush(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (p *Poster) post(ctx context.Context, payload metricPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode metric: %w", err)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultPostTimeout
	}
	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create metric request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	client := p.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("metric endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

func (p *Poster) logger() *zap.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return zap.NewNop()
}
