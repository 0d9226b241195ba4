package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultHandshakeTimeout = 2 * time.Second

type Transport struct {
	opener           ports.SurfaceOpener
	bus              *Bus
	origin           string
	handshakeTimeout time.Duration
	logger           *zap.Logger
}

var _ ports.Channel = (*Transport)(nil)

type Option func(*Transport)

func WithHandshakeTimeout(timeout time.Duration) Option {
	return func(t *Transport) {
		if timeout > 0 {
			t.handshakeTimeout = timeout
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New returns a Transport that accepts messages only from origin.
func New(opener ports.SurfaceOpener, bus *Bus, origin string, opts ...Option) *Transport {
	t := &Transport{
		opener:           opener,
		bus:              bus,
		origin:           origin,
		handshakeTimeout: DefaultHandshakeTimeout,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transport) Open(ctx context.Context, url string, initial any, existing ports.Surface) (ports.Surface, error) {
	surface, opened, err := t.surface(ctx, url, existing)
	if err != nil {
		return nil, err
	}
	if err := t.handshake(ctx, surface, initial); err != nil {
		if opened {
			_ = surface.Close()
		}
		return nil, err
	}
	return surface, nil
}

func (t *Transport) Await(ctx context.Context, surface ports.Surface, expectedType string, handle ports.MessageHandler) error {
	responses, release := t.bus.Subscribe(t.accepts(surface, expectedType))
	defer release()

	return t.wait(ctx, responses, handle)
}

func (t *Transport) Request(ctx context.Context, url string, initial any, existing ports.Surface, expectedType string, handle ports.MessageHandler) (ports.Surface, error) {
	surface, opened, err := t.surface(ctx, url, existing)
	if err != nil {
		return nil, err
	}

	responses, release := t.bus.Subscribe(t.accepts(surface, expectedType))
	defer release()

	if err := t.handshake(ctx, surface, initial); err != nil {
		if opened {
			_ = surface.Close()
		}
		return nil, err
	}

	return surface, t.wait(ctx, responses, handle)
}

func (t *Transport) surface(ctx context.Context, url string, existing ports.Surface) (ports.Surface, bool, error) {
	if existing != nil {
		t.logger.Debug("reusing wallet surface", zap.String("surface", existing.ID()))
		return existing, false, nil
	}

	surface, err := t.opener.Open(ctx, url)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrChannelOpen, err)
	}
	if surface == nil {
		return nil, false, domain.ErrChannelOpen
	}

	t.logger.Debug("opened wallet surface", zap.String("surface", surface.ID()), zap.String("url", url))
	return surface, true, nil
}

// handshake posts initial once READY arrives, or unconditionally once the
// handshake timeout elapses.
func (t *Transport) handshake(ctx context.Context, surface ports.Surface, initial any) error {
	if initial == nil {
		return nil
	}

	ready, release := t.bus.Subscribe(t.accepts(surface, domain.MessageTypeReady))
	timer := time.NewTimer(t.handshakeTimeout)
	select {
	case <-ready:
		t.logger.Debug("wallet surface ready", zap.String("surface", surface.ID()))
	case <-timer.C:
		t.logger.Debug("no READY from wallet surface, posting anyway", zap.String("surface", surface.ID()))
	case <-ctx.Done():
		timer.Stop()
		release()
		return contextError(ctx)
	}
	timer.Stop()
	release()

	if err := surface.Post(ctx, initial); err != nil {
		return fmt.Errorf("post initial payload: %w", err)
	}
	return nil
}

func (t *Transport) wait(ctx context.Context, responses <-chan ports.Message, handle ports.MessageHandler) error {
	select {
	case msg := <-responses:
		return handle(msg)
	case <-ctx.Done():
		return contextError(ctx)
	}
}

func contextError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %w", domain.ErrTimeout, ctx.Err())
}

// accepts builds the filter of one exchange. Untyped exchanges never accept
// handshake messages.
func (t *Transport) accepts(surface ports.Surface, expectedType string) Filter {
	sourceID := surface.ID()
	return func(msg ports.Message) bool {
		if msg.Origin != t.origin || msg.SourceID != sourceID || !msg.IsObject() {
			return false
		}
		msgType := msg.Type()
		if expectedType == "" {
			return msgType != domain.MessageTypeReady
		}
		return msgType == expectedType
	}
}
