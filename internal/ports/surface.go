package ports

import (
	"bytes"
	"context"
	"encoding/json"
)

// Message is one payload received from a wallet surface.
type Message struct {
	Origin   string
	SourceID string
	Data     json.RawMessage
}

// IsObject reports whether the payload is a JSON object rather than a
// primitive or array.
func (m Message) IsObject() bool {
	trimmed := bytes.TrimSpace(m.Data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func (m Message) Type() string {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(m.Data, &envelope); err != nil {
		return ""
	}
	return envelope.Type
}

func (m Message) Decode(v any) error {
	return json.Unmarshal(m.Data, v)
}

// Surface is a browsing context hosting the wallet UI.
type Surface interface {
	ID() string
	Post(ctx context.Context, payload any) error
	Close() error
}

type SurfaceOpener interface {
	Open(ctx context.Context, url string) (Surface, error)
}

type MessageHandler func(Message) error

// Channel conducts request/response exchanges with wallet surfaces.
type Channel interface {
	// Open returns existing when it is non-nil and otherwise opens a new
	// surface at url. A non-nil initial payload is posted exactly once, after
	// the surface reports READY or after the handshake timeout.
	Open(ctx context.Context, url string, initial any, existing Surface) (Surface, error)
	// Await blocks until surface sends a matching message and returns the
	// handler's result.
	Await(ctx context.Context, surface Surface, expectedType string, handle MessageHandler) error
	// Request opens the surface and awaits the response, listening for the
	// response before the initial payload is posted.
	Request(ctx context.Context, url string, initial any, existing Surface, expectedType string, handle MessageHandler) (Surface, error)
}
