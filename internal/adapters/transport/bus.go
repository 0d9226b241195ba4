package transport

import (
	"sync"

	"github.com/bnema/cloudwallet-cli/internal/ports"
	"go.uber.org/zap"
)

type Filter func(ports.Message) bool

// Bus fans inbound surface messages out to single-use subscriptions. A
// message is delivered to every subscription whose filter accepts it; each
// subscription receives at most one message and is then dropped.
type Bus struct {
	logger *zap.Logger

	mu   sync.Mutex
	next uint64
	subs map[uint64]*subscription
}

type subscription struct {
	filter Filter
	ch     chan ports.Message
}

func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{logger: logger, subs: make(map[uint64]*subscription)}
}

// Subscribe registers filter and returns the delivery channel with a release
// func. Release is idempotent and safe to call after delivery.
func (b *Bus) Subscribe(filter Filter) (<-chan ports.Message, func()) {
	sub := &subscription{filter: filter, ch: make(chan ports.Message, 1)}

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *Bus) Publish(msg ports.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered := 0
	for id, sub := range b.subs {
		if !sub.filter(msg) {
			continue
		}
		sub.ch <- msg
		delete(b.subs, id)
		delivered++
	}

	if delivered == 0 {
		b.logger.Debug("ignored surface message",
			zap.String("origin", msg.Origin),
			zap.String("source", msg.SourceID),
		)
	}
}

func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
