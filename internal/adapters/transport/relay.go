package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	// RelayQueryParam carries the websocket endpoint of a surface on the
	// wallet URL.
	RelayQueryParam = "relay"

	maxFrameBytes = 1 << 20
	writeTimeout  = 10 * time.Second
)

var (
	ErrSurfaceClosed    = errors.New("wallet surface closed")
	ErrRelayNotStarted  = errors.New("relay is not started")
	errSurfaceConnected = errors.New("wallet surface already connected")
)

// Relay hosts wallet surfaces for a terminal process. Each surface is a
// browser page that connects back over a websocket; frames it sends are
// published on the bus with the connection's Origin header as their origin.
type Relay struct {
	bus      *Bus
	launcher Launcher
	logger   *zap.Logger
	gatherer prometheus.Gatherer
	frames   *prometheus.CounterVec
	upgrader websocket.Upgrader

	mu       sync.Mutex
	surfaces map[string]*relaySurface
	listener net.Listener
	server   *http.Server
}

var _ ports.SurfaceOpener = (*Relay)(nil)

type RelayOption func(*Relay)

func WithRelayLogger(logger *zap.Logger) RelayOption {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRegistry registers the relay collectors on registry and serves it on
// /metrics.
func WithRegistry(registry *prometheus.Registry) RelayOption {
	return func(r *Relay) {
		if registry != nil {
			r.gatherer = registry
			registry.MustRegister(r.frames)
		}
	}
}

func NewRelay(bus *Bus, launcher Launcher, opts ...RelayOption) *Relay {
	r := &Relay{
		bus:      bus,
		launcher: launcher,
		logger:   zap.NewNop(),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cloudwallet",
			Subsystem: "relay",
			Name:      "frames_total",
			Help:      "Websocket frames exchanged with wallet surfaces.",
		}, []string{"direction"}),
		upgrader: websocket.Upgrader{
			// Origins are checked per message by the exchange filters.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		surfaces: make(map[string]*relaySurface),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.gatherer == nil {
		registry := prometheus.NewRegistry()
		registry.MustRegister(r.frames)
		r.gatherer = registry
	}
	return r
}

func (r *Relay) Start(listenAddr string) error {
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("listen relay: %w", err)
	}

	server := &http.Server{Handler: r.Router(), ReadHeaderTimeout: 10 * time.Second}

	r.mu.Lock()
	r.listener = listener
	r.server = server
	r.mu.Unlock()

	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			r.logger.Error("relay stopped", zap.Error(serveErr))
		}
	}()

	r.logger.Debug("relay listening", zap.String("addr", listener.Addr().String()))
	return nil
}

func (r *Relay) Addr() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listener == nil {
		return ""
	}
	return r.listener.Addr().String()
}

func (r *Relay) SurfaceURL(id string) string {
	return "ws://" + r.Addr() + "/surfaces/" + id
}

func (r *Relay) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/surfaces/{id}", r.serveSurface).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return router
}

// Open registers a surface and launches walletURL with the surface's relay
// endpoint attached.
func (r *Relay) Open(ctx context.Context, walletURL string) (ports.Surface, error) {
	if r.Addr() == "" {
		return nil, ErrRelayNotStarted
	}

	id := uuid.NewString()
	target, err := withQueryParam(walletURL, RelayQueryParam, r.SurfaceURL(id))
	if err != nil {
		return nil, err
	}

	surface := &relaySurface{id: id, relay: r}
	r.mu.Lock()
	r.surfaces[id] = surface
	r.mu.Unlock()

	if err := r.launcher.Launch(ctx, target); err != nil {
		r.remove(id)
		return nil, err
	}
	return surface, nil
}

func (r *Relay) Close() error {
	r.mu.Lock()
	surfaces := make([]*relaySurface, 0, len(r.surfaces))
	for _, surface := range r.surfaces {
		surfaces = append(surfaces, surface)
	}
	server := r.server
	r.mu.Unlock()

	var errs []error
	for _, surface := range surfaces {
		if err := surface.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Relay) serveSurface(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	surface := r.lookup(id)
	if surface == nil {
		http.NotFound(w, req)
		return
	}

	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("surface upgrade failed", zap.String("surface", id), zap.Error(err))
		return
	}
	if err := surface.attach(conn); err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(writeTimeout))
		_ = conn.Close()
		return
	}

	origin := req.Header.Get("Origin")
	conn.SetReadLimit(maxFrameBytes)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			surface.detach(conn)
			return
		}
		r.frames.WithLabelValues("inbound").Inc()
		r.bus.Publish(ports.Message{Origin: origin, SourceID: id, Data: json.RawMessage(data)})
	}
}

func (r *Relay) lookup(id string) *relaySurface {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.surfaces[id]
}

func (r *Relay) remove(id string) {
	r.mu.Lock()
	delete(r.surfaces, id)
	r.mu.Unlock()
}

func withQueryParam(raw string, key string, value string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse wallet url: %w", err)
	}
	q := parsed.Query()
	q.Set(key, value)
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

// relaySurface queues posts until the wallet page connects.
type relaySurface struct {
	id    string
	relay *Relay

	mu      sync.Mutex
	conn    *websocket.Conn
	pending [][]byte
	closed  bool
}

func (s *relaySurface) ID() string {
	return s.id
}

func (s *relaySurface) Post(ctx context.Context, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode surface payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSurfaceClosed
	}
	if s.conn == nil {
		s.pending = append(s.pending, raw)
		return nil
	}
	return s.write(raw)
}

func (s *relaySurface) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conn := s.conn
	s.conn = nil
	s.pending = nil
	s.mu.Unlock()

	s.relay.remove(s.id)
	if conn == nil {
		return nil
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(writeTimeout))
	return conn.Close()
}

func (s *relaySurface) attach(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSurfaceClosed
	}
	if s.conn != nil {
		return errSurfaceConnected
	}

	s.conn = conn
	pending := s.pending
	s.pending = nil
	for _, raw := range pending {
		if err := s.write(raw); err != nil {
			s.conn = nil
			return err
		}
	}
	return nil
}

func (s *relaySurface) detach(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// write must be called with s.mu held.
func (s *relaySurface) write(raw []byte) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("set surface write deadline: %w", err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		return fmt.Errorf("write surface frame: %w", err)
	}
	s.relay.frames.WithLabelValues("outbound").Inc()
	return nil
}
