package http

import (
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shapestone/shape-serve/internal/logging"
)

// ErrServerClosed is returned by Serve after the listener has been closed.
var ErrServerClosed = errors.New("http: Server closed")

// ErrServerStarted is returned when a route is registered after Serve began.
var ErrServerStarted = errors.New("http: routes are read-only while serving")

// ErrNilHandler is returned when a route is registered with a nil handler.
var ErrNilHandler = errors.New("http: nil handler")

// Handler turns a decoded request into a response.
type Handler interface {
	ServeHTTP(req *Request) *Response
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(req *Request) *Response

// ServeHTTP calls f(req).
func (f HandlerFunc) ServeHTTP(req *Request) *Response { return f(req) }

// VersionGate selects which request versions are answered with
// 505 HTTP Version Not Supported instead of being dispatched.
type VersionGate int

const (
	// GateLegacy rejects requests whose version equals SupportedVersion and
	// dispatches every other version.
	GateLegacy VersionGate = iota
	// GateStrict rejects every version except SupportedVersion.
	GateStrict
)

// ParseVersionGate maps "legacy" or "strict" to a VersionGate.
func ParseVersionGate(s string) (VersionGate, bool) {
	switch s {
	case "legacy", "":
		return GateLegacy, true
	case "strict":
		return GateStrict, true
	}
	return GateLegacy, false
}

func (g VersionGate) String() string {
	if g == GateStrict {
		return "strict"
	}
	return "legacy"
}

// rejects reports whether v should get a 505.
func (g VersionGate) rejects(v Version) bool {
	if g == GateStrict {
		return v != SupportedVersion
	}
	return v == SupportedVersion
}

// Server accepts connections one at a time and answers exactly one request
// on each. Routes are matched on the exact request path.
type Server struct {
	ln      net.Listener
	logger  *slog.Logger
	bufSize int
	gate    VersionGate
	sleep   func(time.Duration) // accept backoff

	mu      sync.Mutex
	routes  map[string]Handler
	started bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the sink for connection and decode errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithReadBufferSize bounds the single read performed per connection.
// Requests larger than size are truncated.
func WithReadBufferSize(size int) Option {
	return func(s *Server) {
		if size > 0 {
			s.bufSize = size
		}
	}
}

// WithVersionGate sets the version gate policy. The default is GateLegacy.
func WithVersionGate(g VersionGate) Option {
	return func(s *Server) { s.gate = g }
}

// NewServer returns a server that will accept on ln.
func NewServer(ln net.Listener, opts ...Option) *Server {
	s := &Server{
		ln:      ln,
		logger:  logging.NewDiscardLogger(),
		bufSize: DefaultReadBufferSize,
		sleep:   time.Sleep,
		routes:  make(map[string]Handler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListenAndServe listens on the TCP address addr and serves on it.
func ListenAndServe(addr string, routes map[string]Handler, opts ...Option) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s := NewServer(ln, opts...)
	for path, h := range routes {
		if err := s.Handle(path, h); err != nil {
			ln.Close()
			return err
		}
	}
	return s.Serve()
}

// Handle registers h for path. Registering a path again replaces its handler.
// Routes must be registered before Serve is called.
func (s *Server) Handle(path string, h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	if f, ok := h.(HandlerFunc); ok && f == nil {
		return ErrNilHandler
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrServerStarted
	}
	s.routes[path] = h
	return nil
}

// HandleFunc registers f for path. See Handle.
func (s *Server) HandleFunc(path string, f func(*Request) *Response) error {
	if f == nil {
		return ErrNilHandler
	}
	return s.Handle(path, HandlerFunc(f))
}

// Addr returns the listener's network address.
func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Close closes the listener, making Serve return ErrServerClosed.
func (s *Server) Close() error { return s.ln.Close() }

// Serve accepts connections until the listener is closed or a response
// cannot be written.
//
// Each connection is read once, decoded, dispatched and answered before the
// next one is accepted. Accept, read and decode failures only drop the
// connection at hand; a write failure ends Serve with that error.
func (s *Server) Serve() error {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	s.logger.Info("serving", "addr", s.ln.Addr().String(), "version_gate", s.gate.String())

	var delay time.Duration
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return ErrServerClosed
			}
			delay = acceptBackoff(delay)
			s.logger.Warn("accept failed", "error", err, "retry_in", delay)
			s.sleep(delay)
			continue
		}
		delay = 0
		if err := s.serveConn(conn); err != nil {
			return err
		}
	}
}

// serveConn answers one request on conn and closes it. Only write errors are
// returned.
func (s *Server) serveConn(conn net.Conn) error {
	defer conn.Close()

	log := s.logger.With("conn", uuid.NewString(), "remote", remoteAddr(conn))

	req, err := NewDecoderSize(conn, s.bufSize).DecodeRequest()
	if err != nil {
		var readErr *ReadError
		switch {
		case errors.As(err, &readErr):
			log.Warn("read failed", "error", readErr.Err)
		case errors.Is(err, ErrInvalidEncoding):
			log.Debug("dropping non UTF-8 request")
		default:
			log.Error(err.Error())
		}
		return nil
	}

	log.Debug("request", "method", req.Method.String(), "path", req.Path, "version", req.Version.String())

	res := s.dispatch(req)
	if err := NewEncoder(conn).Encode(res); err != nil {
		log.Error("write failed", "error", err)
		return err
	}

	log.Debug("response", "status", res.Status.Code())
	return nil
}

// dispatch applies the version gate and the route table.
func (s *Server) dispatch(req *Request) *Response {
	if s.gate.rejects(req.Version) {
		return NewStatusResponse(StatusHTTPVersionNotSupported)
	}

	s.mu.Lock()
	h, ok := s.routes[req.Path]
	s.mu.Unlock()
	if !ok {
		return NewStatusResponse(StatusNotFound)
	}

	res := h.ServeHTTP(req)
	if res == nil {
		return NewResponse()
	}
	return res
}

// acceptBackoff doubles the previous delay, from 5ms up to one second.
func acceptBackoff(prev time.Duration) time.Duration {
	if prev == 0 {
		return 5 * time.Millisecond
	}
	if next := prev * 2; next < time.Second {
		return next
	}
	return time.Second
}

func remoteAddr(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return ""
}
