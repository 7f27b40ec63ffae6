package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/cyberride/pkg/app"
)

// Transport selects how the server is reached.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"

	DefaultHost = "127.0.0.1"
	DefaultPort = 8080
	DefaultPath = "/mcp"

	shutdownGrace = 5 * time.Second
)

// ParseTransport accepts "http" or "stdio" in any case; empty means http.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "", TransportHTTP:
		return TransportHTTP, nil
	case TransportStdio:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported transport %q, use http or stdio", s)
	}
}

// HTTP configures the streamable HTTP listener.
type HTTP struct {
	Host string
	Port int
	Path string
	Cert string
	Key  string
}

func (h HTTP) normalize() (HTTP, error) {
	h.Host = strings.TrimSpace(h.Host)
	if h.Host == "" {
		h.Host = DefaultHost
	}
	if h.Port < 0 || h.Port > 65535 {
		return h, fmt.Errorf("invalid http port %d", h.Port)
	}
	h.Path = strings.TrimSpace(h.Path)
	if h.Path == "" {
		h.Path = DefaultPath
	}
	if !strings.HasPrefix(h.Path, "/") {
		h.Path = "/" + h.Path
	}
	h.Cert, h.Key = strings.TrimSpace(h.Cert), strings.TrimSpace(h.Key)
	if (h.Cert == "") != (h.Key == "") {
		return h, errors.New("both the tls cert and key must be given")
	}
	return h, nil
}

func (h HTTP) addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// URL is where clients reach the endpoint once bound to addr. Wildcard hosts
// are shown as the bound IP, or loopback when that is unspecified too.
func (h HTTP) URL(addr net.Addr) string {
	scheme := "http"
	if h.Cert != "" {
		scheme = "https"
	}
	host, port := h.Host, h.Port
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
		if host == "" || host == "0.0.0.0" || host == "::" {
			host = DefaultHost
			if tcp.IP != nil && !tcp.IP.IsUnspecified() {
				host = tcp.IP.String()
			}
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(host, strconv.Itoa(port)), h.Path)
}

// Runner serves the tracker over MCP until the context ends.
type Runner struct {
	App     *app.Service
	Name    string
	Version string
	// Window is the default look-ahead for the report tool and resource.
	Window    time.Duration
	Transport Transport
	HTTP      HTTP
	// Out receives the listening banner; nil keeps quiet.
	Out    io.Writer
	Logger *zap.Logger
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires the app service")
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	srv := r.newServer()

	var serve func(context.Context) error
	switch t := r.Transport; t {
	case "", TransportHTTP:
		serve = func(ctx context.Context) error { return r.serveHTTP(ctx, srv, log) }
	case TransportStdio:
		serve = func(context.Context) error {
			log.Debug("serving mcp over stdio")
			return server.ServeStdio(srv)
		}
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Pick up edits other processes make to the data file.
		if err := r.App.Watch(ctx, nil); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("data file watch stopped", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return serve(ctx)
	})
	return g.Wait()
}

func (r Runner) newServer() *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "cyberride"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Log rides, maintenance, fuel, trips and gear for a motorcycle, and read its dashboard and achievements."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.App, r.Window)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, log *zap.Logger) error {
	h, err := r.HTTP.normalize()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(h.Path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", h.addr())
	if err != nil {
		return err
	}
	url := h.URL(ln.Addr())
	log.Info("mcp listening", zap.String("url", url))
	if r.Out != nil {
		_, _ = fmt.Fprintf(r.Out, "MCP HTTP server listening on %s\n", url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if h.Cert != "" {
		err = httpSrv.ServeTLS(ln, h.Cert, h.Key)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
