package oauth

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
)

// CallbackServer catches a single provider redirect on a loopback address
// and hands its query parameters to the waiting flow.
type CallbackServer struct {
	listener net.Listener
	srv      *http.Server
	values   chan url.Values
	once     sync.Once
}

// Listen starts the listener on addr (e.g. "127.0.0.1:53682"). Passing a
// ":0" port picks a free one; use Addr to learn it.
func Listen(addr string) (*CallbackServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &CallbackServer{
		listener: listener,
		values:   make(chan url.Values, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	s.srv = &http.Server{Handler: mux}

	go func() { _ = s.srv.Serve(listener) }()

	return s, nil
}

func (s *CallbackServer) handle(w http.ResponseWriter, r *http.Request) {
	// Only the first redirect counts; repeats get the same page.
	s.once.Do(func() { s.values <- r.URL.Query() })

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body><p>Sign-in received. You can return to the terminal.</p></body></html>"))
}

// Addr returns the address the server listens on.
func (s *CallbackServer) Addr() string {
	return s.listener.Addr().String()
}

// RedirectURL is the URL the provider should send the browser back to.
func (s *CallbackServer) RedirectURL() string {
	return "http://" + s.Addr() + "/callback"
}

// Wait blocks until the redirect arrives or ctx expires.
func (s *CallbackServer) Wait(ctx context.Context) (url.Values, error) {
	select {
	case v := <-s.values:
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close shuts the listener down.
func (s *CallbackServer) Close() error {
	return s.srv.Close()
}
