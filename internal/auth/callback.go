package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
)

// CallbackServer receives the OAuth redirect on localhost and hands the
// authorization code back to the flow.
type CallbackServer struct {
	codeCh chan string
	server *http.Server
	ln     net.Listener
	wg     sync.WaitGroup
}

// NewCallbackServer creates an unstarted callback server.
func NewCallbackServer() *CallbackServer {
	return &CallbackServer{codeCh: make(chan string, 1)}
}

// Start binds the server to the given port. Bind failures (port already in
// use) are reported synchronously.
func (s *CallbackServer) Start(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to bind callback port %d: %w", port, err)
	}
	s.ln = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleCallback)
	s.server = &http.Server{Handler: mux}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			// The flow fails on WaitForCode timeout; nothing to do here.
			_ = err
		}
	}()
	return nil
}

func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "No authorization code received", http.StatusBadRequest)
		return
	}

	select {
	case s.codeCh <- code:
	default:
		// A code was already delivered; ignore repeats.
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<html><body>
		<h1>Authorization Successful</h1>
		<p>You can close this window and return to the terminal.</p>
	</body></html>`)
}

// WaitForCode blocks until the redirect delivers an authorization code or
// the context ends.
func (s *CallbackServer) WaitForCode(ctx context.Context) (string, error) {
	select {
	case code := <-s.codeCh:
		return code, nil
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for authorization code: %w", ctx.Err())
	}
}

// Addr returns the bound listen address.
func (s *CallbackServer) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop shuts the server down and waits for the serve goroutine to exit.
func (s *CallbackServer) Stop() error {
	if s.server == nil {
		return nil
	}
	if err := s.server.Close(); err != nil {
		return fmt.Errorf("failed to stop callback server: %w", err)
	}
	s.wg.Wait()
	return nil
}

// OpenBrowser opens the URL in the default browser.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return fmt.Errorf("cannot open URL %s on this platform", url)
	}
}
