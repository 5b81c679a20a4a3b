// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pickerapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
)

// NewHTTPServer listens on addr, as interpreted by ParseAddrPortDefaults
// with a default port of 8080, and returns the listener and an
// *http.Server whose BaseContext is ctx so that requests are logged via
// the logger stored in ctx.
func NewHTTPServer(ctx context.Context, addr string, handler http.Handler) (net.Listener, *http.Server, error) {
	addr = ParseAddrPortDefaults(addr, "8080")
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Minute,
		ErrorLog:          slog.NewLogLogger(ctxlog.Logger(ctx).Handler(), slog.LevelError),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	return ln, srv, nil
}

// ServeWithShutdown serves srv on ln until ctx is canceled, at which point
// the server is given grace to shut down cleanly.
func ServeWithShutdown(ctx context.Context, ln net.Listener, srv *http.Server, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server %v: %w", ln.Addr(), err)
		}
		return nil
	case <-ctx.Done():
		ctxlog.Logger(ctx).Info("shutting down", "addr", ln.Addr().String(), "grace", grace)
	}

	// ctx is already canceled, shutdown needs a fresh deadline.
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server %v: shutdown after %v: %w", ln.Addr(), grace, err)
	}
	select {
	case err := <-errCh:
		return err
	case <-sctx.Done():
		return sctx.Err()
	}
}

// ParseAddrPortDefaults returns addr as a host:port string. An empty addr
// becomes ":<port>", an integer becomes ":<addr>", and a name without a
// colon becomes "<addr>:<port>". Anything containing a colon is returned
// unchanged.
func ParseAddrPortDefaults(addr, port string) string {
	port = strings.TrimPrefix(port, ":")
	switch {
	case len(addr) == 0:
		return ":" + port
	case strings.Contains(addr, ":"):
		return addr
	}
	if _, err := strconv.Atoi(addr); err == nil {
		return ":" + addr
	}
	return net.JoinHostPort(addr, port)
}
