package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/kitchenhub/internal/logger"
)

const consentResponsePage = `<!DOCTYPE html>
<html><body>
<p>KitchenHub is connected. You can close this tab and return to the app.</p>
</body></html>`

// loopbackListener is a single-use HTTP server on the loopback interface
// that receives the provider's redirect carrying the authorization code.
type loopbackListener struct {
	server *http.Server
	codeCh chan string
	errCh  chan error
}

// newLoopbackListener binds the host:port of redirectURL and starts serving
// its path. Exactly one code (or one error) is delivered; later requests get
// 404 from the router.
func newLoopbackListener(redirectURL, state string, log *logger.Logger) (*loopbackListener, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return nil, fmt.Errorf("parse redirect url: %w", err)
	}

	l := &loopbackListener{
		codeCh: make(chan string, 1),
		errCh:  make(chan error, 1),
	}

	router := chi.NewRouter()
	router.Get(u.Path, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if errCode := query.Get("error"); errCode != "" {
			http.Error(w, "authorization failed", http.StatusBadRequest)
			l.deliverErr(fmt.Errorf("%w: %s", ErrAuthDenied, errCode))
			return
		}
		if query.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			l.deliverErr(errors.New("authorization response state mismatch"))
			return
		}
		code := query.Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			l.deliverErr(errors.New("authorization response has no code"))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(consentResponsePage))
		l.deliverCode(code)
	})

	listener, err := net.Listen("tcp", u.Host)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", u.Host, err)
	}

	l.server = &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if serveErr := l.server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Err(serveErr).Msg("redirect listener stopped unexpectedly")
			l.deliverErr(serveErr)
		}
	}()

	return l, nil
}

// WaitForCode blocks until the redirect arrives or ctx is cancelled.
func (l *loopbackListener) WaitForCode(ctx context.Context) (string, error) {
	select {
	case code := <-l.codeCh:
		return code, nil
	case err := <-l.errCh:
		return "", err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close shuts the server down. Safe to call after WaitForCode returned.
func (l *loopbackListener) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = l.server.Shutdown(ctx)
}

func (l *loopbackListener) deliverCode(code string) {
	select {
	case l.codeCh <- code:
	default:
	}
}

func (l *loopbackListener) deliverErr(err error) {
	select {
	case l.errCh <- err:
	default:
	}
}
