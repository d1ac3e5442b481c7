// Package fetch performs single-attempt, bounded HTTP GETs. Every transfer
// runs under a wall-clock deadline and a hard byte ceiling, and redirect
// targets are re-validated against the URL guard so a public host cannot
// bounce the client into a private address.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/noorsetia/News-Dashboard-backend/internal/urlguard"
)

var (
	// ErrTimeout marks transfers cancelled because the deadline elapsed.
	ErrTimeout = errors.New("fetch timeout")
	// ErrTooLarge marks transfers aborted because the body exceeded the
	// byte ceiling.
	ErrTooLarge = errors.New("response too large")
	// ErrUpstream marks non-2xx responses and transport failures. The
	// underlying cause is attached for logging only.
	ErrUpstream = errors.New("upstream error")
)

const redirectMaxHops = 5

// Client wraps http.Client with a deadline and a byte ceiling.
// The zero value is not usable; set the limits explicitly.
type Client struct {
	// HTTPClient optionally overrides the underlying client, mainly so
	// tests can point requests at a local server. The redirect policy and
	// timeout are attached to a clone, never to the caller's client.
	HTTPClient *http.Client
	// UserAgent identifies the fetcher. Fixed and non-browser-identifying.
	UserAgent string
	// Timeout bounds the whole transfer, connect through last byte.
	Timeout time.Duration
	// MaxBytes caps the accumulated body size.
	MaxBytes int64
}

func (c *Client) getHTTPClient() *http.Client {
	base := &http.Client{}
	if c.HTTPClient != nil {
		clone := *c.HTTPClient
		base = &clone
	}
	base.Timeout = c.Timeout
	base.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= redirectMaxHops {
			return errors.New("too many redirects")
		}
		// A redirect is a second URL chosen by the server; it gets the
		// same scrutiny as the first.
		if _, err := urlguard.Validate(req.URL.String()); err != nil {
			return fmt.Errorf("redirect blocked: %w", err)
		}
		return nil
	}
	return base
}

// Fetch issues one GET for url and returns the body as a string. url must
// already have passed urlguard.Validate. There are no retries; the caller
// decides whether to retry. Cancelling ctx tears down the in-flight transfer.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.Timeout)
		}
		log.Debug().Err(err).Str("url", url).Msg("transport failure")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status", resp.StatusCode).Str("url", url).Msg("upstream status")
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	// Read at most one byte past the ceiling; seeing that extra byte means
	// the body is oversized and the transfer is abandoned right there.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.MaxBytes+1))
	if err != nil {
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.Timeout)
		}
		return "", fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	if int64(len(body)) > c.MaxBytes {
		return "", fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, c.MaxBytes)
	}

	return string(body), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
