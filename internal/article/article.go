// Package article is the engine facade the web layer calls into. It wires
// the URL guard, the bounded fetcher, the extractor, and the TextRank
// pipeline behind two stateless operations: fetching an article's plain text
// and producing an extractive summary.
package article

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/noorsetia/News-Dashboard-backend/internal/extract"
	"github.com/noorsetia/News-Dashboard-backend/internal/fetch"
	"github.com/noorsetia/News-Dashboard-backend/internal/textrank"
	"github.com/noorsetia/News-Dashboard-backend/internal/urlguard"
)

var (
	// ErrMissingInput is returned by Summarize when neither a URL nor raw
	// text was supplied.
	ErrMissingInput = errors.New("either url or text is required")
	// ErrEmptyInput is returned when the resolved text is empty after
	// trimming.
	ErrEmptyInput = errors.New("empty input text")
	// ErrNoSentences is returned when segmentation finds no sentences.
	ErrNoSentences = errors.New("no sentences in input")
)

// Defaults for the caller-supplied limits. The summarization ceiling is
// higher than the article-fetch ceiling because summaries tolerate a longer
// source document.
const (
	DefaultUserAgent       = "newsdash-summarizer/1.0"
	DefaultFetchTimeout    = 8 * time.Second
	DefaultArticleMaxBytes = 200 << 10
	DefaultSummaryMaxBytes = 300 << 10
	DefaultIterations      = 30
)

// Config holds the engine limits. Zero fields fall back to the defaults
// above.
type Config struct {
	UserAgent       string
	FetchTimeout    time.Duration
	ArticleMaxBytes int64
	SummaryMaxBytes int64
	Damping         float64
	Iterations      int

	// HTTPClient optionally overrides the outbound client; used by tests
	// to direct requests at a local server.
	HTTPClient *http.Client
}

func (c Config) withDefaults() Config {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.ArticleMaxBytes <= 0 {
		c.ArticleMaxBytes = DefaultArticleMaxBytes
	}
	if c.SummaryMaxBytes <= 0 {
		c.SummaryMaxBytes = DefaultSummaryMaxBytes
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Damping = textrank.DefaultDamping
	}
	if c.Iterations <= 0 {
		c.Iterations = DefaultIterations
	}
	return c
}

// Service executes fetch and summarize requests. It holds only immutable
// configuration and is safe for concurrent use; all per-request state lives
// on the stack of the call.
type Service struct {
	cfg Config
}

// New returns a Service with cfg's zero fields replaced by defaults.
func New(cfg Config) *Service {
	return &Service{cfg: cfg.withDefaults()}
}

// FetchText validates rawURL, fetches it under the article limits, and
// returns the extracted plain text.
func (s *Service) FetchText(ctx context.Context, rawURL string) (string, error) {
	return s.fetchPlainText(ctx, rawURL, s.cfg.ArticleMaxBytes)
}

// SummarizeRequest carries exactly one source for Summarize: a URL to fetch
// or raw text supplied directly. Nil means the field was absent from the
// request; a present-but-empty Text is a distinct, reportable condition.
type SummarizeRequest struct {
	URL  *string
	Text *string
}

// Summarize resolves the source text, either by fetching req.URL under the
// summary limits or by taking req.Text directly (truncated to the same
// ceiling, no fetch), and returns the extractive summary. When both inputs
// are present the URL wins.
func (s *Service) Summarize(ctx context.Context, req SummarizeRequest) (string, error) {
	var text string
	switch {
	case req.URL != nil && strings.TrimSpace(*req.URL) != "":
		var err error
		text, err = s.fetchPlainText(ctx, *req.URL, s.cfg.SummaryMaxBytes)
		if err != nil {
			return "", err
		}
	case req.Text != nil:
		text = truncate(*req.Text, s.cfg.SummaryMaxBytes)
	default:
		return "", ErrMissingInput
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	sentences := textrank.Segment(text)
	if len(sentences) == 0 {
		return "", ErrNoSentences
	}
	// Short documents are their own summary; ranking is skipped entirely.
	if len(sentences) <= 3 {
		return textrank.SelectSummary(nil, sentences, textrank.DefaultRatio, textrank.DefaultMinCount, textrank.DefaultMaxCount), nil
	}

	vectors, vocab := textrank.Vectorize(sentences)
	log.Debug().Int("sentences", len(sentences)).Int("vocabulary", vocab).Msg("ranking")
	ranked := textrank.Rank(vectors, s.cfg.Damping, s.cfg.Iterations)
	return textrank.SelectSummary(ranked, sentences, textrank.DefaultRatio, textrank.DefaultMinCount, textrank.DefaultMaxCount), nil
}

func (s *Service) fetchPlainText(ctx context.Context, rawURL string, maxBytes int64) (string, error) {
	u, err := urlguard.Validate(rawURL)
	if err != nil {
		return "", err
	}
	client := &fetch.Client{
		HTTPClient: s.cfg.HTTPClient,
		UserAgent:  s.cfg.UserAgent,
		Timeout:    s.cfg.FetchTimeout,
		MaxBytes:   maxBytes,
	}
	body, err := client.Fetch(ctx, u.String())
	if err != nil {
		return "", err
	}
	return extract.Extract(body), nil
}

// truncate cuts s to at most max bytes.
func truncate(s string, max int64) string {
	if int64(len(s)) <= max {
		return s
	}
	return s[:max]
}

// StatusHint maps an engine error to the HTTP status the web layer should
// answer with. Unknown errors map to 500; their text is for logs, not for
// the response body.
func StatusHint(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, urlguard.ErrInvalidURL),
		errors.Is(err, urlguard.ErrDisallowedHost),
		errors.Is(err, ErrMissingInput):
		return http.StatusBadRequest
	case errors.Is(err, fetch.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, fetch.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, fetch.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrNoSentences):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Describe renders err as the short machine-readable reason exposed to
// clients. Upstream causes are collapsed so transport details never leak.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, urlguard.ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, urlguard.ErrDisallowedHost):
		return "disallowed_host"
	case errors.Is(err, ErrMissingInput):
		return "missing_input"
	case errors.Is(err, fetch.ErrTooLarge):
		return "too_large"
	case errors.Is(err, fetch.ErrTimeout):
		return "timeout"
	case errors.Is(err, fetch.ErrUpstream):
		return "upstream_error"
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrNoSentences):
		return "no_sentences"
	default:
		return "internal_error"
	}
}
