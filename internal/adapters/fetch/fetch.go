// Package fetch retrieves diagram documents from external sources.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kassel/seatheat/pkg/metrics"
)

// Sentinel kinds for fetch errors.
var (
	ErrFetch = errors.New("diagram fetch failed")
)

// Limits for diagram retrieval.
const (
	defaultTimeout = 10 * time.Second
	// maxDocumentBytes bounds how much of a diagram we are willing to read.
	maxDocumentBytes = 10 << 20
)

// Option applies a configuration option to the Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds a single retrieval.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// Fetcher retrieves diagram documents over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// New creates a Fetcher with default timeout and client.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{},
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the document at url. Failures are reported to the caller;
// they never touch previously parsed geometry or computed colors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	metrics.RecordDiagramFetch()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.RecordDiagramFetchError()
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		metrics.RecordDiagramFetchError()
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordDiagramFetchError()
		return "", fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		metrics.RecordDiagramFetchError()
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return string(body), nil
}
