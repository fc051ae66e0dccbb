/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"bennypowers.dev/tokencss/internal/version"
)

const (
	// DefaultTimeout is the maximum time to wait for a network fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed snapshot size (32 MB).
	DefaultMaxSize int64 = 32 * 1024 * 1024
)

// Fetcher fetches a remote snapshot document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches content over HTTP with size limiting.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the given maximum response size
// and a client timeout of DefaultTimeout.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Fetch fetches content from the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}

	req.Header.Set("User-Agent", "tokencss/"+version.Get())
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: %s", ErrFetch, url, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, f.maxSize+1)
	content, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	if int64(len(content)) > f.maxSize {
		return nil, fmt.Errorf("%w: response from %s exceeds maximum size of %d bytes", ErrFetch, url, f.maxSize)
	}

	return content, nil
}
