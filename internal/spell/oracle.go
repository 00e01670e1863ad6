// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package spell corrects OCR-damaged words at the token level using a
// pluggable dictionary oracle.
package spell

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/reflow-engine/internal/httputil"
	"github.com/pdiddy/reflow-engine/pkg/types"
)

// Oracle answers spelling queries. Implementations must be safe for
// concurrent use.
type Oracle interface {
	IsMisspelled(ctx context.Context, word string) (bool, error)
	Suggest(ctx context.Context, word string) ([]string, error)
}

// HTTPOracle queries a remote dictionary service over HTTP. Transient
// failures (429, 5xx) are retried with exponential backoff.
type HTTPOracle struct {
	baseURL    string
	client     *http.Client
	maxRetries int
}

// NewHTTPOracle creates an oracle for the service at cfg.ServiceURL.
// Returns an error when the URL is empty or unparseable so callers can
// fall back to a local oracle.
func NewHTTPOracle(cfg types.SpellerConfig) (*HTTPOracle, error) {
	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("speller service URL is empty")
	}
	if _, err := url.Parse(cfg.ServiceURL); err != nil {
		return nil, fmt.Errorf("invalid speller service URL %q: %w", cfg.ServiceURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPOracle{
		baseURL:    strings.TrimRight(cfg.ServiceURL, "/"),
		client:     &http.Client{Timeout: timeout},
		maxRetries: cfg.MaxRetries,
	}, nil
}

type checkResponse struct {
	Misspelled bool `json:"misspelled"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// IsMisspelled asks the service whether word is misspelled.
func (o *HTTPOracle) IsMisspelled(ctx context.Context, word string) (bool, error) {
	u := fmt.Sprintf("%s/check?word=%s", o.baseURL, url.QueryEscape(word))

	var resp checkResponse
	if err := httputil.GetJSON(ctx, o.client, u, o.maxRetries, &resp); err != nil {
		return false, fmt.Errorf("failed to check word %q: %w", word, err)
	}

	return resp.Misspelled, nil
}

// Suggest returns the service's ranked corrections for word.
func (o *HTTPOracle) Suggest(ctx context.Context, word string) ([]string, error) {
	u := fmt.Sprintf("%s/suggest?word=%s", o.baseURL, url.QueryEscape(word))

	var resp suggestResponse
	if err := httputil.GetJSON(ctx, o.client, u, o.maxRetries, &resp); err != nil {
		return nil, fmt.Errorf("failed to get suggestions for %q: %w", word, err)
	}

	return resp.Suggestions, nil
}
