// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jsonwatch/jsonwatch/internal/log"
)

// DefaultUserAgent is sent when the caller does not override it. Some JSON
// endpoints refuse unknown agents, so a curl identity is the least likely to
// be rejected.
const DefaultUserAgent = "curl/7.58.0"

// URL samples by fetching an HTTP(S) URL with GET.
type URL struct {
	URL       string
	UserAgent string
	Headers   []string

	client *http.Client
}

// NewURL returns a URL sampler. Headers are raw "Name: value" strings; a
// header without a colon is ignored.
func NewURL(url, userAgent string, headers []string) *URL {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &URL{
		URL:       url,
		UserAgent: userAgent,
		Headers:   headers,
		client:    &http.Client{},
	}
}

// Sample fetches the URL and returns the response body, capped at
// MaxBodySize. A status of 400 or above is an error.
func (u *URL) Sample(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", u.UserAgent)
	for _, h := range u.Headers {
		name, val, ok := strings.Cut(h, ":")
		if !ok {
			log.Warnf("ignoring malformed header %q", h)
			continue
		}
		req.Header.Set(strings.TrimSpace(name), strings.TrimSpace(val))
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", u.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%s returned status %s", u.URL, resp.Status)
	}

	body, err := readCapped(resp.Body, MaxBodySize)
	if err != nil {
		return "", err
	}
	log.Debugf("fetched %s: %s", u.URL, humanize.IBytes(uint64(len(body))))

	return body, nil
}
