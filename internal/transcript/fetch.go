package transcript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// minLength is the acceptance gate: a fetched transcript shorter than this is
// treated as a miss and the next provider is tried.
const minLength = 50

// ErrUnavailable means every provider was exhausted without an acceptable
// transcript.
var ErrUnavailable = errors.New("transcript unavailable")

// Provider is one retrieval strategy: it only knows how to build the request
// URL for a video id. The direct timedtext call is usually enough, but the
// relays paper over networks where Google endpoints are blocked.
type Provider struct {
	Name string
	URL  func(videoID string) string
}

func timedTextURL(videoID string) string {
	return "https://video.google.com/timedtext?lang=en&v=" + url.QueryEscape(videoID)
}

// DefaultProviders is the fixed fallback order: direct call, then two relays
// wrapping the same endpoint.
func DefaultProviders() []Provider {
	return []Provider{
		{Name: "timedtext", URL: timedTextURL},
		{Name: "allorigins", URL: func(id string) string {
			return "https://api.allorigins.win/raw?url=" + url.QueryEscape(timedTextURL(id))
		}},
		{Name: "corsproxy", URL: func(id string) string {
			return "https://corsproxy.io/?" + url.QueryEscape(timedTextURL(id))
		}},
	}
}

// Fetcher walks an ordered provider chain until one yields a transcript that
// passes the length gate.
type Fetcher struct {
	Providers []Provider
	HTTP      *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Providers: DefaultProviders(),
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch tries each provider in order and returns the first parsed transcript
// longer than the gate. Individual misses are logged, not surfaced; when the
// chain is exhausted a single aggregated error comes back. No retries within
// a provider, no backoff.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	var misses []string
	for _, p := range f.Providers {
		text, err := f.fetchOne(ctx, p, videoID)
		if err != nil {
			log.Printf("transcript: %s: %v", p.Name, err)
			misses = append(misses, fmt.Sprintf("%s: %v", p.Name, err))
			continue
		}
		if len(text) <= minLength {
			log.Printf("transcript: %s: too short (%d chars)", p.Name, len(text))
			misses = append(misses, fmt.Sprintf("%s: transcript too short", p.Name))
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("%w for video %s (tried %s) — the video may have no English captions, or captions may be disabled; try a different video",
		ErrUnavailable, videoID, strings.Join(misses, "; "))
}

func (f *Fetcher) fetchOne(ctx context.Context, p Provider, videoID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(videoID), nil)
	if err != nil {
		return "", err
	}
	resp, err := f.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return ParseTimedText(string(body)), nil
}
