// Package digest runs the transcript pipeline end to end: classify the URL,
// extract the video id, fetch the transcript through the provider chain,
// summarize, and attach best-effort metadata. It knows nothing about how the
// result is rendered.
package digest

import (
	"context"
	"errors"
	"fmt"

	"github.com/techntrails/bitcoin-price-chart/internal/summarize"
	"github.com/techntrails/bitcoin-price-chart/internal/transcript"
	"github.com/techntrails/bitcoin-price-chart/internal/youtube"
)

var (
	ErrInvalidURL = errors.New("not a recognized video URL")
	// Podcast feeds are detected but need a server-side fetcher we don't have.
	ErrPodcastFeed = errors.New("podcast feeds need a server-side fetcher and aren't supported")
)

// Result is the display-ready digest payload.
type Result struct {
	VideoInfo  youtube.Metadata
	Summary    string
	KeyPoints  []string
	WordCount  int
	Transcript string
}

type Service struct {
	transcripts *transcript.Fetcher
	metadata    *youtube.MetadataClient
}

func NewService() *Service {
	return &Service{
		transcripts: transcript.NewFetcher(),
		metadata:    youtube.NewMetadataClient(),
	}
}

// NewServiceWith wires explicit collaborators, mainly for tests.
func NewServiceWith(t *transcript.Fetcher, m *youtube.MetadataClient) *Service {
	return &Service{transcripts: t, metadata: m}
}

// Digest runs the whole pipeline for a raw URL. Classification, id
// extraction, transcript fetch, and summarization failures abort the request;
// a metadata failure only degrades the VideoInfo to placeholders.
func (s *Service) Digest(ctx context.Context, rawURL string) (Result, error) {
	switch youtube.Classify(rawURL) {
	case youtube.KindPodcastFeed:
		return Result{}, ErrPodcastFeed
	case youtube.KindInvalid:
		return Result{}, ErrInvalidURL
	}

	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", err, rawURL)
	}

	text, err := s.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return Result{}, err
	}

	sum, err := summarize.Summarize(text)
	if err != nil {
		return Result{}, err
	}

	return Result{
		VideoInfo:  s.metadata.Fetch(ctx, videoID),
		Summary:    sum.Summary,
		KeyPoints:  sum.KeyPoints,
		WordCount:  sum.WordCount,
		Transcript: text,
	}, nil
}
