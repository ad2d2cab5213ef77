package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// Kind classifies a user-supplied URL.
type Kind int

const (
	KindInvalid Kind = iota
	KindYouTube
	KindPodcastFeed
)

var ErrInvalidFormat = errors.New("could not extract a video id from the URL")

// Ordered id-capturing patterns: query-parameter form, short-link form,
// embed form. First successful capture wins.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
}

var reFeedSuffix = regexp.MustCompile(`(?i)\.(rss|xml|feed)(\?.*)?$`)

// Classify buckets a raw URL as YouTube, a podcast feed, or invalid.
// The podcast check is heuristic, not a format guarantee.
func Classify(raw string) Kind {
	s := strings.TrimSpace(raw)
	if s == "" {
		return KindInvalid
	}
	if _, err := ExtractVideoID(s); err == nil {
		return KindYouTube
	}
	lower := strings.ToLower(s)
	if reFeedSuffix.MatchString(lower) || strings.Contains(lower, "feed") || strings.Contains(lower, "podcast") {
		return KindPodcastFeed
	}
	return KindInvalid
}

// ExtractVideoID returns the 11-character video id embedded in any of the
// accepted URL shapes, or ErrInvalidFormat when none match.
func ExtractVideoID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for _, re := range idPatterns {
		if g := re.FindStringSubmatch(s); g != nil {
			return g[1], nil
		}
	}
	return "", ErrInvalidFormat
}
