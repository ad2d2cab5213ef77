package youtube

import (
	"errors"
	"testing"
)

func TestExtractVideoID_AllShapes(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch extra params", "https://www.youtube.com/watch?t=42&v=dQw4w9WgXcQ&list=PL1"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?si=abc"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ExtractVideoID(tc.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != "dQw4w9WgXcQ" {
				t.Errorf("got id %q, want dQw4w9WgXcQ", id)
			}
		})
	}
}

func TestExtractVideoID_Invalid(t *testing.T) {
	for _, u := range []string{
		"",
		"https://example.com",
		"https://www.youtube.com/watch?v=short",
		"https://youtu.be/",
	} {
		if _, err := ExtractVideoID(u); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ExtractVideoID(%q): want ErrInvalidFormat, got %v", u, err)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		url  string
		want Kind
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", KindYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", KindYouTube},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", KindYouTube},
		{"https://example.com/show.rss", KindPodcastFeed},
		{"https://example.com/episodes.xml", KindPodcastFeed},
		{"https://example.com/all.feed", KindPodcastFeed},
		{"https://example.com/FEED/latest", KindPodcastFeed},
		{"https://example.com/my-podcast", KindPodcastFeed},
		{"https://example.com/article", KindInvalid},
		{"not a url", KindInvalid},
		{"", KindInvalid},
	}
	for _, tc := range cases {
		if got := Classify(tc.url); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}
