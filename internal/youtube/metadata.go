package youtube

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultOEmbedEndpoint = "https://www.youtube.com/oembed"

// Metadata is the small slice of oEmbed data the digest shows.
type Metadata struct {
	Title     string `json:"title"`
	Author    string `json:"author_name"`
	Thumbnail string `json:"thumbnail_url"`
}

// fallbackMetadata is used whenever the oEmbed call fails in any way.
// Metadata is best-effort and never fails the pipeline.
var fallbackMetadata = Metadata{Title: "Video", Author: "Unknown"}

// MetadataClient fetches video metadata from the YouTube oEmbed endpoint.
type MetadataClient struct {
	Endpoint string
	HTTP     *http.Client
}

func NewMetadataClient() *MetadataClient {
	return &MetadataClient{
		Endpoint: defaultOEmbedEndpoint,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch returns the video's title, author, and thumbnail. On any failure
// (transport, non-2xx, malformed body) it returns the fixed fallback record
// instead of an error.
func (c *MetadataClient) Fetch(ctx context.Context, videoID string) Metadata {
	watchURL := "https://www.youtube.com/watch?v=" + videoID
	u := c.Endpoint + "?url=" + url.QueryEscape(watchURL) + "&format=json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("oembed: build request: %v", err)
		return fallbackMetadata
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("oembed: %v", err)
		return fallbackMetadata
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("oembed: status %d for %s", resp.StatusCode, videoID)
		return fallbackMetadata
	}
	var m Metadata
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		log.Printf("oembed: decode: %v", err)
		return fallbackMetadata
	}
	if m.Title == "" {
		m.Title = fallbackMetadata.Title
	}
	if m.Author == "" {
		m.Author = fallbackMetadata.Author
	}
	return m
}
