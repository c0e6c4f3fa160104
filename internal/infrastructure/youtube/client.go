// Package youtube implements the video search provider boundary against the
// YouTube Data API v3 search endpoint.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/innovatube/video-api/internal/core/domain"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultTimeout = 10 * time.Second
	maxResults     = "25"
)

// Config holds the provider settings. BaseURL is overridable for tests.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// searchResponse mirrors the subset of the search.list payload we consume.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search queries the provider for videos matching q. Transport failures and
// non-200 responses are both collapsed into domain.ErrProviderUnavailable;
// the underlying cause is wrapped for logging, not for the client.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Video, error) {
	endpoint, err := c.buildURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrProviderUnavailable, err)
	}

	videos := make([]domain.Video, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.ID.VideoID == "" {
			continue
		}
		thumbnail := item.Snippet.Thumbnails.Medium.URL
		if thumbnail == "" {
			thumbnail = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, domain.Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ThumbnailURL: thumbnail,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}

	return videos, nil
}

func (c *Client) buildURL(query string) (string, error) {
	u, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("maxResults", maxResults)
	q.Set("q", query)
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
