package domain

import "errors"

var (
	ErrEmptyQuery          = errors.New("search query is required")
	ErrProviderUnavailable = errors.New("video search provider unavailable")
)

// Video is a single search result from the upstream provider, annotated
// with whether the requesting user has saved it.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ChannelTitle string `json:"channelTitle"`
	IsFavorite   bool   `json:"isFavorite"`
}
