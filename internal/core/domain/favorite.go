package domain

import (
	"errors"
	"time"
)

var ErrMissingVideoID = errors.New("video id is required")

// Favorite is a user's saved reference to an externally-sourced video.
// Uniqueness is enforced on (UserID, VideoID) by the store.
type Favorite struct {
	UserID       int64     `json:"-"`
	VideoID      string    `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	ChannelTitle string    `json:"channelTitle"`
	CreatedAt    time.Time `json:"created_at"`
}
