package handler

import "time"

type addFavoriteRequest struct {
	VideoID      string `json:"id"           validate:"required"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ChannelTitle string `json:"channelTitle"`
}

type favoriteResponse struct {
	VideoID      string    `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	ChannelTitle string    `json:"channelTitle"`
	CreatedAt    time.Time `json:"created_at"`
}

type videoResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	ChannelTitle string `json:"channelTitle"`
	IsFavorite   bool   `json:"isFavorite"`
}
