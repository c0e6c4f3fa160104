package ports

import (
	"context"

	"github.com/innovatube/video-api/internal/core/domain"
)

// AddFavoriteInput carries the video reference to save.
type AddFavoriteInput struct {
	VideoID      string
	Title        string
	ThumbnailURL string
	ChannelTitle string
}

type FavoriteService interface {
	List(ctx context.Context, userID int64, search string) ([]domain.Favorite, error)
	Add(ctx context.Context, userID int64, input AddFavoriteInput) (*domain.Favorite, error)
	Remove(ctx context.Context, userID int64, videoID string) error
}
