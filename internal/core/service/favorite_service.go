package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/innovatube/video-api/internal/core/domain"
	"github.com/innovatube/video-api/internal/core/ports"
)

// FavoriteService implements the favorites use cases. Uniqueness of the
// (user, video) pair is delegated to the store's conflict policy, so both
// Add and Remove are idempotent under concurrent requests.
type FavoriteService struct {
	repo   ports.FavoriteRepository
	logger zerolog.Logger
}

func NewFavoriteService(repo ports.FavoriteRepository, logger zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, logger: logger}
}

func (s *FavoriteService) List(ctx context.Context, userID int64, search string) ([]domain.Favorite, error) {
	return s.repo.List(ctx, userID, search)
}

// Add saves a video reference for the user. Inserting a duplicate is
// silently absorbed rather than rejected.
func (s *FavoriteService) Add(ctx context.Context, userID int64, input ports.AddFavoriteInput) (*domain.Favorite, error) {
	if input.VideoID == "" {
		return nil, domain.ErrMissingVideoID
	}

	fav := &domain.Favorite{
		UserID:       userID,
		VideoID:      input.VideoID,
		Title:        input.Title,
		ThumbnailURL: input.ThumbnailURL,
		ChannelTitle: input.ChannelTitle,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, fav); err != nil {
		s.logger.Error().Err(err).Str("video_id", input.VideoID).Msg("failed to save favorite")
		return nil, err
	}

	return fav, nil
}

// Remove deletes the favorite. Removing one that was never added succeeds.
func (s *FavoriteService) Remove(ctx context.Context, userID int64, videoID string) error {
	if err := s.repo.Delete(ctx, userID, videoID); err != nil {
		s.logger.Error().Err(err).Str("video_id", videoID).Msg("failed to delete favorite")
		return err
	}

	return nil
}
