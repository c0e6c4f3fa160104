package ports

import (
	"context"

	"github.com/innovatube/video-api/internal/core/domain"
)

// FavoriteRepository defines persistence operations for favorites.
// All queries are scoped to a single user id; there is no cross-user path.
type FavoriteRepository interface {
	// List returns the user's favorites in insertion order. When search is
	// non-empty, rows are filtered by case-insensitive substring match on
	// title or channel title.
	List(ctx context.Context, userID int64, search string) ([]domain.Favorite, error)
	// ListVideoIDs returns the set of video ids the user has saved.
	ListVideoIDs(ctx context.Context, userID int64) (map[string]struct{}, error)
	// Upsert inserts the favorite; a duplicate (user_id, video_id) pair is
	// silently absorbed by the store's conflict policy.
	Upsert(ctx context.Context, fav *domain.Favorite) error
	// Delete removes the favorite if present. Deleting a missing row is not
	// an error.
	Delete(ctx context.Context, userID int64, videoID string) error
}
