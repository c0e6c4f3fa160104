package ports

import (
	"context"

	"github.com/innovatube/video-api/internal/core/domain"
)

// VideoSearchProvider is the external search API boundary. Implementations
// return results with IsFavorite unset; annotation happens in the service.
type VideoSearchProvider interface {
	Search(ctx context.Context, query string) ([]domain.Video, error)
}

type SearchService interface {
	// Search proxies the query to the provider and marks each result's
	// IsFavorite flag against the user's current favorite set.
	Search(ctx context.Context, userID int64, query string) ([]domain.Video, error)
}
