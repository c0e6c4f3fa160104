package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/innovatube/video-api/internal/core/domain"
	"github.com/innovatube/video-api/internal/core/ports"
)

// SearchService proxies queries to the external video search provider and
// annotates each result against the caller's favorite set. The annotation
// is a pure read; it never mutates the favorites store.
type SearchService struct {
	provider  ports.VideoSearchProvider
	favorites ports.FavoriteRepository
	logger    zerolog.Logger
}

func NewSearchService(provider ports.VideoSearchProvider, favorites ports.FavoriteRepository, logger zerolog.Logger) *SearchService {
	return &SearchService{provider: provider, favorites: favorites, logger: logger}
}

func (s *SearchService) Search(ctx context.Context, userID int64, query string) ([]domain.Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	videos, err := s.provider.Search(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("provider search failed")
		return nil, err
	}

	favoriteIDs, err := s.favorites.ListVideoIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorite set: %w", err)
	}

	for i := range videos {
		_, videos[i].IsFavorite = favoriteIDs[videos[i].ID]
	}

	return videos, nil
}
