package handler

import "github.com/innovatube/video-api/internal/core/domain"

// Response-only types are owned by the transport layer so the JSON contract
// is not coupled to internal domain changes.

func toFavoriteResponse(f domain.Favorite) favoriteResponse {
	return favoriteResponse{
		VideoID:      f.VideoID,
		Title:        f.Title,
		ThumbnailURL: f.ThumbnailURL,
		ChannelTitle: f.ChannelTitle,
		CreatedAt:    f.CreatedAt.UTC(),
	}
}

func toFavoriteListResponse(favorites []domain.Favorite) []favoriteResponse {
	out := make([]favoriteResponse, len(favorites))
	for i, f := range favorites {
		out[i] = toFavoriteResponse(f)
	}
	return out
}

func toVideoListResponse(videos []domain.Video) []videoResponse {
	out := make([]videoResponse, len(videos))
	for i, v := range videos {
		out[i] = videoResponse{
			ID:           v.ID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			ChannelTitle: v.ChannelTitle,
			IsFavorite:   v.IsFavorite,
		}
	}
	return out
}
