package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/innovatube/video-api/internal/core/domain"
)

type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List returns the user's favorites ordered by insertion time. The optional
// search term is matched case-insensitively against title and channel title.
func (r *FavoriteRepository) List(ctx context.Context, userID int64, search string) ([]domain.Favorite, error) {
	query := `SELECT user_id, video_id, title, thumbnail_url, channel_title, created_at
	          FROM favorites
	          WHERE user_id = $1`
	args := []any{userID}

	if search != "" {
		query += ` AND (title ILIKE '%' || $2 || '%' OR channel_title ILIKE '%' || $2 || '%')`
		args = append(args, search)
	}
	query += ` ORDER BY created_at, video_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []domain.Favorite{}
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.UserID, &f.VideoID, &f.Title, &f.ThumbnailURL, &f.ChannelTitle, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, nil
}

func (r *FavoriteRepository) ListVideoIDs(ctx context.Context, userID int64) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT video_id FROM favorites WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}

	return ids, nil
}

// Upsert inserts the favorite. The primary key on (user_id, video_id) plus
// DO NOTHING makes duplicate inserts a no-op, including under concurrent
// requests for the same pair.
func (r *FavoriteRepository) Upsert(ctx context.Context, fav *domain.Favorite) error {
	query := `INSERT INTO favorites (user_id, video_id, title, thumbnail_url, channel_title, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (user_id, video_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query,
		fav.UserID, fav.VideoID, fav.Title, fav.ThumbnailURL, fav.ChannelTitle, fav.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}

	return nil
}

// Delete is unconditionally idempotent: no rows affected is success.
func (r *FavoriteRepository) Delete(ctx context.Context, userID int64, videoID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND video_id = $2`, userID, videoID,
	); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}
