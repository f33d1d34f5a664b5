package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"twitterclone/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type bookmarkRepository struct {
	db *sqlx.DB
}

func NewBookmarkRepository(db *sqlx.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Bookmark(ctx context.Context, userID, tweetID string) (*models.Bookmark, error) {
	query := `
		INSERT INTO bookmarks (bookmark_id, user_id, tweet_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, tweet_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING bookmark_id, user_id, tweet_id, created_at
	`

	var bookmark models.Bookmark
	err := r.db.GetContext(ctx, &bookmark, query, uuid.New().String(), userID, tweetID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании закладки: %w", err)
	}

	return &bookmark, nil
}

func (r *bookmarkRepository) Unbookmark(ctx context.Context, bookmarkID string) error {
	query := `DELETE FROM bookmarks WHERE bookmark_id = $1`

	result, err := r.db.ExecContext(ctx, query, bookmarkID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении закладки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFoundError("Закладка не найдена")
	}

	return nil
}

func (r *bookmarkRepository) GetByID(ctx context.Context, bookmarkID string) (*models.Bookmark, error) {
	var bookmark models.Bookmark

	query := `SELECT * FROM bookmarks WHERE bookmark_id = $1`

	err := r.db.GetContext(ctx, &bookmark, query, bookmarkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Закладка не найдена")
		}
		return nil, fmt.Errorf("ошибка при получении закладки: %w", err)
	}

	return &bookmark, nil
}
