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

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Like(ctx context.Context, userID, tweetID string) (*models.Like, error) {
	// идемпотентный upsert: два конкурентных лайка сходятся к одной записи,
	// DO UPDATE нужен чтобы RETURNING отдал существующую строку
	query := `
		INSERT INTO likes (like_id, user_id, tweet_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, tweet_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING like_id, user_id, tweet_id, created_at
	`

	var like models.Like
	err := r.db.GetContext(ctx, &like, query, uuid.New().String(), userID, tweetID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании лайка: %w", err)
	}

	return &like, nil
}

func (r *likeRepository) Unlike(ctx context.Context, likeID string) error {
	query := `DELETE FROM likes WHERE like_id = $1`

	result, err := r.db.ExecContext(ctx, query, likeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFoundError("Лайк не найден")
	}

	return nil
}

func (r *likeRepository) GetByID(ctx context.Context, likeID string) (*models.Like, error) {
	var like models.Like

	query := `SELECT * FROM likes WHERE like_id = $1`

	err := r.db.GetContext(ctx, &like, query, likeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Лайк не найден")
		}
		return nil, fmt.Errorf("ошибка при получении лайка: %w", err)
	}

	return &like, nil
}
