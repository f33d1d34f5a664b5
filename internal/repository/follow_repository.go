package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, userID, followedUserID string) error {
	// повторная подписка не создаёт второе ребро
	query := `
		INSERT INTO followers (user_id, followed_user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, followed_user_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, followedUserID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, userID, followedUserID string) error {
	query := `DELETE FROM followers WHERE user_id = $1 AND followed_user_id = $2`

	// отписка от того, на кого не подписан - no-op
	_, err := r.db.ExecContext(ctx, query, userID, followedUserID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *followRepository) GetFollowedUserIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string

	query := `SELECT followed_user_id FROM followers WHERE user_id = $1`

	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return ids, nil
}
