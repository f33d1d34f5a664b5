package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"twitterclone/internal/models"

	"github.com/jmoiron/sqlx"
)

type tokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Replace - у пользователя ровно один активный refresh token:
// старый удаляется перед вставкой нового, прежний становится недействительным
func (r *tokenRepository) Replace(ctx context.Context, userID, token string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении старого refresh token: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO refresh_tokens (token, user_id) VALUES ($1, $2)
	`, token, userID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении refresh token: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *tokenRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("ошибка при удалении refresh token: %w", err)
	}

	return nil
}

func (r *tokenRepository) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken

	query := `SELECT * FROM refresh_tokens WHERE token = $1`

	err := r.db.GetContext(ctx, &refreshToken, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewUnauthorizedError("Refresh token не найден")
		}
		return nil, fmt.Errorf("ошибка при получении refresh token: %w", err)
	}

	return &refreshToken, nil
}
