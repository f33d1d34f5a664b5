package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type hashtagRepository struct {
	db *sqlx.DB
}

func NewHashtagRepository(db *sqlx.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

// UpsertByNames - хештег создаётся лениво при первом использовании,
// DO UPDATE нужен чтобы RETURNING отдал id уже существующего имени
func (r *hashtagRepository) UpsertByNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}

	query := `
		INSERT INTO hashtags (hashtag_id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING hashtag_id
	`

	ids := make([]string, 0, len(names))
	for _, name := range names {
		var hashtagID string
		err := r.db.GetContext(ctx, &hashtagID, query, uuid.New().String(), name)
		if err != nil {
			return nil, fmt.Errorf("ошибка при создании хештега %s: %w", name, err)
		}
		ids = append(ids, hashtagID)
	}

	return ids, nil
}
