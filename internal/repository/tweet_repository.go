package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"twitterclone/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type tweetRepository struct {
	db *sqlx.DB
}

type SearchRequest struct {
	ViewerID  string
	Content   string
	MediaType *models.MediaType
	AuthorIDs []string // не nil только при фильтре people_followed
	Limit     int
	Page      int
}

func NewTweetRepository(db *sqlx.DB) TweetRepository {
	return &tweetRepository{db: db}
}

// engagementColumns - счётчики вовлечённости, считаются точными подзапросами
const engagementColumns = `
		(SELECT COUNT(*) FROM bookmarks b WHERE b.tweet_id = t.tweet_id) AS bookmarks,
		(SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.tweet_id) AS likes,
		(SELECT COUNT(*) FROM tweets c WHERE c.parent_id = t.tweet_id AND c.type = 1) AS retweet_count,
		(SELECT COUNT(*) FROM tweets c WHERE c.parent_id = t.tweet_id AND c.type = 2) AS comment_count,
		(SELECT COUNT(*) FROM tweets c WHERE c.parent_id = t.tweet_id AND c.type = 3) AS quote_count`

// audienceClause - кто видит твит: все, либо автор и его circle
const audienceClause = `
		(
			t.audience = 0
			OR (
				t.audience = 1
				AND (
					t.user_id = %[1]s
					OR EXISTS (
						SELECT 1 FROM twitter_circle tc
						WHERE tc.user_id = t.user_id AND tc.member_id = %[1]s
					)
				)
			)
		)`

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet, hashtagIDs, mentionIDs []string, medias []models.Media) error {
	if tweet.TweetID == "" {
		tweet.TweetID = uuid.New().String()
	}

	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tweets
		(tweet_id, user_id, type, audience, content, parent_id, guest_views, user_views, created_at, updated_at)
		VALUES
		(:tweet_id, :user_id, :type, :audience, :content, :parent_id, :guest_views, :user_views, :created_at, :updated_at)
	`

	_, err = tx.NamedExecContext(ctx, query, tweet)
	if err != nil {
		return fmt.Errorf("ошибка при создании твита: %w", err)
	}

	for _, hashtagID := range hashtagIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tweet_hashtags (tweet_id, hashtag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, tweet.TweetID, hashtagID)
		if err != nil {
			return fmt.Errorf("ошибка при привязке хештега: %w", err)
		}
	}

	for _, mentionID := range mentionIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tweet_mentions (tweet_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, tweet.TweetID, mentionID)
		if err != nil {
			return fmt.Errorf("ошибка при привязке упоминания: %w", err)
		}
	}

	for _, media := range medias {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tweet_medias (media_id, tweet_id, url, type) VALUES ($1, $2, $3, $4)
		`, uuid.New().String(), tweet.TweetID, media.URL, media.Type)
		if err != nil {
			return fmt.Errorf("ошибка при сохранении медиа: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, tweetID string) (*models.Tweet, error) {
	var tweet models.Tweet

	query := `SELECT * FROM tweets WHERE tweet_id = $1`

	err := r.db.GetContext(ctx, &tweet, query, tweetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Твит не найден")
		}
		return nil, fmt.Errorf("ошибка при получении твита: %w", err)
	}

	return &tweet, nil
}

func (r *tweetRepository) GetDetail(ctx context.Context, tweetID string) (*models.TweetDetail, error) {
	query := `
		SELECT t.*,` + engagementColumns + `
		FROM tweets t
		WHERE t.tweet_id = $1
	`

	var detail models.TweetDetail
	err := r.db.GetContext(ctx, &detail, query, tweetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Твит не найден")
		}
		return nil, fmt.Errorf("ошибка при получении твита: %w", err)
	}

	details := []models.TweetDetail{detail}
	if err := r.attach(ctx, details, false); err != nil {
		return nil, err
	}

	return &details[0], nil
}

func (r *tweetRepository) GetChildren(ctx context.Context, parentID string, tweetType models.TweetType, limit, page int) ([]models.TweetDetail, int64, error) {
	query := `
		SELECT t.*,` + engagementColumns + `
		FROM tweets t
		WHERE t.parent_id = $1 AND t.type = $2
		ORDER BY t.created_at DESC, t.tweet_id DESC
		LIMIT $3 OFFSET $4
	`

	var details []models.TweetDetail
	err := r.db.SelectContext(ctx, &details, query, parentID, tweetType, limit, limit*(page-1))
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении дочерних твитов: %w", err)
	}

	var total int64
	err = r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM tweets WHERE parent_id = $1 AND type = $2
	`, parentID, tweetType)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при подсчёте дочерних твитов: %w", err)
	}

	if err := r.attach(ctx, details, false); err != nil {
		return nil, 0, err
	}

	return details, total, nil
}

func (r *tweetRepository) GetNewsFeed(ctx context.Context, viewerID string, authorIDs []string, limit, page int) ([]models.TweetDetail, int64, error) {
	visibility := fmt.Sprintf(audienceClause, "$2")

	query := `
		SELECT t.*,` + engagementColumns + `
		FROM tweets t
		WHERE t.user_id = ANY($1::uuid[])
		AND` + visibility + `
		ORDER BY t.created_at DESC, t.tweet_id DESC
		LIMIT $3 OFFSET $4
	`

	var details []models.TweetDetail
	err := r.db.SelectContext(ctx, &details, query, pq.Array(authorIDs), viewerID, limit, limit*(page-1))
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	// общее количество считается тем же фильтром без пагинации
	totalQuery := `
		SELECT COUNT(*)
		FROM tweets t
		WHERE t.user_id = ANY($1::uuid[])
		AND` + visibility + `
	`

	var total int64
	err = r.db.GetContext(ctx, &total, totalQuery, pq.Array(authorIDs), viewerID)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при подсчёте ленты: %w", err)
	}

	if err := r.attach(ctx, details, true); err != nil {
		return nil, 0, err
	}

	return details, total, nil
}

func (r *tweetRepository) Search(ctx context.Context, req SearchRequest) ([]models.TweetDetail, error) {
	conditions := []string{
		`to_tsvector('simple', t.content) @@ plainto_tsquery('simple', $1)`,
	}
	args := []interface{}{req.Content, req.ViewerID}

	conditions = append(conditions, fmt.Sprintf(audienceClause, "$2"))

	if req.MediaType != nil {
		args = append(args, *req.MediaType)
		conditions = append(conditions, fmt.Sprintf(`
			EXISTS (SELECT 1 FROM tweet_medias m WHERE m.tweet_id = t.tweet_id AND m.type = $%d)`, len(args)))
	}

	if req.AuthorIDs != nil {
		args = append(args, pq.Array(req.AuthorIDs))
		conditions = append(conditions, fmt.Sprintf(`t.user_id = ANY($%d::uuid[])`, len(args)))
	}

	args = append(args, req.Limit, req.Limit*(req.Page-1))

	query := `
		SELECT t.*,` + engagementColumns + `
		FROM tweets t
		WHERE ` + strings.Join(conditions, "\n\t\tAND ") + fmt.Sprintf(`
		ORDER BY t.created_at DESC, t.tweet_id DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	var details []models.TweetDetail
	err := r.db.SelectContext(ctx, &details, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске твитов: %w", err)
	}

	if err := r.attach(ctx, details, true); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *tweetRepository) IncreaseView(ctx context.Context, tweetID string, authenticated bool) (*models.ViewResult, error) {
	column := "guest_views"
	if authenticated {
		column = "user_views"
	}

	// атомарный инкремент на стороне БД, без read-modify-write
	query := fmt.Sprintf(`
		UPDATE tweets
		SET %s = %s + 1, updated_at = now()
		WHERE tweet_id = $1
		RETURNING tweet_id, guest_views, user_views, updated_at
	`, column, column)

	var result models.ViewResult
	err := r.db.GetContext(ctx, &result, query, tweetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Твит не найден")
		}
		return nil, fmt.Errorf("ошибка при инкременте просмотров: %w", err)
	}

	return &result, nil
}

func (r *tweetRepository) IncreaseViews(ctx context.Context, tweetIDs []string, authenticated bool) (time.Time, error) {
	now := time.Now()
	if len(tweetIDs) == 0 {
		return now, nil
	}

	column := "guest_views"
	if authenticated {
		column = "user_views"
	}

	query := fmt.Sprintf(`
		UPDATE tweets
		SET %s = %s + 1, updated_at = $2
		WHERE tweet_id = ANY($1::uuid[])
	`, column, column)

	_, err := r.db.ExecContext(ctx, query, pq.Array(tweetIDs), now)
	if err != nil {
		return now, fmt.Errorf("ошибка при инкременте просмотров: %w", err)
	}

	return now, nil
}

// attach - денормализация: имена хештегов, сводки упоминаний, медиа и автор
func (r *tweetRepository) attach(ctx context.Context, details []models.TweetDetail, withAuthor bool) error {
	if len(details) == 0 {
		return nil
	}

	index := make(map[string]*models.TweetDetail, len(details))
	ids := make([]string, 0, len(details))
	for i := range details {
		details[i].Hashtags = []string{}
		details[i].Mentions = []models.MentionSummary{}
		details[i].Medias = []models.Media{}
		index[details[i].TweetID] = &details[i]
		ids = append(ids, details[i].TweetID)
	}

	var hashtagRows []struct {
		TweetID string `db:"tweet_id"`
		Name    string `db:"name"`
	}
	err := r.db.SelectContext(ctx, &hashtagRows, `
		SELECT th.tweet_id, h.name
		FROM tweet_hashtags th
		JOIN hashtags h ON h.hashtag_id = th.hashtag_id
		WHERE th.tweet_id = ANY($1::uuid[])
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("ошибка при получении хештегов: %w", err)
	}
	for _, row := range hashtagRows {
		detail := index[row.TweetID]
		detail.Hashtags = append(detail.Hashtags, row.Name)
	}

	var mentionRows []struct {
		TweetID string `db:"tweet_id"`
		UserID  string `db:"user_id"`
		Name    string `db:"name"`
		Email   string `db:"email"`
	}
	err = r.db.SelectContext(ctx, &mentionRows, `
		SELECT tm.tweet_id, u.user_id, u.name, u.email
		FROM tweet_mentions tm
		JOIN users u ON u.user_id = tm.user_id
		WHERE tm.tweet_id = ANY($1::uuid[])
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("ошибка при получении упоминаний: %w", err)
	}
	for _, row := range mentionRows {
		detail := index[row.TweetID]
		detail.Mentions = append(detail.Mentions, models.MentionSummary{
			UserID: row.UserID,
			Name:   row.Name,
			Email:  row.Email,
		})
	}

	var mediaRows []struct {
		TweetID string           `db:"tweet_id"`
		URL     string           `db:"url"`
		Type    models.MediaType `db:"type"`
	}
	err = r.db.SelectContext(ctx, &mediaRows, `
		SELECT tweet_id, url, type FROM tweet_medias WHERE tweet_id = ANY($1::uuid[])
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("ошибка при получении медиа: %w", err)
	}
	for _, row := range mediaRows {
		detail := index[row.TweetID]
		detail.Medias = append(detail.Medias, models.Media{URL: row.URL, Type: row.Type})
	}

	if !withAuthor {
		return nil
	}

	authorIDs := make([]string, 0, len(details))
	seen := make(map[string]bool, len(details))
	for i := range details {
		if !seen[details[i].UserID] {
			seen[details[i].UserID] = true
			authorIDs = append(authorIDs, details[i].UserID)
		}
	}

	var authors []models.AuthorSummary
	err = r.db.SelectContext(ctx, &authors, `
		SELECT user_id, name, email, bio, location, website, avatar
		FROM users
		WHERE user_id = ANY($1::uuid[])
	`, pq.Array(authorIDs))
	if err != nil {
		return fmt.Errorf("ошибка при получении авторов: %w", err)
	}

	byID := make(map[string]models.AuthorSummary, len(authors))
	for _, author := range authors {
		byID[author.UserID] = author
	}
	for i := range details {
		if author, ok := byID[details[i].UserID]; ok {
			a := author
			details[i].Author = &a
		}
	}

	return nil
}
