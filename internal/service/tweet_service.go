package service

import (
	"context"
	"slices"
	"twitterclone/internal/models"
	"twitterclone/internal/repository"
)

type CreateTweetRequest struct {
	UserID   string
	Type     models.TweetType
	Audience models.TweetAudience
	Content  string
	ParentID *string
	Hashtags []string
	Mentions []string
	Medias   []models.Media
}

type TweetService interface {
	CreateTweet(ctx context.Context, req CreateTweetRequest) (*models.Tweet, error)
	CheckAudience(ctx context.Context, tweet *models.Tweet, viewerID string) error
	GetTweet(ctx context.Context, tweetID, viewerID string) (*models.TweetDetail, error)
	GetTweetChildren(ctx context.Context, parentID string, tweetType models.TweetType, limit, page int, viewerID string) ([]models.TweetDetail, int64, error)
	GetNewsFeed(ctx context.Context, userID string, limit, page int) ([]models.TweetDetail, int64, error)
}

type tweetService struct {
	tweetRepo   repository.TweetRepository
	userRepo    repository.UserRepository
	hashtagRepo repository.HashtagRepository
	followRepo  repository.FollowRepository
}

func NewTweetService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository, hashtagRepo repository.HashtagRepository, followRepo repository.FollowRepository) TweetService {
	return &tweetService{
		tweetRepo:   tweetRepo,
		userRepo:    userRepo,
		hashtagRepo: hashtagRepo,
		followRepo:  followRepo,
	}
}

// validateCreate - инварианты твита: parent_id только у ответов,
// ретвит без текста, остальные типы с текстом либо хештегами/упоминаниями
func (s *tweetService) validateCreate(ctx context.Context, req CreateTweetRequest) error {
	fieldErrors := make(map[string]string)

	childTypes := []models.TweetType{models.TweetTypeRetweet, models.TweetTypeComment, models.TweetTypeQuoteTweet}

	if slices.Contains(childTypes, req.Type) {
		if req.ParentID == nil {
			fieldErrors["parent_id"] = "Parent id обязателен для этого типа твита"
		} else if _, err := s.tweetRepo.GetByID(ctx, *req.ParentID); err != nil {
			fieldErrors["parent_id"] = "Parent id не найден"
		}
	} else if req.ParentID != nil {
		fieldErrors["parent_id"] = "Parent id должен быть null"
	}

	if req.Type == models.TweetTypeRetweet {
		if req.Content != "" {
			fieldErrors["content"] = "Содержимое ретвита должно быть пустым"
		}
	} else if req.Content == "" && len(req.Hashtags) == 0 && len(req.Mentions) == 0 {
		fieldErrors["content"] = "Содержимое не должно быть пустым"
	}

	if len(req.Mentions) > 0 {
		exist, err := s.userRepo.ExistAll(ctx, req.Mentions)
		if err != nil {
			return err
		}
		if !exist {
			fieldErrors["mentions"] = "Упомянутый пользователь не найден"
		}
	}

	if len(fieldErrors) > 0 {
		return models.NewEntityError(fieldErrors)
	}

	return nil
}

func (s *tweetService) CreateTweet(ctx context.Context, req CreateTweetRequest) (*models.Tweet, error) {
	if err := s.validateCreate(ctx, req); err != nil {
		return nil, err
	}

	hashtagIDs, err := s.hashtagRepo.UpsertByNames(ctx, req.Hashtags)
	if err != nil {
		return nil, err
	}

	tweet := &models.Tweet{
		UserID:   req.UserID,
		Type:     req.Type,
		Audience: req.Audience,
		Content:  req.Content,
		ParentID: req.ParentID,
	}

	err = s.tweetRepo.Create(ctx, tweet, hashtagIDs, req.Mentions, req.Medias)
	if err != nil {
		return nil, err
	}

	return tweet, nil
}

// CheckAudience - фильтр видимости: Circle-твит открыт автору и его кругу,
// твит заблокированного автора скрывается как несуществующий
func (s *tweetService) CheckAudience(ctx context.Context, tweet *models.Tweet, viewerID string) error {
	if tweet.Audience != models.AudienceCircle {
		return nil
	}

	if viewerID == "" {
		return models.NewUnauthorizedError("Требуется авторизация")
	}

	author, err := s.userRepo.GetUserByID(ctx, tweet.UserID)
	if err != nil {
		return err
	}

	if author.Verify == models.VerifyStatusBanned {
		return models.NewNotFoundError("Автор этого твита заблокирован")
	}

	if author.UserID == viewerID {
		return nil
	}

	circle, err := s.userRepo.GetCircleMemberIDs(ctx, author.UserID)
	if err != nil {
		return err
	}

	if !slices.Contains(circle, viewerID) {
		return models.NewForbiddenError("Твит не является публичным")
	}

	return nil
}

func (s *tweetService) GetTweet(ctx context.Context, tweetID, viewerID string) (*models.TweetDetail, error) {
	detail, err := s.tweetRepo.GetDetail(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	if err := s.CheckAudience(ctx, &detail.Tweet, viewerID); err != nil {
		return nil, err
	}

	// каждое чтение учитывается в счётчике просмотров
	view, err := s.tweetRepo.IncreaseView(ctx, tweetID, viewerID != "")
	if err != nil {
		return nil, err
	}

	detail.GuestViews = view.GuestViews
	detail.UserViews = view.UserViews
	detail.UpdatedAt = view.UpdatedAt

	return detail, nil
}

func (s *tweetService) GetTweetChildren(ctx context.Context, parentID string, tweetType models.TweetType, limit, page int, viewerID string) ([]models.TweetDetail, int64, error) {
	parent, err := s.tweetRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, 0, err
	}

	if err := s.CheckAudience(ctx, parent, viewerID); err != nil {
		return nil, 0, err
	}

	details, total, err := s.tweetRepo.GetChildren(ctx, parentID, tweetType, limit, page)
	if err != nil {
		return nil, 0, err
	}

	authenticated := viewerID != ""
	ids := make([]string, 0, len(details))
	for i := range details {
		ids = append(ids, details[i].TweetID)
	}

	now, err := s.tweetRepo.IncreaseViews(ctx, ids, authenticated)
	if err != nil {
		return nil, 0, err
	}

	for i := range details {
		details[i].UpdatedAt = now
		if authenticated {
			details[i].UserViews++
		} else {
			details[i].GuestViews++
		}
	}

	return details, total, nil
}

func (s *tweetService) GetNewsFeed(ctx context.Context, userID string, limit, page int) ([]models.TweetDetail, int64, error) {
	// кандидаты ленты: подписки плюс сам пользователь
	authorIDs, err := s.followRepo.GetFollowedUserIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	authorIDs = append(authorIDs, userID)

	details, total, err := s.tweetRepo.GetNewsFeed(ctx, userID, authorIDs, limit, page)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(details))
	for i := range details {
		ids = append(ids, details[i].TweetID)
	}

	// лента доступна только авторизованным, инкрементируется user_views
	now, err := s.tweetRepo.IncreaseViews(ctx, ids, true)
	if err != nil {
		return nil, 0, err
	}

	for i := range details {
		details[i].UpdatedAt = now
		details[i].UserViews++
	}

	return details, total, nil
}
