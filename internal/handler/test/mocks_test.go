package test

import (
	"context"
	"twitterclone/internal/config"
	"twitterclone/internal/models"
	"twitterclone/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	handlers "twitterclone/internal/handler"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		Cfg:      cfg,
		Validate: validator.New(),
	}
}

type MockTweetService struct {
	mock.Mock
}

func (m *MockTweetService) CreateTweet(ctx context.Context, req service.CreateTweetRequest) (*models.Tweet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetService) CheckAudience(ctx context.Context, tweet *models.Tweet, viewerID string) error {
	args := m.Called(ctx, tweet, viewerID)
	return args.Error(0)
}

func (m *MockTweetService) GetTweet(ctx context.Context, tweetID, viewerID string) (*models.TweetDetail, error) {
	args := m.Called(ctx, tweetID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TweetDetail), args.Error(1)
}

func (m *MockTweetService) GetTweetChildren(ctx context.Context, parentID string, tweetType models.TweetType, limit, page int, viewerID string) ([]models.TweetDetail, int64, error) {
	args := m.Called(ctx, parentID, tweetType, limit, page, viewerID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.TweetDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetService) GetNewsFeed(ctx context.Context, userID string, limit, page int) ([]models.TweetDetail, int64, error) {
	args := m.Called(ctx, userID, limit, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.TweetDetail), args.Get(1).(int64), args.Error(2)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) LikeTweet(ctx context.Context, userID, tweetID string) (*models.Like, error) {
	args := m.Called(ctx, userID, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeService) UnlikeTweet(ctx context.Context, userID, likeID string) error {
	args := m.Called(ctx, userID, likeID)
	return args.Error(0)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchTweets(ctx context.Context, req service.SearchRequest) ([]models.TweetDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TweetDetail), args.Error(1)
}
