package service

import (
	"context"
	"io"
	"time"
	"twitterclone/internal/models"
	"twitterclone/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID string, req repository.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateEmailVerifyToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) ConfirmEmailVerify(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateForgotPasswordToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, userID, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetCircleMemberIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) ExistAll(ctx context.Context, userIDs []string) (bool, error) {
	args := m.Called(ctx, userIDs)
	return args.Bool(0), args.Error(1)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *models.Tweet, hashtagIDs, mentionIDs []string, medias []models.Media) error {
	args := m.Called(ctx, tweet, hashtagIDs, mentionIDs, medias)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, tweetID string) (*models.Tweet, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) GetDetail(ctx context.Context, tweetID string) (*models.TweetDetail, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TweetDetail), args.Error(1)
}

func (m *MockTweetRepository) GetChildren(ctx context.Context, parentID string, tweetType models.TweetType, limit, page int) ([]models.TweetDetail, int64, error) {
	args := m.Called(ctx, parentID, tweetType, limit, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.TweetDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepository) GetNewsFeed(ctx context.Context, viewerID string, authorIDs []string, limit, page int) ([]models.TweetDetail, int64, error) {
	args := m.Called(ctx, viewerID, authorIDs, limit, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.TweetDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepository) Search(ctx context.Context, req repository.SearchRequest) ([]models.TweetDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TweetDetail), args.Error(1)
}

func (m *MockTweetRepository) IncreaseView(ctx context.Context, tweetID string, authenticated bool) (*models.ViewResult, error) {
	args := m.Called(ctx, tweetID, authenticated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ViewResult), args.Error(1)
}

func (m *MockTweetRepository) IncreaseViews(ctx context.Context, tweetIDs []string, authenticated bool) (time.Time, error) {
	args := m.Called(ctx, tweetIDs, authenticated)
	return args.Get(0).(time.Time), args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Follow(ctx context.Context, userID, followedUserID string) error {
	args := m.Called(ctx, userID, followedUserID)
	return args.Error(0)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, userID, followedUserID string) error {
	args := m.Called(ctx, userID, followedUserID)
	return args.Error(0)
}

func (m *MockFollowRepository) GetFollowedUserIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockHashtagRepository struct {
	mock.Mock
}

func (m *MockHashtagRepository) UpsertByNames(ctx context.Context, names []string) ([]string, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Replace(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Like(ctx context.Context, userID, tweetID string) (*models.Like, error) {
	args := m.Called(ctx, userID, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeRepository) Unlike(ctx context.Context, likeID string) error {
	args := m.Called(ctx, likeID)
	return args.Error(0)
}

func (m *MockLikeRepository) GetByID(ctx context.Context, likeID string) (*models.Like, error) {
	args := m.Called(ctx, likeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Bookmark(ctx context.Context, userID, tweetID string) (*models.Bookmark, error) {
	args := m.Called(ctx, userID, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Unbookmark(ctx context.Context, bookmarkID string) error {
	args := m.Called(ctx, bookmarkID)
	return args.Error(0)
}

func (m *MockBookmarkRepository) GetByID(ctx context.Context, bookmarkID string) (*models.Bookmark, error) {
	args := m.Called(ctx, bookmarkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

// MockStorage вычитывает reader до ответа, иначе TeeReader
// не допишет локальную копию
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadMedia(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return "", "", err
	}
	args := m.Called(ctx, fileName, string(content), size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteMedia(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
