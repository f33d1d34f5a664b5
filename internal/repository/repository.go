package repository

import (
	"context"
	"time"
	"twitterclone/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error)
	UpdateEmailVerifyToken(ctx context.Context, userID, token string) error
	ConfirmEmailVerify(ctx context.Context, userID string) error
	UpdateForgotPasswordToken(ctx context.Context, userID, token string) error
	ResetPassword(ctx context.Context, userID, password string) error
	GetCircleMemberIDs(ctx context.Context, userID string) ([]string, error)
	ExistAll(ctx context.Context, userIDs []string) (bool, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet, hashtagIDs, mentionIDs []string, medias []models.Media) error
	GetByID(ctx context.Context, tweetID string) (*models.Tweet, error)
	GetDetail(ctx context.Context, tweetID string) (*models.TweetDetail, error)
	GetChildren(ctx context.Context, parentID string, tweetType models.TweetType, limit, page int) ([]models.TweetDetail, int64, error)
	GetNewsFeed(ctx context.Context, viewerID string, authorIDs []string, limit, page int) ([]models.TweetDetail, int64, error)
	Search(ctx context.Context, req SearchRequest) ([]models.TweetDetail, error)
	IncreaseView(ctx context.Context, tweetID string, authenticated bool) (*models.ViewResult, error)
	IncreaseViews(ctx context.Context, tweetIDs []string, authenticated bool) (time.Time, error)
}

type FollowRepository interface {
	Follow(ctx context.Context, userID, followedUserID string) error
	Unfollow(ctx context.Context, userID, followedUserID string) error
	GetFollowedUserIDs(ctx context.Context, userID string) ([]string, error)
}

type LikeRepository interface {
	Like(ctx context.Context, userID, tweetID string) (*models.Like, error)
	Unlike(ctx context.Context, likeID string) error
	GetByID(ctx context.Context, likeID string) (*models.Like, error)
}

type BookmarkRepository interface {
	Bookmark(ctx context.Context, userID, tweetID string) (*models.Bookmark, error)
	Unbookmark(ctx context.Context, bookmarkID string) error
	GetByID(ctx context.Context, bookmarkID string) (*models.Bookmark, error)
}

type HashtagRepository interface {
	UpsertByNames(ctx context.Context, names []string) ([]string, error)
}

type ConversationRepository interface {
	Create(ctx context.Context, conversation *models.Conversation) error
	GetConversations(ctx context.Context, senderID, receiverID string, limit, page int) ([]models.Conversation, error)
}

type TokenRepository interface {
	Replace(ctx context.Context, userID, token string) error
	DeleteByToken(ctx context.Context, token string) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
}

type Repository struct {
	User         UserRepository
	Tweet        TweetRepository
	Follow       FollowRepository
	Like         LikeRepository
	Bookmark     BookmarkRepository
	Hashtag      HashtagRepository
	Conversation ConversationRepository
	Token        TokenRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Tweet:        NewTweetRepository(db),
		Follow:       NewFollowRepository(db),
		Like:         NewLikeRepository(db),
		Bookmark:     NewBookmarkRepository(db),
		Hashtag:      NewHashtagRepository(db),
		Conversation: NewConversationRepository(db),
		Token:        NewTokenRepository(db),
	}
}
