package models

import (
	"time"
)

type TweetType int

const (
	TweetTypeTweet TweetType = iota
	TweetTypeRetweet
	TweetTypeComment
	TweetTypeQuoteTweet
)

type TweetAudience int

const (
	AudienceEveryone TweetAudience = iota
	AudienceCircle
)

type MediaType int

const (
	MediaTypeImage MediaType = iota
	MediaTypeVideo
)

type UserVerifyStatus int

const (
	VerifyStatusUnverified UserVerifyStatus = iota
	VerifyStatusVerified
	VerifyStatusBanned
)

type User struct {
	UserID              string           `json:"userId" db:"user_id"`
	Email               string           `json:"email" db:"email"`
	Name                string           `json:"name" db:"name"`
	PasswordHash        string           `json:"-" db:"password_hash"`
	DateOfBirth         time.Time        `json:"dateOfBirth" db:"date_of_birth"`
	Bio                 string           `json:"bio" db:"bio"`
	Location            string           `json:"location" db:"location"`
	Website             string           `json:"website" db:"website"`
	Avatar              string           `json:"avatar" db:"avatar"`
	CoverPhoto          string           `json:"coverPhoto" db:"cover_photo"`
	EmailVerifyToken    string           `json:"-" db:"email_verify_token"`
	ForgotPasswordToken string           `json:"-" db:"forgot_password_token"`
	Verify              UserVerifyStatus `json:"verify" db:"verify"`
	CreatedAt           time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time        `json:"updatedAt" db:"updated_at"`
}

type Media struct {
	URL  string    `json:"url" db:"url"`
	Type MediaType `json:"type" db:"type"`
}

type Tweet struct {
	TweetID    string        `json:"tweetId" db:"tweet_id"`
	UserID     string        `json:"userId" db:"user_id"`
	Type       TweetType     `json:"type" db:"type"`
	Audience   TweetAudience `json:"audience" db:"audience"`
	Content    string        `json:"content" db:"content"`
	ParentID   *string       `json:"parentId" db:"parent_id"`
	GuestViews int64         `json:"guestViews" db:"guest_views"`
	UserViews  int64         `json:"userViews" db:"user_views"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}

// MentionSummary - урезанное представление упомянутого пользователя
type MentionSummary struct {
	UserID string `json:"userId" db:"user_id"`
	Name   string `json:"name" db:"name"`
	Email  string `json:"email" db:"email"`
}

// AuthorSummary - автор твита в ленте, без приватных полей
type AuthorSummary struct {
	UserID   string `json:"userId" db:"user_id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Bio      string `json:"bio" db:"bio"`
	Location string `json:"location" db:"location"`
	Website  string `json:"website" db:"website"`
	Avatar   string `json:"avatar" db:"avatar"`
}

// TweetDetail - твит с присоединёнными данными вовлечённости
type TweetDetail struct {
	Tweet
	Bookmarks    int64            `json:"bookmarks" db:"bookmarks"`
	Likes        int64            `json:"likes" db:"likes"`
	RetweetCount int64            `json:"retweetCount" db:"retweet_count"`
	CommentCount int64            `json:"commentCount" db:"comment_count"`
	QuoteCount   int64            `json:"quoteCount" db:"quote_count"`
	Hashtags     []string         `json:"hashtags" db:"-"`
	Mentions     []MentionSummary `json:"mentions" db:"-"`
	Medias       []Media          `json:"medias" db:"-"`
	Author       *AuthorSummary   `json:"author,omitempty" db:"-"`
}

type Follower struct {
	UserID         string    `json:"userId" db:"user_id"`
	FollowedUserID string    `json:"followedUserId" db:"followed_user_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

type Hashtag struct {
	HashtagID string    `json:"hashtagId" db:"hashtag_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Like struct {
	LikeID    string    `json:"likeId" db:"like_id"`
	UserID    string    `json:"userId" db:"user_id"`
	TweetID   string    `json:"tweetId" db:"tweet_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Bookmark struct {
	BookmarkID string    `json:"bookmarkId" db:"bookmark_id"`
	UserID     string    `json:"userId" db:"user_id"`
	TweetID    string    `json:"tweetId" db:"tweet_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Conversation struct {
	ConversationID string    `json:"conversationId" db:"conversation_id"`
	SenderID       string    `json:"senderId" db:"sender_id"`
	ReceiverID     string    `json:"receiverId" db:"receiver_id"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token" db:"token"`
	UserID    string    `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ViewResult - счётчики просмотров после атомарного инкремента
type ViewResult struct {
	TweetID    string    `json:"tweetId" db:"tweet_id"`
	GuestViews int64     `json:"guestViews" db:"guest_views"`
	UserViews  int64     `json:"userViews" db:"user_views"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
