package service

import (
	"twitterclone/internal/config"
	"twitterclone/internal/repository"
	"twitterclone/internal/storage"
)

type Service struct {
	Token        TokenService
	Auth         AuthService
	User         UserService
	Tweet        TweetService
	Search       SearchService
	Like         LikeService
	Bookmark     BookmarkService
	Conversation ConversationService
	Media        MediaService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	tokens := NewTokenService(cfg)

	return &Service{
		Token:        tokens,
		Auth:         NewAuthService(rep.User, rep.Token, tokens, cfg),
		User:         NewUserService(rep.User, rep.Follow),
		Tweet:        NewTweetService(rep.Tweet, rep.User, rep.Hashtag, rep.Follow),
		Search:       NewSearchService(rep.Tweet, rep.Follow),
		Like:         NewLikeService(rep.Like, rep.Tweet),
		Bookmark:     NewBookmarkService(rep.Bookmark, rep.Tweet),
		Conversation: NewConversationService(rep.Conversation),
		Media:        NewMediaService(storage, cfg),
	}
}
