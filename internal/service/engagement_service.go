package service

import (
	"context"
	"twitterclone/internal/models"
	"twitterclone/internal/repository"
)

type LikeService interface {
	LikeTweet(ctx context.Context, userID, tweetID string) (*models.Like, error)
	UnlikeTweet(ctx context.Context, userID, likeID string) error
}

type BookmarkService interface {
	BookmarkTweet(ctx context.Context, userID, tweetID string) (*models.Bookmark, error)
	UnbookmarkTweet(ctx context.Context, userID, bookmarkID string) error
}

type likeService struct {
	likeRepo  repository.LikeRepository
	tweetRepo repository.TweetRepository
}

func NewLikeService(likeRepo repository.LikeRepository, tweetRepo repository.TweetRepository) LikeService {
	return &likeService{likeRepo: likeRepo, tweetRepo: tweetRepo}
}

func (s *likeService) LikeTweet(ctx context.Context, userID, tweetID string) (*models.Like, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}

	return s.likeRepo.Like(ctx, userID, tweetID)
}

func (s *likeService) UnlikeTweet(ctx context.Context, userID, likeID string) error {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return err
	}

	// чужой лайк удалить нельзя
	if like.UserID != userID {
		return models.NewForbiddenError("Нет доступа")
	}

	return s.likeRepo.Unlike(ctx, likeID)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	tweetRepo    repository.TweetRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, tweetRepo repository.TweetRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo, tweetRepo: tweetRepo}
}

func (s *bookmarkService) BookmarkTweet(ctx context.Context, userID, tweetID string) (*models.Bookmark, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}

	return s.bookmarkRepo.Bookmark(ctx, userID, tweetID)
}

func (s *bookmarkService) UnbookmarkTweet(ctx context.Context, userID, bookmarkID string) error {
	bookmark, err := s.bookmarkRepo.GetByID(ctx, bookmarkID)
	if err != nil {
		return err
	}

	if bookmark.UserID != userID {
		return models.NewForbiddenError("Нет доступа")
	}

	return s.bookmarkRepo.Unbookmark(ctx, bookmarkID)
}
