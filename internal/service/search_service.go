package service

import (
	"context"
	"twitterclone/internal/models"
	"twitterclone/internal/repository"
)

type SearchRequest struct {
	UserID         string
	Content        string
	MediaType      *models.MediaType
	PeopleFollowed bool
	Limit          int
	Page           int
}

type SearchService interface {
	SearchTweets(ctx context.Context, req SearchRequest) ([]models.TweetDetail, error)
}

type searchService struct {
	tweetRepo  repository.TweetRepository
	followRepo repository.FollowRepository
}

func NewSearchService(tweetRepo repository.TweetRepository, followRepo repository.FollowRepository) SearchService {
	return &searchService{
		tweetRepo:  tweetRepo,
		followRepo: followRepo,
	}
}

func (s *searchService) SearchTweets(ctx context.Context, req SearchRequest) ([]models.TweetDetail, error) {
	var authorIDs []string

	if req.PeopleFollowed {
		ids, err := s.followRepo.GetFollowedUserIDs(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		authorIDs = ids
		if authorIDs == nil {
			authorIDs = []string{}
		}
	}

	return s.tweetRepo.Search(ctx, repository.SearchRequest{
		ViewerID:  req.UserID,
		Content:   req.Content,
		MediaType: req.MediaType,
		AuthorIDs: authorIDs,
		Limit:     req.Limit,
		Page:      req.Page,
	})
}
