package handler

import (
	"math"
	"net/http"
	"strconv"
	"twitterclone/internal/config"
	"twitterclone/internal/models"
	"twitterclone/internal/service"
	"twitterclone/internal/validation"

	"github.com/go-playground/validator/v10"
)

const maxPageLimit = 100

type Handlers struct {
	AuthService         service.AuthService
	UserService         service.UserService
	TweetService        service.TweetService
	SearchService       service.SearchService
	LikeService         service.LikeService
	BookmarkService     service.BookmarkService
	ConversationService service.ConversationService
	MediaService        service.MediaService
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		UserService:         services.User,
		TweetService:        services.Tweet,
		SearchService:       services.Search,
		LikeService:         services.Like,
		BookmarkService:     services.Bookmark,
		ConversationService: services.Conversation,
		MediaService:        services.Media,
		Cfg:                 config,
		Validate:            validator.New(),
	}
}

// userIDFromRequest - идентификатор пользователя из контекста,
// пустая строка для анонимного запроса
func userIDFromRequest(r *http.Request) string {
	userID, _ := r.Context().Value("userID").(string)
	return userID
}

var paginationSchema = validation.Schema{
	"page": {Required: true, Numeric: true, Custom: func(value string) error {
		if page, _ := strconv.Atoi(value); page < 1 {
			return models.NewBadRequestError("page должен быть не меньше 1")
		}
		return nil
	}},
	"limit": {Required: true, Numeric: true, Custom: func(value string) error {
		limit, _ := strconv.Atoi(value)
		if limit < 1 {
			return models.NewBadRequestError("limit должен быть не меньше 1")
		}
		if limit > maxPageLimit {
			return models.NewBadRequestError("limit не больше 100")
		}
		return nil
	}},
}

// parsePagination - page и limit из query, limit не больше 100
func parsePagination(r *http.Request) (int, int, error) {
	values := map[string]string{
		"page":  r.URL.Query().Get("page"),
		"limit": r.URL.Query().Get("limit"),
	}

	if err := validation.Validate(values, paginationSchema); err != nil {
		return 0, 0, err
	}

	page, _ := strconv.Atoi(values["page"])
	limit, _ := strconv.Atoi(values["limit"])

	return page, limit, nil
}

func totalPages(total int64, limit int) int64 {
	return int64(math.Ceil(float64(total) / float64(limit)))
}
