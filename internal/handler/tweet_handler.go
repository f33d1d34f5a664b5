package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"twitterclone/internal/models"
	"twitterclone/internal/service"
	"twitterclone/internal/validation"

	"github.com/gorilla/mux"
)

type CreateTweetBody struct {
	Type     models.TweetType     `json:"type"`
	Audience models.TweetAudience `json:"audience"`
	Content  string               `json:"content"`
	ParentID *string              `json:"parentId"`
	Hashtags []string             `json:"hashtags"`
	Mentions []string             `json:"mentions"`
	Medias   []models.Media       `json:"medias"`
}

func (h *Handlers) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var body CreateTweetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	fieldErrors := make(map[string]string)
	if body.Type < models.TweetTypeTweet || body.Type > models.TweetTypeQuoteTweet {
		fieldErrors["type"] = "Недопустимый тип твита"
	}
	if body.Audience != models.AudienceEveryone && body.Audience != models.AudienceCircle {
		fieldErrors["audience"] = "Недопустимая аудитория"
	}
	for _, media := range body.Medias {
		if media.Type != models.MediaTypeImage && media.Type != models.MediaTypeVideo {
			fieldErrors["medias"] = "Недопустимый тип медиа"
		}
	}
	if len(fieldErrors) > 0 {
		HandleError(w, models.NewEntityError(fieldErrors))
		return
	}

	tweet, err := h.TweetService.CreateTweet(r.Context(), service.CreateTweetRequest{
		UserID:   userIDFromRequest(r),
		Type:     body.Type,
		Audience: body.Audience,
		Content:  body.Content,
		ParentID: body.ParentID,
		Hashtags: body.Hashtags,
		Mentions: body.Mentions,
		Medias:   body.Medias,
	})
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Create tweet successfully", tweet, http.StatusOK)
}

func (h *Handlers) GetTweet(w http.ResponseWriter, r *http.Request) {
	tweetID := mux.Vars(r)["tweet_id"]

	detail, err := h.TweetService.GetTweet(r.Context(), tweetID, userIDFromRequest(r))
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Get tweet successfully", detail, http.StatusOK)
}

var tweetTypeSchema = validation.Schema{
	"tweet_type": {Required: true, Numeric: true, In: []string{"0", "1", "2", "3"}},
}

func (h *Handlers) GetTweetChildren(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		HandleError(w, err)
		return
	}

	tweetTypeValue := r.URL.Query().Get("tweet_type")
	if err := validation.Validate(map[string]string{"tweet_type": tweetTypeValue}, tweetTypeSchema); err != nil {
		HandleError(w, err)
		return
	}
	tweetTypeInt, _ := strconv.Atoi(tweetTypeValue)
	tweetType := models.TweetType(tweetTypeInt)

	parentID := mux.Vars(r)["tweet_id"]

	tweets, total, err := h.TweetService.GetTweetChildren(r.Context(), parentID, tweetType, limit, page, userIDFromRequest(r))
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Get tweet children successfully", map[string]interface{}{
		"tweets":     tweets,
		"tweet_type": tweetType,
		"limit":      limit,
		"page":       page,
		"total_page": totalPages(total, limit),
	}, http.StatusOK)
}

func (h *Handlers) GetNewsFeed(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		HandleError(w, err)
		return
	}

	tweets, total, err := h.TweetService.GetNewsFeed(r.Context(), userIDFromRequest(r), limit, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Get news feed successfully", map[string]interface{}{
		"tweets":     tweets,
		"limit":      limit,
		"page":       page,
		"total_page": totalPages(total, limit),
	}, http.StatusOK)
}
