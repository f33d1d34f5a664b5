package handler

import (
	"net/http"
	"strconv"
	"twitterclone/internal/models"
	"twitterclone/internal/service"
	"twitterclone/internal/validation"
)

var searchSchema = validation.Schema{
	"content":         {Required: true},
	"media_type":      {In: []string{"0", "1"}},
	"people_followed": {In: []string{"0", "1"}},
}

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		HandleError(w, err)
		return
	}

	query := r.URL.Query()
	values := map[string]string{
		"content":         query.Get("content"),
		"media_type":      query.Get("media_type"),
		"people_followed": query.Get("people_followed"),
	}

	if err := validation.Validate(values, searchSchema); err != nil {
		HandleError(w, err)
		return
	}

	req := service.SearchRequest{
		UserID:         userIDFromRequest(r),
		Content:        values["content"],
		PeopleFollowed: values["people_followed"] == "1",
		Limit:          limit,
		Page:           page,
	}

	if values["media_type"] != "" {
		mediaTypeInt, _ := strconv.Atoi(values["media_type"])
		mediaType := models.MediaType(mediaTypeInt)
		req.MediaType = &mediaType
	}

	tweets, err := h.SearchService.SearchTweets(r.Context(), req)
	if err != nil {
		HandleError(w, err)
		return
	}

	// total_page для поиска не считается
	WriteJSON(w, "Search tweets successfully", map[string]interface{}{
		"tweets": tweets,
		"limit":  limit,
		"page":   page,
	}, http.StatusOK)
}
