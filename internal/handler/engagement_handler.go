package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type tweetIDBody struct {
	TweetID string `json:"tweetId" validate:"required,uuid"`
}

func (h *Handlers) LikeTweet(w http.ResponseWriter, r *http.Request) {
	var req tweetIDBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	like, err := h.LikeService.LikeTweet(r.Context(), userIDFromRequest(r), req.TweetID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Like tweet successfully", like, http.StatusOK)
}

func (h *Handlers) UnlikeTweet(w http.ResponseWriter, r *http.Request) {
	likeID := mux.Vars(r)["like_id"]

	if err := h.LikeService.UnlikeTweet(r.Context(), userIDFromRequest(r), likeID); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Unlike tweet successfully", nil, http.StatusOK)
}

func (h *Handlers) BookmarkTweet(w http.ResponseWriter, r *http.Request) {
	var req tweetIDBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	bookmark, err := h.BookmarkService.BookmarkTweet(r.Context(), userIDFromRequest(r), req.TweetID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Bookmark tweet successfully", bookmark, http.StatusOK)
}

func (h *Handlers) UnbookmarkTweet(w http.ResponseWriter, r *http.Request) {
	bookmarkID := mux.Vars(r)["bookmark_id"]

	if err := h.BookmarkService.UnbookmarkTweet(r.Context(), userIDFromRequest(r), bookmarkID); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Unbookmark tweet successfully", nil, http.StatusOK)
}
