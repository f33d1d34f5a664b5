package handler

import (
	"encoding/json"
	"net/http"
	"twitterclone/internal/repository"
)

// UserResponse - профиль без приватных полей
type UserResponse struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Website     string `json:"website"`
	Avatar      string `json:"avatar"`
	CoverPhoto  string `json:"coverPhoto"`
}

func (h *Handlers) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetMe(r.Context(), userIDFromRequest(r))
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Get me successfully", UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		Name:        user.Name,
		DateOfBirth: user.DateOfBirth.Format("2006-01-02"),
		Bio:         user.Bio,
		Location:    user.Location,
		Website:     user.Website,
		Avatar:      user.Avatar,
		CoverPhoto:  user.CoverPhoto,
	}, http.StatusOK)
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req repository.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateMe(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Update me successfully", UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		Name:        user.Name,
		DateOfBirth: user.DateOfBirth.Format("2006-01-02"),
		Bio:         user.Bio,
		Location:    user.Location,
		Website:     user.Website,
		Avatar:      user.Avatar,
		CoverPhoto:  user.CoverPhoto,
	}, http.StatusOK)
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FollowedUserID string `json:"followedUserId" validate:"required,uuid"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	if err := h.UserService.Follow(r.Context(), userIDFromRequest(r), req.FollowedUserID); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Follow successfully", nil, http.StatusOK)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FollowedUserID string `json:"followedUserId" validate:"required,uuid"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	if err := h.UserService.Unfollow(r.Context(), userIDFromRequest(r), req.FollowedUserID); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Unfollow successfully", nil, http.StatusOK)
}
