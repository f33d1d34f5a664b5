package handler

import (
	"encoding/json"
	"net/http"
	"twitterclone/internal/repository"
)

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Name            string `json:"name" validate:"required,min=1,max=100"`
	DateOfBirth     string `json:"dateOfBirth" validate:"omitempty"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	_, accessToken, refreshToken, err := h.AuthService.Register(r.Context(), repository.CreateUserRequest{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Register successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	_, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Login successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	if err := h.AuthService.Logout(r.Context(), req.RefreshToken); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Logout successfully", nil, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Refresh token successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, http.StatusOK)
}

func (h *Handlers) SendEmailVerify(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r)

	message, err := h.AuthService.SendEmailVerify(r.Context(), userID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, message, nil, http.StatusOK)
}

func (h *Handlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmailVerifyToken string `json:"emailVerifyToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	if err := h.AuthService.VerifyEmail(r.Context(), req.EmailVerifyToken); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Verify email successfully", nil, http.StatusOK)
}

func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	if err := h.AuthService.ForgotPassword(r.Context(), req.Email); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Письмо отправлено", nil, http.StatusOK)
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ForgotPasswordToken string `json:"forgotPasswordToken" validate:"required"`
		Password            string `json:"password" validate:"required,min=6,max=50"`
		ConfirmPassword     string `json:"confirmPassword" validate:"required,eqfield=Password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		HandleError(w, validationError(err))
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.ForgotPasswordToken, req.Password); err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Reset password successfully", nil, http.StatusOK)
}
