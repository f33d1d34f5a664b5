package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
	"twitterclone/internal/config"
	"twitterclone/internal/models"
	"twitterclone/internal/repository"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshTokens(ctx context.Context, refreshToken string) (string, string, error)
	SendEmailVerify(ctx context.Context, userID string) (string, error)
	VerifyEmail(ctx context.Context, emailVerifyToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, forgotPasswordToken, password string) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	tokens    TokenService
	cfg       *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, tokens TokenService, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		cfg:       cfg,
	}
}

func parseDateOfBirth(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Now()
	}
	return parsed
}

// signPair - access + refresh, новый refresh вытесняет прежний в хранилище
func (s *authService) signPair(ctx context.Context, userID string) (string, string, error) {
	accessToken, err := s.tokens.SignToken(userID, TokenTypeAccess)
	if err != nil {
		return "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, err := s.tokens.SignToken(userID, TokenTypeRefresh)
	if err != nil {
		return "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	err = s.tokenRepo.Replace(ctx, userID, refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("ошибка сохранения refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, "", "", models.NewErrorWithStatus(http.StatusForbidden, "Email уже существует")
	}

	userID := uuid.New().String()

	emailVerifyToken, err := s.tokens.SignToken(userID, TokenTypeEmailVerify)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации email verify token: %w", err)
	}

	user := &models.User{
		UserID:           userID,
		Email:            req.Email,
		Name:             req.Name,
		EmailVerifyToken: emailVerifyToken,
		Verify:           models.VerifyStatusUnverified,
	}
	if req.DateOfBirth != "" {
		user.DateOfBirth = parseDateOfBirth(req.DateOfBirth)
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	// здесь должна быть отправка письма
	log.Printf("email verify token для %s: %s", req.Email, emailVerifyToken)

	accessToken, refreshToken, err := s.signPair(ctx, user.UserID)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", models.NewUnauthorizedError("Неверный email или пароль")
	}

	accessToken, refreshToken, err := s.signPair(ctx, user.UserID)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	_, err := s.tokens.VerifyToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return err
	}

	return s.tokenRepo.DeleteByToken(ctx, refreshToken)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.VerifyToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	// подпись валидна, но токен мог быть отозван ротацией
	_, err = s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return "", "", err
	}

	accessToken, newRefreshToken, err := s.signPair(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}

	return accessToken, newRefreshToken, nil
}

func (s *authService) SendEmailVerify(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.Verify == models.VerifyStatusVerified {
		return "Email уже подтверждён", nil
	}

	emailVerifyToken, err := s.tokens.SignToken(userID, TokenTypeEmailVerify)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации email verify token: %w", err)
	}

	err = s.userRepo.UpdateEmailVerifyToken(ctx, userID, emailVerifyToken)
	if err != nil {
		return "", err
	}

	// здесь должна быть отправка письма
	log.Printf("email verify token для %s: %s", user.Email, emailVerifyToken)

	return "Письмо отправлено", nil
}

func (s *authService) VerifyEmail(ctx context.Context, emailVerifyToken string) error {
	claims, err := s.tokens.VerifyToken(emailVerifyToken, TokenTypeEmailVerify)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	if user.EmailVerifyToken != emailVerifyToken {
		return models.NewUnauthorizedError("Недействительный токен")
	}

	return s.userRepo.ConfirmEmailVerify(ctx, claims.UserID)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	forgotPasswordToken, err := s.tokens.SignToken(user.UserID, TokenTypeForgotPassword)
	if err != nil {
		return fmt.Errorf("ошибка генерации forgot password token: %w", err)
	}

	err = s.userRepo.UpdateForgotPasswordToken(ctx, user.UserID, forgotPasswordToken)
	if err != nil {
		return err
	}

	// здесь должна быть отправка письма
	log.Printf("forgot password token для %s: %s", email, forgotPasswordToken)

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, forgotPasswordToken, password string) error {
	claims, err := s.tokens.VerifyToken(forgotPasswordToken, TokenTypeForgotPassword)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	if user.ForgotPasswordToken != forgotPasswordToken {
		return models.NewUnauthorizedError("Недействительный токен")
	}

	return s.userRepo.ResetPassword(ctx, claims.UserID, password)
}
