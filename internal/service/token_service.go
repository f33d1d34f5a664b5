package service

import (
	"fmt"
	"time"
	"twitterclone/internal/config"
	"twitterclone/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType int

const (
	TokenTypeAccess TokenType = iota
	TokenTypeRefresh
	TokenTypeEmailVerify
	TokenTypeForgotPassword
)

// TokenClaims - полезная нагрузка всех четырёх видов токенов
type TokenClaims struct {
	UserID    string    `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenService interface {
	SignToken(userID string, tokenType TokenType) (string, error)
	VerifyToken(tokenString string, tokenType TokenType) (*TokenClaims, error)
}

type tokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) secret(tokenType TokenType) string {
	switch tokenType {
	case TokenTypeAccess:
		return s.cfg.JWT.AccessSecret
	case TokenTypeRefresh:
		return s.cfg.JWT.RefreshSecret
	case TokenTypeEmailVerify:
		return s.cfg.JWT.EmailVerifySecret
	default:
		return s.cfg.JWT.ForgotPasswordSecret
	}
}

func (s *tokenService) duration(tokenType TokenType) time.Duration {
	switch tokenType {
	case TokenTypeAccess:
		return s.cfg.JWT.AccessDuration
	case TokenTypeRefresh:
		return s.cfg.JWT.RefreshDuration
	case TokenTypeEmailVerify:
		return s.cfg.JWT.EmailVerifyDuration
	default:
		return s.cfg.JWT.ForgotPasswordDuration
	}
}

func (s *tokenService) SignToken(userID string, tokenType TokenType) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration(tokenType))),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secret(tokenType)))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *tokenService) VerifyToken(tokenString string, tokenType TokenType) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.secret(tokenType)), nil
	})
	if err != nil {
		return nil, models.NewUnauthorizedError("Недействительный токен")
	}

	if !token.Valid || claims.TokenType != tokenType {
		return nil, models.NewUnauthorizedError("Недействительный токен")
	}

	return claims, nil
}
