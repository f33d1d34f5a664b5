package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"
	"twitterclone/internal/handler"
	"twitterclone/internal/service"

	"go.uber.org/zap"
)

type Middleware func(http.Handler) http.Handler

const (
	UserIDKey = "userID"
)

func extractBearer(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	// Checking the "Bearer <token>" format
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

// AuthMiddleware - проверяет access token и кладёт userID в контекст
func AuthMiddleware(tokens service.TokenService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractBearer(r)
			if !ok {
				handler.WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.VerifyToken(tokenString, service.TokenTypeAccess)
			if err != nil {
				handler.WriteError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware - анонимный доступ разрешён, но если токен
// передан, он обязан быть валидным
func OptionalAuthMiddleware(tokens service.TokenService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractBearer(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.VerifyToken(tokenString, service.TokenTypeAccess)
			if err != nil {
				handler.WriteError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(logger *zap.SugaredLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Infow("запрос",
				"method", r.Method,
				"url", r.RequestURI,
				"duration", time.Since(start),
			)
		})
	}
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
