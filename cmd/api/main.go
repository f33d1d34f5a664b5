package main

import (
	"fmt"
	"log"
	"net/http"
	"twitterclone/cmd/app"
	"twitterclone/internal/config"
	handlers "twitterclone/internal/handler"
	"twitterclone/internal/middleware"
	"twitterclone/internal/ws"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWT.AccessSecret == "" {
		log.Fatal("JWT_ACCESS_SECRET не установлен в .env файле")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)
	hub := ws.NewHub(ws.NewRegistry(), services.Conversation, services.Token, logger)

	requireAuth := middleware.AuthMiddleware(services.Token)
	optionalAuth := middleware.OptionalAuthMiddleware(services.Token)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handlers.HealthHandler(db)).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/verify-email", handler.VerifyEmail).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/forgot-password", handler.ForgotPassword).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/reset-password", handler.ResetPassword).Methods(http.MethodPost)

	router.Handle("/api/auth/logout", requireAuth(http.HandlerFunc(handler.Logout))).Methods(http.MethodPost)
	router.Handle("/api/auth/send-email-verify", requireAuth(http.HandlerFunc(handler.SendEmailVerify))).Methods(http.MethodPost)

	router.Handle("/api/me", requireAuth(http.HandlerFunc(handler.GetMe))).Methods(http.MethodGet)
	router.Handle("/api/me", requireAuth(http.HandlerFunc(handler.UpdateMe))).Methods(http.MethodPatch)
	router.Handle("/api/users/follow", requireAuth(http.HandlerFunc(handler.Follow))).Methods(http.MethodPost)
	router.Handle("/api/users/follow", requireAuth(http.HandlerFunc(handler.Unfollow))).Methods(http.MethodDelete)

	router.Handle("/api/tweets", requireAuth(http.HandlerFunc(handler.CreateTweet))).Methods(http.MethodPost)
	router.Handle("/api/tweets", requireAuth(http.HandlerFunc(handler.GetNewsFeed))).Methods(http.MethodGet)
	router.Handle("/api/tweets/{tweet_id}", optionalAuth(http.HandlerFunc(handler.GetTweet))).Methods(http.MethodGet)
	router.Handle("/api/tweets/{tweet_id}/children", optionalAuth(http.HandlerFunc(handler.GetTweetChildren))).Methods(http.MethodGet)

	router.Handle("/api/search", requireAuth(http.HandlerFunc(handler.Search))).Methods(http.MethodGet)

	router.Handle("/api/likes", requireAuth(http.HandlerFunc(handler.LikeTweet))).Methods(http.MethodPost)
	router.Handle("/api/likes/{like_id}", requireAuth(http.HandlerFunc(handler.UnlikeTweet))).Methods(http.MethodDelete)
	router.Handle("/api/bookmarks", requireAuth(http.HandlerFunc(handler.BookmarkTweet))).Methods(http.MethodPost)
	router.Handle("/api/bookmarks/{bookmark_id}", requireAuth(http.HandlerFunc(handler.UnbookmarkTweet))).Methods(http.MethodDelete)

	router.Handle("/api/conversations/receivers/{receiver_id}", requireAuth(http.HandlerFunc(handler.GetConversations))).Methods(http.MethodGet)

	router.Handle("/api/medias/upload-image", requireAuth(http.HandlerFunc(handler.UploadImage))).Methods(http.MethodPost)
	router.Handle("/api/medias/upload-video", requireAuth(http.HandlerFunc(handler.UploadVideo))).Methods(http.MethodPost)

	router.HandleFunc("/static/image/{name}", handler.ServeImage).Methods(http.MethodGet)
	router.HandleFunc("/static/video-streaming/{name}", handler.ServeVideoStreaming).Methods(http.MethodGet)

	// токен проверяется внутри hub, авторизация идёт через query
	router.HandleFunc("/ws", hub.HandleWS)

	handlerChain := middleware.Chain(
		router,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(logger),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Infow("сервер запущен", "addr", addr, "db", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
