package ws

import (
	"net/http"
	"twitterclone/internal/service"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	eventPrivateMessage        = "private message"
	eventReceivePrivateMessage = "receive private message"
)

// Event - кадр протокола живых сообщений
type Event struct {
	Event   string `json:"event"`
	Content string `json:"content"`
	To      string `json:"to"`
	From    string `json:"from"`
}

type Hub struct {
	registry      Registry
	conversations service.ConversationService
	tokens        service.TokenService
	upgrader      websocket.Upgrader
	logger        *zap.SugaredLogger
}

func NewHub(registry Registry, conversations service.ConversationService, tokens service.TokenService, logger *zap.SugaredLogger) *Hub {
	return &Hub{
		registry:      registry,
		conversations: conversations,
		tokens:        tokens,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleWS - access token передаётся в query, браузерный WebSocket
// не умеет ставить заголовок Authorization
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("access_token")
	claims, err := h.tokens.VerifyToken(tokenString, service.TokenTypeAccess)
	if err != nil {
		http.Error(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	userID := claims.UserID

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Errorw("ошибка апгрейда соединения", "error", err)
		return
	}

	h.registry.Register(userID, conn)
	h.logger.Infow("пользователь подключился", "userId", userID)

	defer func() {
		h.registry.Unregister(userID)
		conn.Close()
		h.logger.Infow("пользователь отключился", "userId", userID)
	}()

	for {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			return
		}

		if event.Event != eventPrivateMessage {
			continue
		}

		// сообщение сохраняется независимо от того, в сети ли получатель
		_, err := h.conversations.SaveMessage(r.Context(), userID, event.To, event.Content)
		if err != nil {
			h.logger.Errorw("ошибка сохранения сообщения", "error", err)
			continue
		}

		// получатель не в сети - сообщение не пересылается
		receiver, ok := h.registry.Lookup(event.To)
		if !ok {
			continue
		}

		err = receiver.Send(Event{
			Event:   eventReceivePrivateMessage,
			Content: event.Content,
			From:    userID,
		})
		if err != nil {
			h.logger.Errorw("ошибка отправки сообщения", "error", err)
		}
	}
}
