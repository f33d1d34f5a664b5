package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"twitterclone/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "userID", userID))
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func TestGetNewsFeedHandler(t *testing.T) {
	userID := uuid.New().String()

	t.Run("Лента приходит в конверте с total_page", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		mockTweetService.On("GetNewsFeed", mock.Anything, userID, 10, 1).
			Return([]models.TweetDetail{
				{Tweet: models.Tweet{TweetID: uuid.New().String(), UserID: userID}},
			}, int64(25), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tweets?page=1&limit=10", nil)
		req = withUserID(req, userID)
		rr := httptest.NewRecorder()

		handler.GetNewsFeed(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		response := decodeResponse(t, rr)
		assert.Equal(t, "Get news feed successfully", response["message"])

		result := response["result"].(map[string]interface{})
		assert.Equal(t, float64(10), result["limit"])
		assert.Equal(t, float64(1), result["page"])
		// 25 твитов по 10 на страницу - 3 страницы
		assert.Equal(t, float64(3), result["total_page"])
		assert.Len(t, result["tweets"], 1)
	})

	t.Run("Лимит больше 100 отклоняется", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		req := httptest.NewRequest(http.MethodGet, "/api/tweets?page=1&limit=500", nil)
		req = withUserID(req, userID)
		rr := httptest.NewRecorder()

		handler.GetNewsFeed(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockTweetService.AssertNotCalled(t, "GetNewsFeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Нулевой лимит отклоняется", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		req := httptest.NewRequest(http.MethodGet, "/api/tweets?page=1&limit=0", nil)
		req = withUserID(req, userID)
		rr := httptest.NewRecorder()

		handler.GetNewsFeed(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockTweetService.AssertNotCalled(t, "GetNewsFeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Пагинация без page и limit отклоняется", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
		req = withUserID(req, userID)
		rr := httptest.NewRecorder()

		handler.GetNewsFeed(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		response := decodeResponse(t, rr)
		assert.Equal(t, "Validation error", response["message"])

		errs := response["errors"].(map[string]interface{})
		assert.Contains(t, errs, "page")
		assert.Contains(t, errs, "limit")
	})
}

func TestGetTweetHandler(t *testing.T) {
	tweetID := uuid.New().String()

	t.Run("Недоступный твит отдаёт статус фильтра видимости", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		viewerID := uuid.New().String()
		mockTweetService.On("GetTweet", mock.Anything, tweetID, viewerID).
			Return(nil, models.NewForbiddenError("Твит не является публичным"))

		req := httptest.NewRequest(http.MethodGet, "/api/tweets/"+tweetID, nil)
		req = withUserID(req, viewerID)
		req = mux.SetURLVars(req, map[string]string{"tweet_id": tweetID})
		rr := httptest.NewRecorder()

		handler.GetTweet(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)

		response := decodeResponse(t, rr)
		assert.Equal(t, "Твит не является публичным", response["message"])
	})

	t.Run("Анонимный запрос уходит в сервис с пустым viewer", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		mockTweetService.On("GetTweet", mock.Anything, tweetID, "").
			Return(&models.TweetDetail{
				Tweet: models.Tweet{TweetID: tweetID, GuestViews: 1},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tweets/"+tweetID, nil)
		req = mux.SetURLVars(req, map[string]string{"tweet_id": tweetID})
		rr := httptest.NewRecorder()

		handler.GetTweet(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockTweetService.AssertExpectations(t)
	})
}

func TestGetTweetChildrenHandler(t *testing.T) {
	parentID := uuid.New().String()

	t.Run("Недопустимый tweet_type отклоняется", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		req := httptest.NewRequest(http.MethodGet, "/api/tweets/"+parentID+"/children?page=1&limit=10&tweet_type=9", nil)
		req = mux.SetURLVars(req, map[string]string{"tweet_id": parentID})
		rr := httptest.NewRecorder()

		handler.GetTweetChildren(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockTweetService.AssertNotCalled(t, "GetTweetChildren",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Комментарии отдаются с типом и пагинацией", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		mockTweetService.On("GetTweetChildren", mock.Anything, parentID, models.TweetTypeComment, 10, 1, "").
			Return([]models.TweetDetail{}, int64(0), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tweets/"+parentID+"/children?page=1&limit=10&tweet_type=2", nil)
		req = mux.SetURLVars(req, map[string]string{"tweet_id": parentID})
		rr := httptest.NewRecorder()

		handler.GetTweetChildren(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		response := decodeResponse(t, rr)
		result := response["result"].(map[string]interface{})
		assert.Equal(t, float64(models.TweetTypeComment), result["tweet_type"])
		assert.Equal(t, float64(0), result["total_page"])
	})
}

func TestCreateTweetHandler(t *testing.T) {
	userID := uuid.New().String()

	t.Run("Недопустимый тип твита отклоняется до сервиса", func(t *testing.T) {
		mockTweetService := new(MockTweetService)
		handler := createTestHandler()
		handler.TweetService = mockTweetService

		body := `{"type": 9, "audience": 0, "content": "привет"}`
		req := httptest.NewRequest(http.MethodPost, "/api/tweets", strings.NewReader(body))
		req = withUserID(req, userID)
		rr := httptest.NewRecorder()

		handler.CreateTweet(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		response := decodeResponse(t, rr)
		errs := response["errors"].(map[string]interface{})
		assert.Contains(t, errs, "type")
		mockTweetService.AssertNotCalled(t, "CreateTweet", mock.Anything, mock.Anything)
	})

	t.Run("Битый JSON отклоняется", func(t *testing.T) {
		handler := createTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/tweets", strings.NewReader("{не json"))
		req = withUserID(req, userID)
		rr := httptest.NewRecorder()

		handler.CreateTweet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

//go test ./internal/handler/... -v
