package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetConversations(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		HandleError(w, err)
		return
	}

	receiverID := mux.Vars(r)["receiver_id"]

	conversations, err := h.ConversationService.GetConversations(r.Context(), userIDFromRequest(r), receiverID, limit, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Get conversations successfully", map[string]interface{}{
		"conversations": conversations,
		"limit":         limit,
		"page":          page,
	}, http.StatusOK)
}
