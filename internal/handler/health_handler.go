package handler

import (
	"net/http"
	"twitterclone/internal/database"
)

// HealthHandler - ping БД и количество таблиц в схеме public
func HealthHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
			return
		}

		count, err := db.CountTables()
		if err != nil {
			WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
			return
		}

		WriteJSON(w, "OK", map[string]interface{}{"tables": count}, http.StatusOK)
	}
}
