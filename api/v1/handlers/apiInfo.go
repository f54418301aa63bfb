package handlers

import (
	"encoding/json"
	"net/http"
)

func ApiInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"message": "Birthday Wisher API v1",
		"endpoints": map[string]string{
			"create": "POST /api/users",
			"list":   "GET /api/users",
			"delete": "DELETE /api/users/{id}",
			"today":  "GET /api/users/today",
		},
	}
	json.NewEncoder(w).Encode(response)
}
