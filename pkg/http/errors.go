package http

import (
	"encoding/json"
	"log"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// ErrorResponse отправляет ошибку в формате {"error": "..."}
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, errorBody{Error: message})
}

// JSONResponse сериализует v в тело ответа с заданным статусом
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
