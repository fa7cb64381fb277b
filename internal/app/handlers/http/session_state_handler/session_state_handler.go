package session_state_handler

import (
	"net/http"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/api_errors"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/heritage/pkg/http"
	"github.com/gorilla/mux"
)

// SessionStateHandler GET /quiz/sessions/{id}
type SessionStateHandler struct {
	quizService *quizService.QuizService
}

func NewSessionStateHandler(quizService *quizService.QuizService) *SessionStateHandler {
	return &SessionStateHandler{quizService: quizService}
}

func (h *SessionStateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	state, err := h.quizService.State(sessionID)
	if err != nil {
		api_errors.Write(w, err)
		return
	}
	state.SessionID = sessionID

	httpError.JSONResponse(w, http.StatusOK, state)
}
