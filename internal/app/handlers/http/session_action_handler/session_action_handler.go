package session_action_handler

import (
	"fmt"
	"net/http"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/api_errors"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/heritage/pkg/http"
	"github.com/gorilla/mux"
)

// Action переход сессии без тела запроса
type Action string

const (
	ActionAdvance Action = "advance"
	ActionReset   Action = "reset"
)

// SessionActionHandler POST /quiz/sessions/{id}/advance и /reset. Возвращает новое состояние
type SessionActionHandler struct {
	quizService *quizService.QuizService
	action      Action
}

func NewSessionActionHandler(quizService *quizService.QuizService, action Action) *SessionActionHandler {
	return &SessionActionHandler{
		quizService: quizService,
		action:      action,
	}
}

func (h *SessionActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var err error
	switch h.action {
	case ActionAdvance:
		err = h.quizService.Advance(sessionID)
	case ActionReset:
		err = h.quizService.Reset(sessionID)
	default:
		err = fmt.Errorf("unknown session action %q", h.action)
	}
	if err != nil {
		api_errors.Write(w, err)
		return
	}

	state, err := h.quizService.State(sessionID)
	if err != nil {
		api_errors.Write(w, err)
		return
	}
	state.SessionID = sessionID

	httpError.JSONResponse(w, http.StatusOK, state)
}
