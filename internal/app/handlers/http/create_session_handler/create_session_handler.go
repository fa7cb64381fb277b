package create_session_handler

import (
	"net/http"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/api_errors"
	"github.com/IT-Nick/heritage/internal/domain/dto"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/heritage/pkg/http"
)

// CreateSessionHandler POST /quiz/sessions: новая сессия под случайным UUID
type CreateSessionHandler struct {
	quizService *quizService.QuizService
}

// NewCreateSessionHandler создает новый экземпляр обработчика
func NewCreateSessionHandler(quizService *quizService.QuizService) *CreateSessionHandler {
	return &CreateSessionHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *CreateSessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID, engine, err := h.quizService.StartAnonymous(r.Context())
	if err != nil {
		api_errors.Write(w, err)
		return
	}

	state := quizService.StateOf(engine.Snapshot())
	state.SessionID = sessionID

	w.Header().Set("Location", "/quiz/sessions/"+sessionID)
	httpError.JSONResponse(w, http.StatusCreated, dto.SessionCreatedResponse{
		SessionID: sessionID,
		State:     state,
	})
}
