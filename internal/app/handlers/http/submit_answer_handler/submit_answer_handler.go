package submit_answer_handler

import (
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/api_errors"
	"github.com/IT-Nick/heritage/internal/domain/dto"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/heritage/pkg/http"
	"github.com/gorilla/mux"
)

// SubmitAnswerRequest структура для данных запроса
type SubmitAnswerRequest struct {
	Option *int `json:"option"`
}

// SubmitAnswerHandler POST /quiz/sessions/{id}/answers
type SubmitAnswerHandler struct {
	quizService *quizService.QuizService
}

// NewSubmitAnswerHandler создает новый экземпляр обработчика
func NewSubmitAnswerHandler(quizService *quizService.QuizService) *SubmitAnswerHandler {
	return &SubmitAnswerHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *SubmitAnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	// Декодируем тело запроса
	var request SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.Option == nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing option in request body")
		return
	}

	record, err := h.quizService.Submit(sessionID, *request.Option)
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

	httpError.JSONResponse(w, http.StatusOK, dto.AnswerResponse{
		IsCorrect: record.IsCorrect,
		Correct:   record.Correct,
		State:     state,
	})
}
