package quiz_report_handler

import (
	"bytes"
	"log"
	"net/http"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/api_errors"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/heritage/pkg/http"
	"github.com/IT-Nick/heritage/report"
	"github.com/gorilla/mux"
)

// Format формат отчета
type Format int

const (
	FormatJSON Format = iota
	FormatPDF
)

// QuizReportHandler GET /quiz/sessions/{id}/report и /report.pdf
type QuizReportHandler struct {
	quizService *quizService.QuizService
	title       string
	format      Format
}

// NewQuizReportHandler создает новый экземпляр обработчика
func NewQuizReportHandler(quizService *quizService.QuizService, title string, format Format) *QuizReportHandler {
	return &QuizReportHandler{
		quizService: quizService,
		title:       title,
		format:      format,
	}
}

// ServeHTTP метод для обработки запроса
func (h *QuizReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := h.quizService.BuildReport(sessionID)
	if err != nil {
		api_errors.Write(w, err)
		return
	}

	if h.format == FormatJSON {
		httpError.JSONResponse(w, http.StatusOK, result)
		return
	}

	// PDF собираем в буфер, чтобы при ошибке еще можно было вернуть 500
	var buf bytes.Buffer
	if err := report.WriteQuizPDF(&buf, h.title, result); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(sessionID)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("failed to write pdf report for session %s: %v", sessionID, err)
	}
}
