package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Logger возвращает middleware, которое логирует входящие обновления Telegram.
// Если передан логгер, используется он, иначе log.Default().
func Logger(logger ...*log.Logger) tele.MiddlewareFunc {
	l := pickLogger(logger)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			data, _ := json.MarshalIndent(c.Update(), "", "  ")
			l.Println(string(data))
			return next(c)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AccessLog HTTP middleware: метод, путь, статус и длительность каждого запроса
func AccessLog(logger ...*log.Logger) func(http.Handler) http.Handler {
	l := pickLogger(logger)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			l.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}

func pickLogger(logger []*log.Logger) *log.Logger {
	if len(logger) > 0 && logger[0] != nil {
		return logger[0]
	}
	return log.Default()
}
