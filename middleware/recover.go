package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, которое перехватывает панику в обработчике и передает ее в onError.
// По умолчанию паника только логируется.
func Recover(onError ...func(error, tele.Context)) tele.MiddlewareFunc {
	handleError := func(err error, c tele.Context) {
		userID := int64(0)
		if c.Sender() != nil {
			userID = c.Sender().ID
		}
		log.Printf("Recovered from panic in handler for user %d: %v", userID, err)
	}
	if len(onError) > 0 && onError[0] != nil {
		handleError = onError[0]
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					e := panicError(r)
					handleError(e, c)
					err = e
				}
			}()
			return next(c)
		}
	}
}

func panicError(r any) error {
	switch x := r.(type) {
	case error:
		return x
	case string:
		return errors.New(x)
	default:
		return fmt.Errorf("panic: %v", x)
	}
}

// RecoverHTTP то же для HTTP API: паника превращается в 500
func RecoverHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Recovered from panic in %s %s: %v", r.Method, r.URL.Path, panicError(rec))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
