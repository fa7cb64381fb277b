package middleware

import (
	"fmt"
	"log"

	"gopkg.in/telebot.v4"
)

// StateFunc возвращает краткое описание состояния пользователя (например, прогресс викторины)
type StateFunc func(userID int64) string

// DebugUserActions возвращает middleware, которое при включённом режиме отладки отправляет пользователю
// отладочное сообщение: имя, ID, текущее состояние викторины и описание действия.
func DebugUserActions(enabled bool, state StateFunc) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			err := next(c)
			if !enabled || c.Sender() == nil {
				return err
			}

			user := c.Sender()
			stateStr := "-"
			if state != nil {
				stateStr = state(user.ID)
			}

			// Определяем тип действия пользователя.
			var action string
			if cb := c.Callback(); cb != nil {
				action = fmt.Sprintf("Callback: %s|%s", cb.Unique, cb.Data)
			} else if msg := c.Message(); msg != nil {
				action = "Message: " + msg.Text
			} else {
				action = "Unknown action"
			}

			debugMsg := fmt.Sprintf("DEBUG: User: %s (ID: %d), Quiz: %s, Action: %s",
				user.FirstName, user.ID, stateStr, action)
			if sendErr := c.Send(debugMsg); sendErr != nil {
				log.Printf("failed to send debug message to %d: %v", user.ID, sendErr)
			}
			return err
		}
	}
}
