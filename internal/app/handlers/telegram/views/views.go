// Package views собирает тексты и инлайн-клавиатуры экранов бота.
// Функции чистые: на вход данные домена, на выход текст и разметка.
package views

import (
	"fmt"
	"html"
	"strings"

	"github.com/IT-Nick/heritage/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// Show редактирует сообщение с кнопкой, если экран открыт из callback, иначе отправляет новое
func Show(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	opts := &telebot.SendOptions{
		ParseMode:   telebot.ModeHTML,
		ReplyMarkup: markup,
	}
	if c.Callback() != nil && c.Message() != nil {
		// Повторное нажатие той же кнопки не меняет экран
		if err := c.Edit(text, opts); err != nil && !strings.Contains(err.Error(), "message is not modified") {
			return err
		}
		return nil
	}
	return c.Send(text, opts)
}

// Notice короткое всплывающее уведомление в ответ на нажатие кнопки
func Notice(c telebot.Context, text string) error {
	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&telebot.CallbackResponse{Text: text})
}

func esc(s string) string {
	return html.EscapeString(s)
}

func homeButton(markup *telebot.ReplyMarkup) telebot.Btn {
	return markup.Data("🏠 Home", model.HomeKey)
}

// Home главный экран
func Home(welcome, features string, sites, questions int) (string, *telebot.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("🏛 <b>Heritage Explorer</b>\n")
	b.WriteString(esc(welcome))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "<b>%s</b>\n", esc(features))
	fmt.Fprintf(&b, "🗺 %d Heritage Sites\n", sites)
	fmt.Fprintf(&b, "❓ %d Quiz Questions\n", questions)
	b.WriteString("🌐 1 Language\n")

	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("📱 Explore in AR", model.ARViewKey)),
		markup.Row(markup.Data("🏛 Heritage Sites", model.SitesKey)),
		markup.Row(
			markup.Data("🧠 Quiz", model.QuizStartKey),
			markup.Data("👤 Profile", model.ProfileKey),
		),
	)
	return b.String(), markup
}

// Sites список объектов, по кнопке на каждый
func Sites(sites []model.HeritageSite) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(sites)+1)

	var b strings.Builder
	b.WriteString("🏛 <b>Heritage Sites</b>\n\n")
	if len(sites) == 0 {
		b.WriteString("No heritage sites available yet.")
	}
	for _, s := range sites {
		fmt.Fprintf(&b, "• <b>%s</b>, %s\n", esc(s.Name), esc(s.Location))
		rows = append(rows, markup.Row(markup.Data(s.Name, model.SiteKey, fmt.Sprint(s.ID))))
	}

	rows = append(rows, markup.Row(homeButton(markup)))
	markup.Inline(rows...)
	return b.String(), markup
}

// Site карточка объекта
func Site(s model.HeritageSite) (string, *telebot.ReplyMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "🏛 <b>%s</b>\n📍 %s\n\n", esc(s.Name), esc(s.Location))
	b.WriteString(esc(s.Description))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "<b>Built:</b> %s\n", esc(s.YearBuilt))
	fmt.Fprintf(&b, "<b>Architect:</b> %s\n", esc(s.Architect))
	fmt.Fprintf(&b, "<b>Significance:</b> %s\n", esc(s.Significance))

	markup := &telebot.ReplyMarkup{}
	id := fmt.Sprint(s.ID)
	var actions telebot.Row
	if s.ARAvailable {
		actions = append(actions, markup.Data("📱 View in AR", model.ARViewKey, id))
	}
	actions = append(actions, markup.Data("🔳 QR code", model.SiteQRKey, id))

	markup.Inline(
		actions,
		markup.Row(markup.Data("⬅️ All sites", model.SitesKey), homeButton(markup)),
	)
	return b.String(), markup
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// AR заглушка AR-экрана. Переключатели только меняют подписи
func AR(v model.ARView, instructions string) (string, *telebot.ReplyMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "📱 <b>%s</b>\n\n", esc(v.Title()))
	if v.ARMode {
		b.WriteString("🟢 AR mode is active. Move around to explore different angles.\n")
	} else {
		b.WriteString("📷 Camera preview. Tap \"Start AR\" to begin the experience.\n")
	}
	if v.ShowInfo {
		b.WriteString("\n<b>How to use</b>\n")
		b.WriteString(esc(instructions))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n🔊 Audio narration: %s", onOff(v.Audio))

	markup := &telebot.ReplyMarkup{}
	id := fmt.Sprint(v.SiteID)
	toggle := "▶️ Start AR"
	if v.ARMode {
		toggle = "⏹ Stop AR"
	}
	markup.Inline(
		markup.Row(markup.Data(toggle, model.ARToggleKey, id)),
		markup.Row(
			markup.Data("🔊 Audio "+onOff(!v.Audio), model.ARAudioKey, id),
			markup.Data("ℹ️ Info", model.ARInfoKey, id),
		),
		markup.Row(homeButton(markup)),
	)
	return b.String(), markup
}
