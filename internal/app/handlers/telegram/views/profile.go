package views

import (
	"fmt"
	"strings"

	"github.com/IT-Nick/heritage/internal/domain/model"
	"gopkg.in/telebot.v4"
)

func yesNo(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// Profile статический профиль пользователя
func Profile(p model.Profile) (string, *telebot.ReplyMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 <b>%s</b>\nLevel %d · %s\n\n", esc(p.DisplayName), p.Level, esc(p.Title))

	b.WriteString("<b>Your Journey</b>\n")
	fmt.Fprintf(&b, "🏛 Sites Visited: %d\n", p.Stats.SitesVisited)
	fmt.Fprintf(&b, "🧠 Quizzes Completed: %d\n", p.Stats.QuizzesCompleted)
	fmt.Fprintf(&b, "📱 AR Experiences: %d\n", p.Stats.ARExperiences)
	fmt.Fprintf(&b, "🔥 Day Streak: %d\n\n", p.Stats.StreakDays)

	b.WriteString("<b>Achievements</b>\n")
	for _, a := range p.Achievements {
		mark := "🔒"
		if a.Unlocked {
			mark = "🏅"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, esc(a.Title), esc(a.Description))
	}

	b.WriteString("\n<b>Preferences</b>\n")
	fmt.Fprintf(&b, "Language: %s\n", esc(p.Preferences.Language))
	fmt.Fprintf(&b, "Notifications: %s\n", yesNo(p.Preferences.Notifications))
	fmt.Fprintf(&b, "Audio Narration: %s\n", yesNo(p.Preferences.Audio))
	fmt.Fprintf(&b, "Offline Mode: %s", yesNo(p.Preferences.OfflineMode))

	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(homeButton(markup)))
	return b.String(), markup
}
