package views

import (
	"strings"
	"testing"

	"github.com/IT-Nick/heritage/internal/domain/dto"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"gopkg.in/telebot.v4"
)

func buttons(m *telebot.ReplyMarkup) []telebot.InlineButton {
	var out []telebot.InlineButton
	for _, row := range m.InlineKeyboard {
		out = append(out, row...)
	}
	return out
}

func findButton(m *telebot.ReplyMarkup, unique string) (telebot.InlineButton, bool) {
	for _, b := range buttons(m) {
		if b.Unique == unique {
			return b, true
		}
	}
	return telebot.InlineButton{}, false
}

func questionState() dto.QuizState {
	return dto.QuizState{
		Index: 1,
		Total: 5,
		Question: &dto.QuestionView{
			ID:      2,
			Number:  2,
			Text:    "Which empire built the Konark Sun Temple?",
			Options: []string{"Mughal Empire", "Chola Empire", "Eastern Ganga Dynasty", "Vijayanagara Empire"},
		},
		Answered: 1,
		Score:    1,
	}
}

func TestHome(t *testing.T) {
	text, markup := Home("Preserving India's Heritage through AR", "Discover India's Treasures", 5, 5)

	if !strings.Contains(text, "Preserving India&#39;s Heritage through AR") {
		t.Errorf("ожидалось экранированное приветствие: %s", text)
	}
	if !strings.Contains(text, "5 Heritage Sites") {
		t.Errorf("ожидался счетчик объектов: %s", text)
	}
	for _, key := range []string{model.ARViewKey, model.SitesKey, model.QuizStartKey, model.ProfileKey} {
		if _, ok := findButton(markup, key); !ok {
			t.Errorf("нет кнопки %s", key)
		}
	}
}

func TestSites(t *testing.T) {
	sites := []model.HeritageSite{
		{ID: 1, Name: "Taj Mahal", Location: "Agra"},
		{ID: 5, Name: "Amer Fort", Location: "Jaipur"},
	}
	_, markup := Sites(sites)

	var siteButtons []telebot.InlineButton
	for _, b := range buttons(markup) {
		if b.Unique == model.SiteKey {
			siteButtons = append(siteButtons, b)
		}
	}
	if len(siteButtons) != 2 {
		t.Fatalf("ожидалось 2 кнопки объектов, получено %d", len(siteButtons))
	}
	if siteButtons[1].Data != "5" {
		t.Errorf("ожидался id 5 в данных кнопки, получено %q", siteButtons[1].Data)
	}
}

func TestSite_ARButtonOnlyWhenAvailable(t *testing.T) {
	site := model.HeritageSite{ID: 3, Name: "Ajanta-Ellora Caves", ARAvailable: true}
	_, markup := Site(site)
	if b, ok := findButton(markup, model.ARViewKey); !ok || b.Data != "3" {
		t.Errorf("ожидалась кнопка AR с id 3, получено %+v", b)
	}

	site.ARAvailable = false
	_, markup = Site(site)
	if _, ok := findButton(markup, model.ARViewKey); ok {
		t.Error("кнопки AR быть не должно")
	}
	if _, ok := findButton(markup, model.SiteQRKey); !ok {
		t.Error("ожидалась кнопка QR")
	}
}

func TestAR(t *testing.T) {
	text, markup := AR(model.ARView{SiteID: 1, SiteName: "Taj Mahal", ShowInfo: true}, "Point your camera")
	if !strings.Contains(text, "AR: Taj Mahal") || !strings.Contains(text, "Point your camera") {
		t.Errorf("неожиданный текст: %s", text)
	}
	if b, _ := findButton(markup, model.ARToggleKey); b.Text != "▶️ Start AR" {
		t.Errorf("ожидалась кнопка Start AR, получено %q", b.Text)
	}

	text, markup = AR(model.ARView{ARMode: true, Audio: true}, "Point your camera")
	if strings.Contains(text, "Point your camera") {
		t.Error("инструкция показывается только при ShowInfo")
	}
	if b, _ := findButton(markup, model.ARToggleKey); b.Text != "⏹ Stop AR" {
		t.Errorf("ожидалась кнопка Stop AR, получено %q", b.Text)
	}
}

func TestQuestion_Unanswered(t *testing.T) {
	text, markup := Question("Heritage Quiz", questionState())

	if !strings.Contains(text, "Question 2 of 5") {
		t.Errorf("ожидался прогресс: %s", text)
	}

	var answers []telebot.InlineButton
	for _, b := range buttons(markup) {
		if b.Unique == model.QuizAnswerKey {
			answers = append(answers, b)
		}
	}
	if len(answers) != 4 {
		t.Fatalf("ожидалось 4 варианта, получено %d", len(answers))
	}
	if answers[2].Data != "1|2" {
		t.Errorf("ожидались данные 1|2, получено %q", answers[2].Data)
	}
	if _, ok := findButton(markup, model.QuizNextKey); ok {
		t.Error("до ответа кнопки Next быть не должно")
	}
}

func TestQuestion_Answered(t *testing.T) {
	s := questionState()
	s.Locked = true
	s.Answered = 2
	s.Feedback = &dto.Feedback{Selected: 1, Correct: 2, Explanation: "Eastern Ganga Dynasty"}

	text, markup := Question("Heritage Quiz", s)
	for _, want := range []string{"Not quite! 🤔", "✅ C. Eastern Ganga Dynasty", "❌ B. Chola Empire", "Score: 1/2"} {
		if !strings.Contains(text, want) {
			t.Errorf("в тексте нет %q:\n%s", want, text)
		}
	}
	if _, ok := findButton(markup, model.QuizAnswerKey); ok {
		t.Error("после ответа кнопок вариантов быть не должно")
	}
	if b, ok := findButton(markup, model.QuizNextKey); !ok || b.Text != "➡️ Next Question" {
		t.Errorf("ожидалась кнопка Next Question, получено %+v", b)
	}

	s.Index = 4
	_, markup = Question("Heritage Quiz", s)
	if b, _ := findButton(markup, model.QuizNextKey); b.Text != "🏁 View Results" {
		t.Errorf("на последнем вопросе ожидалась кнопка View Results, получено %q", b.Text)
	}
}

func TestResults(t *testing.T) {
	r := dto.QuizReport{
		Score:      5,
		Total:      5,
		Percentage: 100,
		Band:       dto.BandInfo{Message: "Excellent! You're a heritage expert!", Emoji: "🏆"},
		Review: []dto.ReviewItem{
			{Number: 1, Question: "Q1", SelectedOption: "1653", CorrectOption: "1653", IsCorrect: true},
		},
	}
	text, markup := Results(r)
	if !strings.Contains(text, "5/5") || !strings.Contains(text, "(100%)") {
		t.Errorf("неожиданный итог: %s", text)
	}
	if strings.Contains(text, "Correct answer") {
		t.Error("для верного ответа правильный вариант не дублируется")
	}
	for _, key := range []string{model.QuizRestartKey, model.QuizPDFKey, model.HomeKey} {
		if _, ok := findButton(markup, key); !ok {
			t.Errorf("нет кнопки %s", key)
		}
	}
}

func TestProfile(t *testing.T) {
	p := model.Profile{
		DisplayName: "Heritage Explorer",
		Level:       2,
		Stats:       model.Stats{SitesVisited: 3, QuizzesCompleted: 2, ARExperiences: 5, StreakDays: 7},
		Achievements: []model.Achievement{
			{Title: "First Visit", Unlocked: true},
			{Title: "AR Explorer"},
		},
	}
	text, _ := Profile(p)
	for _, want := range []string{"Sites Visited: 3", "Day Streak: 7", "🏅 First Visit", "🔒 AR Explorer"} {
		if !strings.Contains(text, want) {
			t.Errorf("в профиле нет %q", want)
		}
	}
}
