package views

import (
	"fmt"
	"strings"

	"github.com/IT-Nick/heritage/internal/domain/dto"
	"github.com/IT-Nick/heritage/internal/domain/model"
	"gopkg.in/telebot.v4"
)

var optionLetters = [model.OptionsPerQuestion]string{"A", "B", "C", "D"}

func letter(i int) string {
	if i < 0 || i >= len(optionLetters) {
		return "?"
	}
	return optionLetters[i]
}

// AnswerData данные кнопки ответа: номер вопроса и вариант.
// Номер нужен, чтобы отсеять нажатия на клавиатуру старого вопроса
func AnswerData(questionIndex, option int) []string {
	return []string{fmt.Sprint(questionIndex), fmt.Sprint(option)}
}

func progressBar(done, total int) string {
	if total <= 0 {
		return ""
	}
	return strings.Repeat("🟩", done) + strings.Repeat("⬜️", total-done)
}

// Question экран текущего вопроса. После ответа показывает разметку вариантов и пояснение
func Question(title string, s dto.QuizState) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	q := s.Question
	if q == nil {
		return "The quiz is already completed.", markup
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🧠 <b>%s</b>\n", esc(title))
	fmt.Fprintf(&b, "Question %d of %d\n%s\n\n", q.Number, s.Total, progressBar(s.Answered, s.Total))
	fmt.Fprintf(&b, "<b>%s</b>\n\n", esc(q.Text))

	if s.Feedback == nil {
		rows := make([]telebot.Row, 0, len(q.Options))
		for i, opt := range q.Options {
			fmt.Fprintf(&b, "%s. %s\n", letter(i), esc(opt))
			rows = append(rows, markup.Row(markup.Data(letter(i)+". "+opt, model.QuizAnswerKey, AnswerData(s.Index, i)...)))
		}
		markup.Inline(rows...)
		return b.String(), markup
	}

	f := s.Feedback
	for i, opt := range q.Options {
		mark := "▫️"
		switch {
		case i == f.Correct:
			mark = "✅"
		case i == f.Selected:
			mark = "❌"
		}
		fmt.Fprintf(&b, "%s %s. %s\n", mark, letter(i), esc(opt))
	}

	if f.IsCorrect {
		b.WriteString("\n<b>Correct! 🎉</b>\n")
	} else {
		b.WriteString("\n<b>Not quite! 🤔</b>\n")
	}
	if f.Explanation != "" {
		b.WriteString(esc(f.Explanation))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nScore: %d/%d", s.Score, s.Answered)

	next := "➡️ Next Question"
	if s.Index == s.Total-1 {
		next = "🏁 View Results"
	}
	markup.Inline(markup.Row(markup.Data(next, model.QuizNextKey)))
	return b.String(), markup
}

// Results итоговый экран с разбором всех ответов
func Results(r dto.QuizReport) (string, *telebot.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("🏆 <b>Quiz Completed!</b>\n\n")
	fmt.Fprintf(&b, "Your Score: <b>%d/%d</b> (%.0f%%)\n", r.Score, r.Total, r.Percentage)
	fmt.Fprintf(&b, "%s %s\n\n", esc(r.Band.Message), r.Band.Emoji)

	b.WriteString("<b>Review</b>\n")
	for _, item := range r.Review {
		mark := "✅"
		if !item.IsCorrect {
			mark = "❌"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, item.Number, esc(item.Question))
		fmt.Fprintf(&b, "   Your answer: %s\n", esc(item.SelectedOption))
		if !item.IsCorrect {
			fmt.Fprintf(&b, "   Correct answer: %s\n", esc(item.CorrectOption))
		}
	}

	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("🔄 Try Again", model.QuizRestartKey),
			markup.Data("📄 PDF report", model.QuizPDFKey),
		),
		markup.Row(homeButton(markup)),
	)
	return b.String(), markup
}
