package report

import (
	"fmt"
	"io"

	"github.com/IT-Nick/heritage/internal/domain/dto"
	"github.com/jung-kurt/gofpdf"
)

// Filename имя файла отчета для отправки пользователю
func Filename(owner string) string {
	if owner == "" {
		return "heritage_quiz_report.pdf"
	}
	return fmt.Sprintf("heritage_quiz_%s.pdf", owner)
}

// WriteQuizPDF формирует PDF-отчет по итогам викторины и пишет его в w.
// Используются встроенные шрифты, поэтому эмодзи в отчет не попадают.
func WriteQuizPDF(w io.Writer, title string, r dto.QuizReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(title, true)
	pdf.AddPage()

	// Заголовок отчета.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 10, tr(title), "", "L", false)
	pdf.Ln(2)

	// Итог и уровень.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, fmt.Sprintf("Score: %d / %d (%.0f%%)", r.Score, r.Total, r.Percentage), "", "L", false)

	red, green, blue := hexColor(r.Band.Color)
	pdf.SetTextColor(red, green, blue)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 8, tr(r.Band.Message), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Разбор ответов.
	for _, item := range r.Review {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("Question %d: %s", item.Number, item.Question)), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		mark := "correct"
		if !item.IsCorrect {
			mark = "incorrect"
		}
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Your answer: %s (%s)", item.SelectedOption, mark)), "", "L", false)
		if !item.IsCorrect {
			pdf.MultiCell(0, 6, tr("Correct answer: "+item.CorrectOption), "", "L", false)
		}
		if item.Explanation != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 6, tr(item.Explanation), "", "L", false)
		}
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// hexColor разбирает цвет вида #RRGGBB. Некорректное значение дает черный
func hexColor(s string) (int, int, int) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
