package model

// AnswerRecord фиксирует выбор пользователя по одному вопросу.
// Создается один раз в момент ответа и больше не меняется.
type AnswerRecord struct {
	QuestionID int  `json:"question_id"`
	Selected   int  `json:"selected"`
	Correct    int  `json:"correct"`
	IsCorrect  bool `json:"is_correct"`
}

// NewAnswerRecord вычисляет IsCorrect по выбранному и правильному индексам
func NewAnswerRecord(q Question, selected int) AnswerRecord {
	return AnswerRecord{
		QuestionID: q.ID,
		Selected:   selected,
		Correct:    q.Correct,
		IsCorrect:  selected == q.Correct,
	}
}
