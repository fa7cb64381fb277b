package dto

// QuizState состояние сессии викторины для бота и HTTP API
type QuizState struct {
	SessionID string        `json:"session_id,omitempty"`
	Index     int           `json:"index"`
	Total     int           `json:"total"`
	Answered  int           `json:"answered"`
	Score     int           `json:"score"`
	Locked    bool          `json:"locked"`
	Completed bool          `json:"completed"`
	Question  *QuestionView `json:"question,omitempty"`
	Feedback  *Feedback     `json:"feedback,omitempty"`
}

// QuestionView вопрос без правильного индекса
type QuestionView struct {
	ID      int      `json:"id"`
	Number  int      `json:"number"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

// Feedback результат ответа на текущий вопрос. Появляется только после ответа
type Feedback struct {
	Selected    int    `json:"selected"`
	Correct     int    `json:"correct"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// AnswerResponse ответ на POST /quiz/sessions/{id}/answers
type AnswerResponse struct {
	IsCorrect bool      `json:"is_correct"`
	Correct   int       `json:"correct"`
	State     QuizState `json:"state"`
}

// SessionCreatedResponse ответ на POST /quiz/sessions
type SessionCreatedResponse struct {
	SessionID string    `json:"session_id"`
	State     QuizState `json:"state"`
}
