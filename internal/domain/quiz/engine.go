package quiz

import (
	"fmt"
	"sync"

	"github.com/IT-Nick/heritage/internal/domain/model"
)

// Engine ведет одну сессию викторины по фиксированному списку вопросов.
//
// Состояния: вопрос без ответа -> SubmitAnswer -> вопрос с ответом (locked)
// -> Advance -> следующий вопрос без ответа ... -> Advance на последнем -> Completed.
// Из Completed выводит только Reset.
//
// Инвариант: len(answers) == current + (locked ? 1 : 0), пока сессия не завершена.
type Engine struct {
	mu        sync.Mutex
	questions []model.Question
	current   int
	answers   []model.AnswerRecord
	score     int
	locked    bool
	completed bool
}

// ReviewItem ответ пользователя вместе с исходным вопросом
type ReviewItem struct {
	Question model.Question     `json:"question"`
	Answer   model.AnswerRecord `json:"answer"`
}

// Report итог завершенной сессии
type Report struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage float64      `json:"percentage"`
	Band       Band         `json:"band"`
	Items      []ReviewItem `json:"items"`
}

// NewEngine создает сессию. Вопросы копируются, поэтому дальнейшие
// изменения исходного слайса на сессию не влияют.
func NewEngine(questions []model.Question) (*Engine, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	qs := make([]model.Question, len(questions))
	for i, q := range questions {
		if err := ValidateQuestion(q); err != nil {
			return nil, fmt.Errorf("question #%d: %w", i+1, err)
		}
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}

	return &Engine{
		questions: qs,
		answers:   make([]model.AnswerRecord, 0, len(qs)),
	}, nil
}

// ValidateQuestion проверяет количество вариантов и индекс правильного ответа
func ValidateQuestion(q model.Question) error {
	if len(q.Options) != model.OptionsPerQuestion {
		return fmt.Errorf("%w: want %d options, got %d", ErrInvalidQuestion, model.OptionsPerQuestion, len(q.Options))
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: correct index %d out of range", ErrInvalidQuestion, q.Correct)
	}
	return nil
}

// SubmitAnswer принимает ответ на текущий вопрос.
// Повторный ответ, ответ после завершения и индекс вне [0,3] отклоняются без изменения состояния.
func (e *Engine) SubmitAnswer(option int) (model.AnswerRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submit(option)
}

// SubmitAnswerAt принимает ответ, только если текущий вопрос имеет индекс index.
// Так нажатие на клавиатуру уже пройденного вопроса не засчитывается следующему.
func (e *Engine) SubmitAnswerAt(index, option int) (model.AnswerRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.completed && index != e.current {
		return model.AnswerRecord{}, ErrStaleQuestion
	}
	return e.submit(option)
}

func (e *Engine) submit(option int) (model.AnswerRecord, error) {
	if e.completed {
		return model.AnswerRecord{}, ErrCompleted
	}
	if e.locked {
		return model.AnswerRecord{}, ErrAlreadyAnswered
	}
	if option < 0 || option >= model.OptionsPerQuestion {
		return model.AnswerRecord{}, ErrInvalidOption
	}

	record := model.NewAnswerRecord(e.questions[e.current], option)
	e.answers = append(e.answers, record)
	if record.IsCorrect {
		e.score++
	}
	e.locked = true

	return record, nil
}

// Advance переходит к следующему вопросу или завершает сессию на последнем.
// После завершения ничего не делает.
func (e *Engine) Advance() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.completed {
		return nil
	}
	if !e.locked {
		return ErrNotAnswered
	}

	if e.current < len(e.questions)-1 {
		e.current++
		e.locked = false
		return nil
	}

	e.completed = true
	return nil
}

// Reset возвращает сессию к первому вопросу из любого состояния
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = 0
	e.answers = make([]model.AnswerRecord, 0, len(e.questions))
	e.score = 0
	e.locked = false
	e.completed = false
}

// Report возвращает итог. Доступен только после завершения
func (e *Engine) Report() (Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.completed {
		return Report{}, ErrNotCompleted
	}

	items := make([]ReviewItem, len(e.answers))
	for i, a := range e.answers {
		q := e.questions[i]
		q.Options = append([]string(nil), q.Options...)
		items[i] = ReviewItem{Question: q, Answer: a}
	}

	total := len(e.questions)
	percentage := Percentage(e.score, total)

	return Report{
		Score:      e.score,
		Total:      total,
		Percentage: percentage,
		Band:       BandFor(percentage),
		Items:      items,
	}, nil
}

// CurrentQuestion текущий вопрос; false, если сессия завершена
func (e *Engine) CurrentQuestion() (model.Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.completed {
		return model.Question{}, false
	}
	q := e.questions[e.current]
	q.Options = append([]string(nil), q.Options...)
	return q, true
}

func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

func (e *Engine) IsCompleted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed
}

func (e *Engine) IsLocked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locked
}

// CurrentScore число правильных среди всех уже данных ответов
func (e *Engine) CurrentScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Answers копия записанных ответов
func (e *Engine) Answers() []model.AnswerRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.AnswerRecord(nil), e.answers...)
}

// LastAnswer ответ на текущий вопрос, если он уже дан
func (e *Engine) LastAnswer() (model.AnswerRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.locked || len(e.answers) == 0 {
		return model.AnswerRecord{}, false
	}
	return e.answers[len(e.answers)-1], true
}

// Total количество вопросов в сессии
func (e *Engine) Total() int {
	return len(e.questions)
}

// Snapshot согласованный срез состояния, снятый под одной блокировкой
type Snapshot struct {
	Index     int
	Total     int
	Question  model.Question
	Answered  int
	Score     int
	Locked    bool
	Completed bool
	Last      *model.AnswerRecord
}

// Snapshot возвращает состояние целиком, чтобы экран не собирал его из нескольких вызовов
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Index:     e.current,
		Total:     len(e.questions),
		Answered:  len(e.answers),
		Score:     e.score,
		Locked:    e.locked,
		Completed: e.completed,
	}
	if !e.completed {
		q := e.questions[e.current]
		q.Options = append([]string(nil), q.Options...)
		s.Question = q
	}
	if e.locked && len(e.answers) > 0 {
		last := e.answers[len(e.answers)-1]
		s.Last = &last
	}
	return s
}
