package quiz

import (
	"errors"
	"reflect"
	"testing"

	"github.com/IT-Nick/heritage/internal/domain/model"
)

// 1. Повторный ответ на тот же вопрос ничего не меняет.
// 2. Счет после полного прохождения равен числу совпадений selected == correct.
// 3. N-й вызов Advance (после ответа) и только он завершает сессию.
// 4. Reset из любого состояния возвращает начальное состояние.
// 5. Сценарии [1,2,0,2,3] -> 5/5 и [0,0,0,0,0] -> 1/5.
// 6. Report идемпотентен.

// sampleQuestions набор из пяти вопросов с правильными ответами [1,2,0,2,3].
func sampleQuestions() []model.Question {
	return []model.Question{
		{ID: 1, SiteID: 1, Text: "When was the Taj Mahal completed?", Options: []string{"1648", "1653", "1665", "1672"}, Correct: 1, Explanation: "The Taj Mahal was completed in 1653 after 22 years of construction."},
		{ID: 2, SiteID: 2, Text: "Which empire built the Konark Sun Temple?", Options: []string{"Mughal Empire", "Chola Empire", "Eastern Ganga Dynasty", "Vijayanagara Empire"}, Correct: 2, Explanation: "The Konark Sun Temple was built by the Eastern Ganga Dynasty in the 13th century."},
		{ID: 3, SiteID: 3, Text: "How many caves are there in total at Ajanta and Ellora?", Options: []string{"64", "68", "72", "76"}, Correct: 0, Explanation: "There are 30 caves at Ajanta and 34 caves at Ellora, making a total of 64 caves."},
		{ID: 4, SiteID: 4, Text: "Which goddess is the Meenakshi Temple primarily dedicated to?", Options: []string{"Lakshmi", "Saraswati", "Parvati", "Kali"}, Correct: 2, Explanation: "The Meenakshi Temple is dedicated to Goddess Parvati (Meenakshi) and Lord Shiva."},
		{ID: 5, SiteID: 5, Text: "What architectural style is the Amer Fort known for?", Options: []string{"Dravidian", "Indo-Islamic", "Nagara", "Rajput-Mughal"}, Correct: 3, Explanation: "Amer Fort showcases a blend of Rajput and Mughal architectural styles."},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(sampleQuestions())
	if err != nil {
		t.Fatalf("NewEngine вернул ошибку: %v", err)
	}
	return e
}

// play отвечает на все вопросы по очереди и переходит дальше.
func play(t *testing.T, e *Engine, picks []int) {
	t.Helper()
	for i, p := range picks {
		if _, err := e.SubmitAnswer(p); err != nil {
			t.Fatalf("вопрос %d: SubmitAnswer(%d) вернул ошибку: %v", i+1, p, err)
		}
		if err := e.Advance(); err != nil {
			t.Fatalf("вопрос %d: Advance вернул ошибку: %v", i+1, err)
		}
	}
}

func TestNewEngine_Validation(t *testing.T) {
	if _, err := NewEngine(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("ожидалась ErrNoQuestions, получено %v", err)
	}

	bad := sampleQuestions()
	bad[2].Options = bad[2].Options[:3]
	if _, err := NewEngine(bad); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("три варианта: ожидалась ErrInvalidQuestion, получено %v", err)
	}

	bad = sampleQuestions()
	bad[0].Correct = 4
	if _, err := NewEngine(bad); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("correct=4: ожидалась ErrInvalidQuestion, получено %v", err)
	}
}

func TestNewEngine_CopiesQuestions(t *testing.T) {
	qs := sampleQuestions()
	e, err := NewEngine(qs)
	if err != nil {
		t.Fatalf("NewEngine вернул ошибку: %v", err)
	}
	qs[0].Text = "changed"
	qs[0].Options[0] = "changed"

	q, ok := e.CurrentQuestion()
	if !ok {
		t.Fatal("сессия не должна быть завершена")
	}
	if q.Text == "changed" || q.Options[0] == "changed" {
		t.Errorf("изменение исходного слайса попало в сессию: %+v", q)
	}
}

func TestSubmitAnswer_RecordsOnce(t *testing.T) {
	for option := 0; option < model.OptionsPerQuestion; option++ {
		e := newTestEngine(t)

		rec, err := e.SubmitAnswer(option)
		if err != nil {
			t.Fatalf("SubmitAnswer(%d) вернул ошибку: %v", option, err)
		}
		want := model.AnswerRecord{QuestionID: 1, Selected: option, Correct: 1, IsCorrect: option == 1}
		if rec != want {
			t.Errorf("ожидалось %+v, получено %+v", want, rec)
		}

		for retry := 0; retry < model.OptionsPerQuestion; retry++ {
			if _, err := e.SubmitAnswer(retry); !errors.Is(err, ErrAlreadyAnswered) {
				t.Errorf("повторный ответ %d: ожидалась ErrAlreadyAnswered, получено %v", retry, err)
			}
		}
		if n := len(e.Answers()); n != 1 {
			t.Errorf("после повторных ответов ожидалась 1 запись, получено %d", n)
		}
		if e.CurrentScore() != boolToInt(option == 1) {
			t.Errorf("повторный ответ изменил счет: %d", e.CurrentScore())
		}
	}
}

func TestSubmitAnswer_InvalidOption(t *testing.T) {
	e := newTestEngine(t)
	for _, option := range []int{-1, 4, 100} {
		if _, err := e.SubmitAnswer(option); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("SubmitAnswer(%d): ожидалась ErrInvalidOption, получено %v", option, err)
		}
	}
	if e.IsLocked() || len(e.Answers()) != 0 {
		t.Error("неверный индекс не должен менять состояние")
	}
	if _, err := e.SubmitAnswer(1); err != nil {
		t.Errorf("после неверного индекса правильный ответ должен приниматься: %v", err)
	}
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Advance(); !errors.Is(err, ErrNotAnswered) {
		t.Fatalf("ожидалась ErrNotAnswered, получено %v", err)
	}
	if e.CurrentIndex() != 0 {
		t.Errorf("Advance без ответа сдвинул указатель: %d", e.CurrentIndex())
	}
}

func TestAdvance_CompletesOnNthCall(t *testing.T) {
	e := newTestEngine(t)
	n := e.Total()

	for i := 1; i <= n; i++ {
		if _, err := e.SubmitAnswer(0); err != nil {
			t.Fatalf("вопрос %d: %v", i, err)
		}
		if err := e.Advance(); err != nil {
			t.Fatalf("Advance #%d вернул ошибку: %v", i, err)
		}
		if got := e.IsCompleted(); got != (i == n) {
			t.Fatalf("после Advance #%d completed=%v", i, got)
		}
	}

	if err := e.Advance(); err != nil {
		t.Errorf("Advance после завершения должен быть no-op, получено %v", err)
	}
	if !e.IsCompleted() || e.CurrentIndex() != n-1 {
		t.Errorf("Advance после завершения изменил состояние: index=%d", e.CurrentIndex())
	}
	if _, err := e.SubmitAnswer(0); !errors.Is(err, ErrCompleted) {
		t.Errorf("ответ после завершения: ожидалась ErrCompleted, получено %v", err)
	}
	if _, ok := e.CurrentQuestion(); ok {
		t.Error("после завершения текущего вопроса нет")
	}
}

func TestInvariant_AnswersMatchPointer(t *testing.T) {
	e := newTestEngine(t)
	picks := []int{1, 3, 0, 2, 1}

	for _, p := range picks {
		s := e.Snapshot()
		if s.Answered != s.Index {
			t.Fatalf("до ответа: answers=%d index=%d", s.Answered, s.Index)
		}
		if _, err := e.SubmitAnswer(p); err != nil {
			t.Fatal(err)
		}
		s = e.Snapshot()
		if s.Answered != s.Index+1 {
			t.Fatalf("после ответа: answers=%d index=%d", s.Answered, s.Index)
		}
		if s.Last == nil || s.Last.Selected != p {
			t.Fatalf("последний ответ не совпадает: %+v", s.Last)
		}
		if err := e.Advance(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScore_EqualsCorrectAnswers(t *testing.T) {
	cases := [][]int{
		{1, 2, 0, 2, 3},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 1, 3},
		{3, 3, 3, 3, 3},
	}
	for _, picks := range cases {
		e := newTestEngine(t)
		play(t, e, picks)

		want := 0
		for _, a := range e.Answers() {
			if a.Selected == a.Correct {
				want++
			}
		}
		if e.CurrentScore() != want {
			t.Errorf("%v: счет %d, ожидалось %d", picks, e.CurrentScore(), want)
		}
	}
}

func TestReset_FromAnyState(t *testing.T) {
	states := map[string]func(e *Engine){
		"fresh":     func(e *Engine) {},
		"answered":  func(e *Engine) { _, _ = e.SubmitAnswer(1) },
		"advanced":  func(e *Engine) { _, _ = e.SubmitAnswer(1); _ = e.Advance(); _, _ = e.SubmitAnswer(0) },
		"completed": func(e *Engine) { play(t, e, []int{1, 2, 0, 2, 3}) },
	}

	for name, prepare := range states {
		e := newTestEngine(t)
		prepare(e)
		e.Reset()

		s := e.Snapshot()
		if s.Index != 0 || s.Score != 0 || s.Answered != 0 || s.Locked || s.Completed {
			t.Errorf("%s: после Reset состояние %+v", name, s)
		}
		if q, ok := e.CurrentQuestion(); !ok || q.ID != 1 {
			t.Errorf("%s: после Reset ожидался первый вопрос, получено %+v", name, q)
		}
		if _, err := e.SubmitAnswer(1); err != nil {
			t.Errorf("%s: после Reset ответ должен приниматься: %v", name, err)
		}
	}
}

func TestReport_AllCorrect(t *testing.T) {
	e := newTestEngine(t)
	play(t, e, []int{1, 2, 0, 2, 3})

	r, err := e.Report()
	if err != nil {
		t.Fatalf("Report вернул ошибку: %v", err)
	}
	if r.Score != 5 || r.Total != 5 {
		t.Errorf("ожидалось 5/5, получено %d/%d", r.Score, r.Total)
	}
	if r.Percentage != 100 {
		t.Errorf("ожидалось 100%%, получено %v", r.Percentage)
	}
	if r.Band.Tier != TierExpert {
		t.Errorf("ожидался верхний уровень, получено %+v", r.Band)
	}
	for i, item := range r.Items {
		if item.Question.ID != item.Answer.QuestionID {
			t.Errorf("элемент %d: вопрос %d и ответ %d не совпадают", i, item.Question.ID, item.Answer.QuestionID)
		}
		if !item.Answer.IsCorrect {
			t.Errorf("элемент %d должен быть верным", i)
		}
	}
}

func TestReport_AllZero(t *testing.T) {
	e := newTestEngine(t)
	play(t, e, []int{0, 0, 0, 0, 0})

	r, err := e.Report()
	if err != nil {
		t.Fatalf("Report вернул ошибку: %v", err)
	}
	if r.Score != 1 {
		t.Errorf("ожидался счет 1 (только третий вопрос), получено %d", r.Score)
	}
	if r.Percentage != 20 {
		t.Errorf("ожидалось 20%%, получено %v", r.Percentage)
	}
	if r.Band.Tier != TierExplorer {
		t.Errorf("ожидался нижний уровень, получено %+v", r.Band)
	}
	if !r.Items[2].Answer.IsCorrect {
		t.Error("третий ответ должен быть верным")
	}
}

func TestReport_NotCompleted(t *testing.T) {
	e := newTestEngine(t)
	_, _ = e.SubmitAnswer(1)
	if _, err := e.Report(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("ожидалась ErrNotCompleted, получено %v", err)
	}
}

func TestReport_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	play(t, e, []int{1, 0, 0, 2, 1})

	first, err := e.Report()
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Report()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("отчеты различаются:\n%+v\n%+v", first, second)
	}

	// Изменение возвращенного отчета не должно влиять на следующий.
	first.Items[0].Question.Options[0] = "changed"
	third, _ := e.Report()
	if !reflect.DeepEqual(second, third) {
		t.Error("изменение отчета повлияло на сессию")
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
