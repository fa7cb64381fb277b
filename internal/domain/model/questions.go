package model

// OptionsPerQuestion количество вариантов ответа у каждого вопроса викторины
const OptionsPerQuestion = 4

// Question представляет вопрос викторины. После загрузки не изменяется.
type Question struct {
	ID          int      `json:"id" yaml:"id"`
	SiteID      int      `json:"site_id,omitempty" yaml:"site_id"`
	Text        string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// Option возвращает текст варианта ответа или пустую строку, если индекс вне диапазона
func (q Question) Option(i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

// CorrectOption возвращает текст правильного варианта
func (q Question) CorrectOption() string {
	return q.Option(q.Correct)
}
