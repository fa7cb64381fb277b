package quiz

// Tier качественный уровень результата
type Tier int

const (
	TierExplorer Tier = iota
	TierGood
	TierGreat
	TierExpert
)

// Band сообщение и цвет для итогового экрана
type Band struct {
	Tier    Tier   `json:"tier"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Emoji   string `json:"emoji"`
	Color   string `json:"color"`
}

var bands = []struct {
	min  float64
	band Band
}{
	{80, Band{Tier: TierExpert, Name: "expert", Message: "Excellent! You're a heritage expert!", Emoji: "🏆", Color: "#00FF00"}},
	{60, Band{Tier: TierGreat, Name: "great", Message: "Great job! You know your Indian heritage well!", Emoji: "🎯", Color: "#FF6A00"}},
	{40, Band{Tier: TierGood, Name: "good", Message: "Good effort! Keep learning about our heritage!", Emoji: "📚", Color: "#FFD700"}},
}

var explorerBand = Band{Tier: TierExplorer, Name: "explorer", Message: "Keep exploring! There's so much to discover!", Emoji: "🌟", Color: "#FF6666"}

// BandFor возвращает уровень по проценту правильных ответов
func BandFor(percentage float64) Band {
	for _, b := range bands {
		if percentage >= b.min {
			return b.band
		}
	}
	return explorerBand
}

// Percentage score / total * 100. Для пустой викторины 0
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Headline сообщение вместе с эмодзи, как на итоговом экране
func (b Band) Headline() string {
	return b.Message + " " + b.Emoji
}
