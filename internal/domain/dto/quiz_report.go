package dto

// QuizReport итог завершенной сессии
type QuizReport struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage float64      `json:"percentage"`
	Band       BandInfo     `json:"band"`
	Review     []ReviewItem `json:"review"`
}

type BandInfo struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Emoji   string `json:"emoji"`
	Color   string `json:"color"`
}

type ReviewItem struct {
	Number         int    `json:"number"`
	Question       string `json:"question"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
}
