package model

// Stats статистика путешественника на экране профиля
type Stats struct {
	SitesVisited     int `json:"sites_visited" yaml:"sites_visited"`
	QuizzesCompleted int `json:"quizzes_completed" yaml:"quizzes_completed"`
	ARExperiences    int `json:"ar_experiences" yaml:"ar_experiences"`
	StreakDays       int `json:"streak_days" yaml:"streak_days"`
}

// Achievement достижение пользователя
type Achievement struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Unlocked    bool   `json:"unlocked" yaml:"unlocked"`
}

// Preferences настройки профиля. Только отображаются, нигде не сохраняются
type Preferences struct {
	Language      string `json:"language" yaml:"language"`
	Notifications bool   `json:"notifications" yaml:"notifications"`
	Audio         bool   `json:"audio" yaml:"audio"`
	OfflineMode   bool   `json:"offline_mode" yaml:"offline_mode"`
}

// Profile статический профиль пользователя
type Profile struct {
	DisplayName  string        `json:"display_name" yaml:"display_name"`
	Level        int           `json:"level" yaml:"level"`
	Title        string        `json:"title" yaml:"title"`
	Stats        Stats         `json:"stats" yaml:"stats"`
	Achievements []Achievement `json:"achievements" yaml:"-"`
	Preferences  Preferences   `json:"preferences" yaml:"preferences"`
}
