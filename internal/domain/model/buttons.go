package model

// Константы для кнопок. Привязаны к названиям обработчиков (InlineButton.Unique).
// Не следует изменять константы без изменения регистрации обработчиков в app
const (
	SitesKey       = "sites"
	SiteKey        = "site"
	SiteQRKey      = "site_qr"
	ARViewKey      = "ar_view"
	ARToggleKey    = "ar_toggle"
	ARAudioKey     = "ar_audio"
	ARInfoKey      = "ar_info"
	QuizStartKey   = "quiz_start"
	QuizAnswerKey  = "quiz_answer"
	QuizNextKey    = "quiz_next"
	QuizRestartKey = "quiz_restart"
	QuizPDFKey     = "quiz_pdf"
	ProfileKey     = "profile"
	HomeKey        = "home"
)

// Ключи текстов сообщений в хранилище контента
const (
	WelcomeMessageKey   = "welcome_message"
	FeaturesMessageKey  = "features_message"
	ARInstructionsKey   = "ar_instructions"
	QuizTitleMessageKey = "quiz_title"
)
