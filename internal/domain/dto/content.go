package dto

import "github.com/IT-Nick/heritage/internal/domain/model"

// SiteResponse объект наследия со ссылками на AR
type SiteResponse struct {
	model.HeritageSite
	ARLink string `json:"ar_link,omitempty"`
	QRURL  string `json:"qr_url"`
}

// ProfileResponse профиль с количеством открытых достижений
type ProfileResponse struct {
	model.Profile
	UnlockedAchievements int `json:"unlocked_achievements"`
	TotalAchievements    int `json:"total_achievements"`
}
