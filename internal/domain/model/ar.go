package model

// ARView состояние экрана AR. Переключатели косметические:
// за ними нет ни камеры, ни аудио
type ARView struct {
	SiteID   int
	SiteName string
	ARMode   bool
	Audio    bool
	ShowInfo bool
}

// Title заголовок экрана AR
func (v ARView) Title() string {
	if v.SiteName == "" {
		return "AR Experience"
	}
	return "AR: " + v.SiteName
}
