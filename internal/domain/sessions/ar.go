package sessions

import (
	"sync"

	"github.com/IT-Nick/heritage/internal/domain/model"
)

// ARStates состояние AR-экрана по пользователям. Хранится только в памяти
type ARStates struct {
	mu    sync.Mutex
	views map[int64]model.ARView
}

func NewARStates() *ARStates {
	return &ARStates{views: make(map[int64]model.ARView)}
}

// Open открывает AR-экран для объекта, сбрасывая переключатели
func (s *ARStates) Open(userID int64, site *model.HeritageSite) model.ARView {
	v := model.ARView{Audio: true}
	if site != nil {
		v.SiteID = site.ID
		v.SiteName = site.Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[userID] = v
	return v
}

// Update применяет fn к текущему состоянию пользователя и сохраняет результат
func (s *ARStates) Update(userID int64, fn func(v *model.ARView)) model.ARView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[userID]
	if !ok {
		v = model.ARView{Audio: true}
	}
	fn(&v)
	s.views[userID] = v
	return v
}
