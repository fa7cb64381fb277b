package sessions

import (
	"fmt"
	"sync"
	"time"

	"github.com/IT-Nick/heritage/internal/domain/quiz"
)

type entry struct {
	engine  *quiz.Engine
	touched time.Time
}

// Store in-memory хранилище сессий викторины.
// Ключ: "tg:<telegram id>" для бота или UUID для HTTP-клиента.
type Store struct {
	mu    sync.RWMutex
	items map[string]*entry
	ttl   time.Duration
	now   func() time.Time
}

// NewStore создает хранилище. ttl <= 0 отключает вычистку простаивающих сессий
func NewStore(ttl time.Duration) *Store {
	return &Store{
		items: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// TelegramKey ключ сессии пользователя бота
func TelegramKey(telegramID int64) string {
	return fmt.Sprintf("tg:%d", telegramID)
}

// Get возвращает сессию и отмечает обращение к ней
func (s *Store) Get(key string) (*quiz.Engine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		return nil, false
	}
	e.touched = s.now()
	return e.engine, true
}

// Put сохраняет сессию, заменяя прежнюю с тем же ключом
func (s *Store) Put(key string, engine *quiz.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = &entry{engine: engine, touched: s.now()}
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// EvictIdle удаляет сессии, к которым не обращались дольше ttl, и возвращает их количество
func (s *Store) EvictIdle(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, e := range s.items {
		if now.Sub(e.touched) > s.ttl {
			delete(s.items, key)
			evicted++
		}
	}
	return evicted
}
