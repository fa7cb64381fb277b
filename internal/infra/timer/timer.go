package timer

import (
	"context"
	"log"
	"time"
)

// Evictor хранилище, умеющее удалять простаивающие записи
type Evictor interface {
	EvictIdle(now time.Time) int
	Len() int
}

// Janitor периодически вычищает простаивающие сессии викторины
type Janitor struct {
	store    Evictor
	interval time.Duration
	now      func() time.Time
}

func NewJanitor(store Evictor, interval time.Duration) *Janitor {
	return &Janitor{
		store:    store,
		interval: interval,
		now:      time.Now,
	}
}

// Run блокируется до отмены контекста. interval <= 0 отключает вычистку
func (j *Janitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Контекст отменен, завершаем вычистку
			log.Printf("Session janitor stopped")
			return
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep один проход вычистки, возвращает число удаленных сессий
func (j *Janitor) Sweep() int {
	evicted := j.store.EvictIdle(j.now())
	if evicted > 0 {
		log.Printf("Evicted %d idle quiz sessions, %d left", evicted, j.store.Len())
	}
	return evicted
}
