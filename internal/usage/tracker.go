// Package usage реализует учет использования API в рамках тарифного плана.
// Счетчики живут в памяти процесса и сбрасываются при перезапуске
package usage

import (
	"sync"
	"time"
)

// nearLimitThreshold доля лимита, после которой включается предупреждение
const nearLimitThreshold = 0.8

// Snapshot срез состояния счетчиков на момент вызова
type Snapshot struct {
	Total       int64            `json:"total"`
	Limit       int64            `json:"limit"`
	ByOperation map[string]int64 `json:"by_operation"`
	NearLimit   bool             `json:"near_limit"`
	StartedAt   time.Time        `json:"started_at"`
}

// Tracker потокобезопасный счетчик вызовов операций
type Tracker struct {
	mu          sync.Mutex
	limit       int64
	total       int64
	byOperation map[string]int64
	startedAt   time.Time
}

// NewTracker создает новый трекер с заданным лимитом вызовов.
// Лимит <= 0 означает отсутствие лимита
func NewTracker(limit int64) *Tracker {
	return &Tracker{
		limit:       limit,
		byOperation: make(map[string]int64),
		startedAt:   time.Now(),
	}
}

// Track регистрирует один вызов операции
func (t *Tracker) Track(operation string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	t.byOperation[operation]++
}

// Snapshot возвращает копию текущего состояния счетчиков
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	byOperation := make(map[string]int64, len(t.byOperation))
	for op, count := range t.byOperation {
		byOperation[op] = count
	}

	return Snapshot{
		Total:       t.total,
		Limit:       t.limit,
		ByOperation: byOperation,
		NearLimit:   t.limit > 0 && float64(t.total) >= nearLimitThreshold*float64(t.limit),
		StartedAt:   t.startedAt,
	}
}

// Reset обнуляет счетчики, сохраняя лимит
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total = 0
	t.byOperation = make(map[string]int64)
	t.startedAt = time.Now()
}
