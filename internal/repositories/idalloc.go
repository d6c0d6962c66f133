package repositories

import "sync"

// IDAllocator выдаёт идентификаторы из одного сквозного счётчика на все
// виды записей. Это гарантирует глобальную уникальность id ценой
// разреженных последовательностей внутри каждого вида; от счётчика
// зависят и производные номера (TK-/INV-), поэтому он общий и явный.
type IDAllocator struct {
	mu   sync.Mutex
	next uint64
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

func (a *IDAllocator) Next() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	return id
}

// Advance сдвигает счётчик за указанный id, если тот ещё не пройден.
// Используется при восстановлении из снимка.
func (a *IDAllocator) Advance(past uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if past >= a.next {
		a.next = past + 1
	}
}
