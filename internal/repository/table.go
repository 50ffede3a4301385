package repository

import (
	"slices"
	"sync"
)

// table is a keyed collection with its own id counter. Ids start at 1 and
// are never handed out twice, even after the row they named is deleted.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	nextID int
}

func newTable[T any]() *table[T] {
	return &table[T]{
		rows:   make(map[int]T),
		nextID: 1,
	}
}

// all returns rows ordered by id, which is also insertion order.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sortedLocked(func(T) bool { return true })
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sortedLocked(keep)
}

func (t *table[T]) sortedLocked(keep func(T) bool) []T {
	ids := make([]int, 0, len(t.rows))
	for id, row := range t.rows {
		if keep(row) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// insert reserves the next id and stores the row built for it.
func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	row := build(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) update(id int, merge func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}

	row = merge(row)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rows)
}

// put stores a row under an explicit id and moves the counter past it.
// Only the seeder uses it.
func (t *table[T]) put(id int, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows[id] = row
	if id >= t.nextID {
		t.nextID = id + 1
	}
}
