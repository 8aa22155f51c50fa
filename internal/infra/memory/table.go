// Package memory holds the process-local repositories. Every table guards
// its id counter, rows and insertion order with one mutex, so id
// assignment and insert happen as a single step.
package memory

import (
	"sync"
	"time"
)

type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*T
	order  []int64
	clone  func(T) T
	now    func() time.Time
}

// newTable takes a clone func that copies every pointer field, so rows
// handed in or out never alias the stored ones.
func newTable[T any](clone func(T) T) *table[T] {
	return &table[T]{
		nextID: 1,
		rows:   make(map[int64]*T),
		clone:  clone,
		now:    time.Now,
	}
}

// insert assigns the next id, lets stamp fill id and timestamps, and stores
// a private copy of row.
func (t *table[T]) insert(row *T, stamp func(row *T, id int64, now time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	stamp(row, id, t.now())

	stored := t.clone(*row)
	t.rows[id] = &stored
	t.order = append(t.order, id)
}

func (t *table[T]) get(id int64) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	cp := t.clone(*row)
	return &cp, true
}

// filter returns copies of every row accepted by keep, in insertion order.
func (t *table[T]) filter(keep func(row *T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep != nil && !keep(row) {
			continue
		}
		cp := t.clone(*row)
		out = append(out, &cp)
	}
	return out
}

func (t *table[T]) update(id int64, mutate func(row *T, now time.Time)) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	mutate(row, t.now())
	*row = t.clone(*row)
	cp := t.clone(*row)
	return &cp, true
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

func sameID(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}
