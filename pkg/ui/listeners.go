package ui

import "sync"

// Listeners is a set of handlers for one kind of event.
// Add and the returned remover may be called from any goroutine; Emit calls
// handlers on the caller's goroutine.
type Listeners[T any] struct {
	mu       sync.Mutex
	seq      uint64
	handlers map[uint64]func(T)
	order    []uint64
}

// Add registers fn and returns a function that removes it.
// Removing twice is a no-op.
func (l *Listeners[T]) Add(fn func(T)) Cleanup {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handlers == nil {
		l.handlers = make(map[uint64]func(T))
	}
	l.seq++
	id := l.seq
	l.handlers[id] = fn
	l.order = append(l.order, id)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if _, ok := l.handlers[id]; !ok {
			return
		}
		delete(l.handlers, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}
}

// Emit calls every registered handler in registration order.
func (l *Listeners[T]) Emit(event T) {
	l.mu.Lock()
	fns := make([]func(T), 0, len(l.order))
	for _, id := range l.order {
		fns = append(fns, l.handlers[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

// Len returns the number of registered handlers.
func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handlers)
}
