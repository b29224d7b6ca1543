// Package event provides listener registration with explicit disposal.
package event

import "sync"

// Subscription is a registered listener. Unsubscribe detaches it.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// NewSubscription wraps a cancel function. A nil cancel is allowed.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Unsubscribe detaches the listener. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// Emitter delivers values to its listeners in subscription order.
type Emitter[T any] struct {
	mu        sync.Mutex
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns the subscription that removes it.
func (e *Emitter[T]) Subscribe(fn func(T)) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	return NewSubscription(func() { e.remove(id) })
}

// Emit calls every listener with v. Listeners added or removed during
// delivery take effect on the next Emit.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	snapshot := append([]listener[T](nil), e.listeners...)
	e.mu.Unlock()

	for _, l := range snapshot {
		l.fn(v)
	}
}

// Len returns the number of attached listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

func (e *Emitter[T]) remove(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Group disposes a set of subscriptions together.
type Group struct {
	mu   sync.Mutex
	subs []*Subscription
}

// Add tracks subs for later disposal.
func (g *Group) Add(subs ...*Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, subs...)
}

// Unsubscribe disposes every tracked subscription in reverse order.
func (g *Group) Unsubscribe() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		subs[i].Unsubscribe()
	}
}
