// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import "sync"

// PointerEvent is one document-level pointer sample in page coordinates.
type PointerEvent struct {
	X float64
	Y float64
}

// PointerBus fans document-level pointer move/up events out to active drag
// subscriptions. It stands in for the document's global listener surface:
// a primitive subscribes exactly when a drag starts and releases exactly
// when it ends, so no listener outlives its drag.
type PointerBus struct {
	mu       sync.Mutex
	next     int
	handlers map[int]pointerHandlers
}

type pointerHandlers struct {
	move func(PointerEvent)
	up   func(PointerEvent)
}

// NewPointerBus returns a bus with no subscriptions.
func NewPointerBus() *PointerBus {
	return &PointerBus{handlers: make(map[int]pointerHandlers)}
}

// Subscribe registers move/up handlers and returns the subscription that
// must be released when the drag ends. Release is idempotent, so the
// normal pointer-up path and a teardown path can both call it safely.
func (b *PointerBus) Subscribe(onMove, onUp func(PointerEvent)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.handlers[id] = pointerHandlers{move: onMove, up: onUp}

	sub := &Subscription{}
	sub.release = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
	return sub
}

// Move dispatches a pointer-move sample to every active subscription.
func (b *PointerBus) Move(ev PointerEvent) {
	for _, h := range b.snapshot() {
		if h.move != nil {
			h.move(ev)
		}
	}
}

// Up dispatches a pointer-up sample to every active subscription. Handlers
// typically release their own subscription from inside the callback.
func (b *PointerBus) Up(ev PointerEvent) {
	for _, h := range b.snapshot() {
		if h.up != nil {
			h.up(ev)
		}
	}
}

// Active returns the number of live subscriptions. Exposed so hosts and
// tests can assert no drag listener leaked past its primitive.
func (b *PointerBus) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// snapshot copies the handler set so dispatch runs without the lock held;
// a handler releasing its subscription mid-dispatch must not deadlock.
func (b *PointerBus) snapshot() []pointerHandlers {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]pointerHandlers, 0, len(b.handlers))
	for _, h := range b.handlers {
		out = append(out, h)
	}
	return out
}

// Subscription is a scoped hold on the bus. It is released on drag end or
// primitive teardown — never left to garbage collection.
type Subscription struct {
	once    sync.Once
	release func()
}

// Release detaches the handlers. Safe to call more than once.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(s.release)
}
