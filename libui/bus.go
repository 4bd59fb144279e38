package libui

import "sync"

// Bus is a topic-based publish/subscribe hub. Handlers run on the
// goroutine that calls Publish, which in an application is the Run loop.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string][]subscriber
}

type subscriber struct {
	id int
	fn func(any)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscriber)}
}

// Subscribe registers fn for topic and returns a function that
// removes it. Handlers are called in subscription order.
func (b *Bus) Subscribe(topic string, fn func(any)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	id := b.next
	b.subs[topic] = append(b.subs[topic], subscriber{id, fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		s := b.subs[topic]
		for i := range s {
			if s[i].id == id {
				b.subs[topic] = append(s[:i:i], s[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every handler subscribed to topic with payload.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.Lock()
	s := append([]subscriber(nil), b.subs[topic]...)
	b.mu.Unlock()
	for _, sub := range s {
		sub.fn(payload)
	}
}

// Listen subscribes a handler that only receives payloads of type T.
func Listen[T any](b *Bus, topic string, fn func(T)) (cancel func()) {
	return b.Subscribe(topic, func(v any) {
		if t, ok := v.(T); ok {
			fn(t)
		}
	})
}
