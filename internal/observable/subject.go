package observable

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Subject holds the latest value of type T and broadcasts every published
// value to its subscribers
type Subject[T any] struct {
	mu       sync.Mutex
	latest   T
	subs     map[string]*subscriber[T]
	children []child[T]
	closed   bool
	logger   zerolog.Logger
}

// child is a derived subject fed synchronously from Publish
type child[T any] struct {
	publish func(T)
	close   func()
}

// NewSubject creates a subject whose latest value is initial
func NewSubject[T any](initial T, logger zerolog.Logger) *Subject[T] {
	return &Subject[T]{
		latest: initial,
		subs:   make(map[string]*subscriber[T]),
		logger: logger,
	}
}

// Value returns the latest published value
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Publish stores v as the latest value and queues it for every subscriber.
// It never waits for subscribers to consume the value.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = v
	if s.closed {
		s.logger.Debug().Msg("publish on closed subject, value stored only")
		return
	}
	for _, sub := range s.subs {
		sub.enqueue(v)
	}
	for _, c := range s.children {
		c.publish(v)
	}
}

// Subscribe registers fn. The latest value is delivered to fn before
// Subscribe returns; later values are delivered asynchronously and in order.
func (s *Subject[T]) Subscribe(fn func(T)) *Subscription {
	sub := newSubscriber(fn, s.logger)

	s.mu.Lock()
	latest := s.latest
	if s.closed {
		s.mu.Unlock()
		sub.deliver(latest)
		sub.stop()
		return &Subscription{id: sub.id, cancel: func() {}}
	}
	s.subs[sub.id] = sub
	s.mu.Unlock()

	sub.deliver(latest)
	go sub.run()

	s.logger.Debug().Str("subscription", sub.id).Msg("subscriber added")
	return &Subscription{id: sub.id, cancel: func() {
		s.remove(sub.id)
		sub.stop()
	}}
}

// SubscriberCount returns the number of live subscriptions
func (s *Subject[T]) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close cancels every subscription and every derived subject. The latest
// value stays readable.
func (s *Subject[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := s.subs
	s.subs = make(map[string]*subscriber[T])
	children := s.children
	s.children = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
	for _, c := range children {
		c.close()
	}
}

func (s *Subject[T]) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[id]; ok {
		delete(s.subs, id)
		s.logger.Debug().Str("subscription", id).Msg("subscriber removed")
	}
}

// Map returns a subject that always holds fn applied to the latest value of
// src. The derived value is updated inside src.Publish, so it never lags the
// source.
func Map[T, U any](src *Subject[T], fn func(T) U) *Subject[U] {
	src.mu.Lock()
	defer src.mu.Unlock()

	dst := NewSubject(fn(src.latest), src.logger)
	if src.closed {
		dst.closed = true
		return dst
	}
	src.children = append(src.children, child[T]{
		publish: func(v T) { dst.Publish(fn(v)) },
		close:   dst.Close,
	})
	return dst
}

// Subscription is a revocable registration on a Subject
type Subscription struct {
	id     string
	once   sync.Once
	cancel func()
}

// ID returns the unique subscription identifier
func (s *Subscription) ID() string {
	return s.id
}

// Cancel revokes the subscription and drops values still queued for it. A
// callback already running when Cancel is called may complete. Cancel is safe
// to call more than once and from inside the callback.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

type subscriber[T any] struct {
	id     string
	fn     func(T)
	logger zerolog.Logger

	mu    sync.Mutex
	queue []T

	wake     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newSubscriber[T any](fn func(T), logger zerolog.Logger) *subscriber[T] {
	return &subscriber[T]{
		id:     uuid.NewString(),
		fn:     fn,
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (sub *subscriber[T]) enqueue(v T) {
	sub.mu.Lock()
	sub.queue = append(sub.queue, v)
	sub.mu.Unlock()

	select {
	case sub.wake <- struct{}{}:
	default:
	}
}

func (sub *subscriber[T]) next() (T, bool) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	var zero T
	if len(sub.queue) == 0 {
		return zero, false
	}
	v := sub.queue[0]
	sub.queue[0] = zero
	sub.queue = sub.queue[1:]
	return v, true
}

func (sub *subscriber[T]) run() {
	for {
		select {
		case <-sub.done:
			return
		case <-sub.wake:
		}
		for {
			v, ok := sub.next()
			if !ok {
				break
			}
			select {
			case <-sub.done:
				return
			default:
			}
			sub.deliver(v)
		}
	}
}

func (sub *subscriber[T]) deliver(v T) {
	defer func() {
		if r := recover(); r != nil {
			sub.logger.Error().
				Str("subscription", sub.id).
				Interface("panic", r).
				Msg("subscriber callback panicked")
		}
	}()
	sub.fn(v)
}

func (sub *subscriber[T]) stop() {
	sub.stopOnce.Do(func() {
		close(sub.done)
		sub.mu.Lock()
		sub.queue = nil
		sub.mu.Unlock()
	})
}
