package store

import (
	"context"
	"sync"

	"github.com/loacademie/academie-server/internal/domain"
)

// Subscriber receives the full catalog snapshot after every mutation.
type Subscriber func(courses []domain.Course)

// subscriberHub is the in-process side of change propagation. SSE
// covers other processes and tabs; the hub covers views inside this
// one.
type subscriberHub struct {
	mu   sync.RWMutex
	next int
	subs map[int]Subscriber
}

// Subscribe registers fn and fires it immediately with the current
// snapshot, so new views render without waiting for the next mutation.
// The returned function removes the subscription and is safe to call
// more than once.
func (s *Store) Subscribe(ctx context.Context, fn Subscriber) (func(), error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	s.subs.mu.Lock()
	if s.subs.subs == nil {
		s.subs.subs = make(map[int]Subscriber)
	}
	key := s.subs.next
	s.subs.next++
	s.subs.subs[key] = fn
	s.subs.mu.Unlock()

	fn(courses)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subs.mu.Lock()
			delete(s.subs.subs, key)
			s.subs.mu.Unlock()
		})
	}, nil
}

// SubscriberCount returns the number of active subscriptions.
func (s *Store) SubscriberCount() int {
	s.subs.mu.RLock()
	defer s.subs.mu.RUnlock()
	return len(s.subs.subs)
}

// notifySubscribers reloads the catalog once and hands the same
// snapshot to every subscriber. Called synchronously after each
// mutation so subscribers observe writes in order.
func (s *Store) notifySubscribers(ctx context.Context) {
	s.subs.mu.RLock()
	n := len(s.subs.subs)
	s.subs.mu.RUnlock()
	if n == 0 {
		return
	}

	courses, err := s.ListCourses(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to reload catalog for subscribers", "error", err)
		}
		return
	}

	s.subs.mu.RLock()
	defer s.subs.mu.RUnlock()
	for _, fn := range s.subs.subs {
		fn(courses)
	}
}
