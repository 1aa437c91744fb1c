// Package feed is an in-process live-query hub. A subscriber receives an
// ordered sequence of immutable result snapshots for a topic; a publisher
// pushes the latest committed result set after each write. Within one
// subscription snapshots arrive in publish order. No ordering is guaranteed
// across different topics.
package feed

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "feed"

// Snapshot is one full result set of a live query. Consumers replace their
// previous copy wholesale; there is no incremental merge.
type Snapshot interface{}

// Subscription is a cancellable handle on a topic. The only obligation of
// the consumer is to call Cancel on teardown.
type Subscription struct {
	topic string
	hub   *Hub
	ch    chan Snapshot

	once sync.Once
}

// Updates yields snapshots in publish order. The channel is closed when the
// subscription is cancelled. A consumer that falls behind is coalesced to
// the latest snapshot rather than blocking the publisher.
func (s *Subscription) Updates() <-chan Snapshot {
	return s.ch
}

// Cancel releases the subscription and closes the update channel. It is
// safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

// Hub routes snapshots from writers to topic subscribers.
type Hub struct {
	mu     sync.Mutex
	topics map[string]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{
		topics: map[string]map[*Subscription]struct{}{},
	}
}

// Subscribe registers a new live query on a topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	s := &Subscription{
		topic: topic,
		hub:   h,
		ch:    make(chan Snapshot, 1),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[topic]
	if !ok {
		subs = map[*Subscription]struct{}{}
		h.topics[topic] = subs
	}
	subs[s] = struct{}{}

	return s
}

// Publish delivers a snapshot to every subscriber of a topic. A full
// subscriber buffer is drained first so the subscriber always observes the
// latest state, never a stale one.
func (h *Hub) Publish(topic string, snapshot Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.topics[topic] {
		select {
		case s.ch <- snapshot:
		default:
			select {
			case <-s.ch:
			default:
			}
			s.ch <- snapshot
		}
	}
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[s.topic]
	if !ok {
		return
	}
	delete(subs, s)
	if len(subs) == 0 {
		delete(h.topics, s.topic)
	}

	log.WithField("prefix", logPrefix).Debugf("subscription on %s released", s.topic)
}

// Subscribers reports how many live queries a topic currently has.
func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics[topic])
}
