package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeliverInPublishOrder(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("request/1")
	defer sub.Cancel()

	got := make([]int, 0)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for snapshot := range sub.Updates() {
			got = append(got, snapshot.(int))
			if len(got) == 3 {
				return
			}
		}
	}()

	for i := 1; i <= 3; i++ {
		hub.Publish("request/1", i)
		// give the consumer a chance to drain so nothing coalesces
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not observe all snapshots")
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSlowConsumerGetsLatest(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("request/1")
	defer sub.Cancel()

	// nobody draining: every publish replaces the buffered snapshot
	for i := 1; i <= 5; i++ {
		hub.Publish("request/1", i)
	}

	select {
	case snapshot := <-sub.Updates():
		assert.Equal(t, 5, snapshot.(int))
	default:
		t.Fatal("expected a buffered snapshot")
	}
}

func TestCancelReleasesSubscription(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("request/1")

	assert.Equal(t, 1, hub.Subscribers("request/1"))

	sub.Cancel()
	sub.Cancel() // idempotent

	assert.Equal(t, 0, hub.Subscribers("request/1"))

	_, open := <-sub.Updates()
	assert.False(t, open, "update channel should be closed")

	// publishing to a topic without subscribers is a no-op
	hub.Publish("request/1", 1)
}

func TestTopicsAreIndependent(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe("request/a")
	b := hub.Subscribe("request/b")
	defer a.Cancel()
	defer b.Cancel()

	hub.Publish("request/a", "only-a")

	select {
	case snapshot := <-a.Updates():
		assert.Equal(t, "only-a", snapshot)
	case <-time.After(time.Second):
		t.Fatal("subscriber a should have received a snapshot")
	}

	select {
	case <-b.Updates():
		t.Fatal("subscriber b should not observe topic a")
	default:
	}
}
