package event

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	var got []PageChangedPayload
	bus.Subscribe(PageChanged, func(payload interface{}) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, payload.(PageChangedPayload))
	})
	var triaged atomic.Int32
	bus.Subscribe(ContactTriaged, func(payload interface{}) {
		triaged.Add(int32(payload.(int)))
	})

	bus.Publish(PageChanged, PageChangedPayload{ID: 1, URLPath: "/home/"})
	bus.Publish(ContactTriaged, 3)
	bus.Publish(ContactSubmitted, ContactSubmittedPayload{ID: 9})
	bus.Shutdown()

	assert.Equal(t, []PageChangedPayload{{ID: 1, URLPath: "/home/"}}, got)
	assert.Equal(t, int32(3), triaged.Load())
}

func TestHandlerPanicDoesNotStopWorkers(t *testing.T) {
	bus := NewEventBus()
	var calls atomic.Int32
	bus.Subscribe(PageChanged, func(payload interface{}) { panic("boom") })
	bus.Subscribe(PageChanged, func(payload interface{}) { calls.Add(1) })

	for i := 0; i < 10; i++ {
		bus.Publish(PageChanged, PageChangedPayload{ID: uint(i)})
	}
	bus.Shutdown()
	assert.Equal(t, int32(10), calls.Load())
}

func TestPublishAfterShutdown(t *testing.T) {
	bus := NewEventBus()
	bus.Shutdown()
	assert.NotPanics(t, func() {
		bus.Publish(PageChanged, PageChangedPayload{})
		bus.Shutdown()
	})
}
