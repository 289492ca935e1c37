package listener

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/event"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/rss"
	"github.com/stretchr/testify/assert"
)

type fakeRSS struct {
	rss.Service
	invalidated atomic.Int32
}

func (f *fakeRSS) InvalidateCache(ctx context.Context) error {
	f.invalidated.Add(1)
	return nil
}

func TestPageChangedInvalidatesRSS(t *testing.T) {
	bus := event.NewEventBus()
	fake := &fakeRSS{}
	NewSiteEventListener(bus, fake)

	bus.Publish(event.PageChanged, event.PageChangedPayload{ID: 2, URLPath: "/home/blog/"})
	bus.Publish(event.PageChanged, "wrong payload")
	bus.Publish(event.ContactSubmitted, event.ContactSubmittedPayload{ID: 1})
	bus.Publish(event.ContactTriaged, 2)
	bus.Shutdown()

	assert.Equal(t, int32(1), fake.invalidated.Load())
}
