package events

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s *Subscription) []Message {
	var out []Message
	for {
		select {
		case m, ok := <-s.C():
			if !ok {
				return out
			}
			out = append(out, m)
		default:
			return out
		}
	}
}

// ── Publish ─────────────────────────────────────────────────────────────────

func TestBus_PublishEnvelope(t *testing.T) {
	bus := NewBus(0, logger.Nop())
	sub := bus.Subscribe()
	defer sub.Close()

	err := bus.Publish(context.Background(), "u1", EnrichStarted, EnrichStartedPayload{Total: 3})
	require.NoError(t, err)

	msgs := drain(sub)
	require.Len(t, msgs, 1)
	assert.Equal(t, "u1", msgs[0].UserID)
	assert.Equal(t, EnrichStarted, msgs[0].Type)
	assert.JSONEq(t, `{"type":"tmdb_enrich_started","payload":{"total":3}}`, string(msgs[0].Data))
}

func TestBus_FanOutToEverySubscriber(t *testing.T) {
	bus := NewBus(10, logger.Nop())
	a, b := bus.Subscribe(), bus.Subscribe()
	defer a.Close()
	defer b.Close()

	require.NoError(t, bus.Publish(context.Background(), "u1", MovieDeleted, Deleted{ID: "m1"}))

	assert.Len(t, drain(a), 1)
	assert.Len(t, drain(b), 1)
	assert.Equal(t, 2, bus.SubscriberCount())
}

func TestBus_LateSubscriberMissesEarlierMessages(t *testing.T) {
	bus := NewBus(10, logger.Nop())
	require.NoError(t, bus.Publish(context.Background(), "", MovieAdded, nil))

	sub := bus.Subscribe()
	defer sub.Close()
	require.NoError(t, bus.Publish(context.Background(), "", MovieUpdated, nil))

	msgs := drain(sub)
	require.Len(t, msgs, 1)
	assert.Equal(t, MovieUpdated, msgs[0].Type)
}

func TestBus_OverflowDropsOldest(t *testing.T) {
	bus := NewBus(3, logger.Nop())
	sub := bus.Subscribe()
	defer sub.Close()

	for i := 1; i <= 5; i++ {
		require.NoError(t, bus.Publish(context.Background(), "", EnrichProgress, EnrichProgressPayload{Current: int64(i)}))
	}

	msgs := drain(sub)
	require.Len(t, msgs, 3)
	for i, m := range msgs {
		var env struct {
			Payload EnrichProgressPayload `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(m.Data, &env))
		assert.Equal(t, int64(i+3), env.Payload.Current)
	}
}

func TestBus_UnserializablePayload(t *testing.T) {
	bus := NewBus(1, logger.Nop())
	sub := bus.Subscribe()
	defer sub.Close()

	err := bus.Publish(context.Background(), "", MovieAdded, failingPayload{})
	require.Error(t, err)
	assert.Empty(t, drain(sub))
}

type failingPayload struct{}

func (failingPayload) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("cannot marshal")
}

// ── Subscription lifecycle ──────────────────────────────────────────────────

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	bus := NewBus(1, logger.Nop())
	sub := bus.Subscribe()

	sub.Close()
	sub.Close()

	_, ok := <-sub.C()
	assert.False(t, ok)
	assert.Zero(t, bus.SubscriberCount())
	require.NoError(t, bus.Publish(context.Background(), "", MovieAdded, nil))
}

func TestBus_ConcurrentPublishers(t *testing.T) {
	bus := NewBus(DefaultBufferSize, logger.Nop())
	sub := bus.Subscribe()
	defer sub.Close()

	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = bus.Publish(context.Background(), "", MovieUpdated, nil)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, drain(sub), DefaultBufferSize)
}

func TestBus_CloseEndsSubscriptions(t *testing.T) {
	bus := NewBus(4, logger.Nop())
	s1 := bus.Subscribe()
	s2 := bus.Subscribe()

	bus.Close()

	_, ok := <-s1.C()
	assert.False(t, ok)
	_, ok = <-s2.C()
	assert.False(t, ok)
	assert.Zero(t, bus.SubscriberCount())

	// a late publish reaches nobody and does not panic
	require.NoError(t, bus.Publish(context.Background(), "u1", MovieAdded, nil))
}
