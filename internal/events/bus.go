// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events implements the in-process publish/subscribe bus that
// carries catalog and enrichment events to live subscribers.
//
// Every subscriber owns a bounded buffer. A publisher never blocks: when a
// buffer is full the oldest pending message is evicted to make room.
package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/metrics"
	"github.com/goccy/go-json"
)

// DefaultBufferSize is the per-subscriber buffer capacity.
const DefaultBufferSize = 100

// Publisher is the write side of the bus used by the services.
type Publisher interface {
	// Publish serializes {"type": t, "payload": payload} and fans it out.
	// userID names the account the event concerns.
	Publish(ctx context.Context, userID string, t Type, payload any) error
}

// Message is one serialized event as delivered to subscribers.
type Message struct {
	UserID string
	Type   Type
	Data   []byte
}

// Bus is a multi-producer multi-consumer broadcast channel.
type Bus struct {
	mu         sync.RWMutex
	subs       map[*Subscription]struct{}
	bufferSize int

	logger *logger.Logger
}

// NewBus returns a bus whose subscribers buffer up to bufferSize messages.
// A non-positive size selects [DefaultBufferSize].
func NewBus(bufferSize int, log *logger.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		subs:       make(map[*Subscription]struct{}),
		bufferSize: bufferSize,
		logger:     log,
	}
}

// Subscription receives every message published after Subscribe returned.
type Subscription struct {
	bus *Bus
	ch  chan Message

	// serializes evict-then-send against concurrent publishers
	sendMu sync.Mutex
	closed bool
}

// Subscribe registers a new subscriber.
func (b *Bus) Subscribe() *Subscription {
	s := &Subscription{bus: b, ch: make(chan Message, b.bufferSize)}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	count := len(b.subs)
	b.mu.Unlock()

	metrics.EventSubscribers.Set(float64(count))
	return s
}

// C returns the delivery channel. It is closed by Close.
func (s *Subscription) C() <-chan Message {
	return s.ch
}

// Close unregisters the subscription and closes its channel.
// It is safe to call more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	delete(s.bus.subs, s)
	count := len(s.bus.subs)
	s.bus.mu.Unlock()

	s.sendMu.Lock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	s.sendMu.Unlock()

	metrics.EventSubscribers.Set(float64(count))
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close ends every live subscription. Subscribers see their channel closed.
func (b *Bus) Close() {
	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs))
	for s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.RUnlock()

	for _, s := range subs {
		s.Close()
	}
}

// Publish implements [Publisher].
func (b *Bus) Publish(ctx context.Context, userID string, t Type, payload any) error {
	data, err := json.Marshal(Envelope{Type: t, Payload: payload})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Bus.Publish").Str("type", string(t)).Msg("failed to serialize event")
		return fmt.Errorf("serialize %s event: %w", t, err)
	}

	msg := Message{UserID: userID, Type: t, Data: data}

	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs))
	for s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.RUnlock()

	for _, s := range subs {
		if s.deliver(msg) {
			metrics.EventsDropped.Inc()
		}
	}

	metrics.EventsPublished.WithLabelValues(string(t)).Inc()
	return nil
}

// deliver enqueues msg and reports whether an older message was evicted.
func (s *Subscription) deliver(msg Message) (evicted bool) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if s.closed {
		return false
	}

	for {
		select {
		case s.ch <- msg:
			return evicted
		default:
		}

		select {
		case <-s.ch:
			evicted = true
		default:
		}
	}
}
