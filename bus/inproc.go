package bus

import (
	"errors"
	"sync"

	"github.com/flightworks/cosim/sim"
)

// ErrTransportClosed is returned when publishing or subscribing on a closed
// transport.
var ErrTransportClosed = errors.New("transport closed")

// InprocTransport is a Transport that connects subscribers within one
// process without any wire encoding latency. Messages are delivered
// synchronously on the publisher's goroutine.
type InprocTransport struct {
	mu     sync.RWMutex
	closed bool
	topics map[string][]*inprocSubscription

	codec Codec
}

// NewInprocTransport creates a new in-process transport.
func NewInprocTransport() *InprocTransport {
	return &InprocTransport{
		topics: map[string][]*inprocSubscription{},
	}
}

type inprocSubscription struct {
	id        string
	transport *InprocTransport
	topic     string
	handler   Handler
}

// Cancel stops delivery to the subscription's handler.
func (s *inprocSubscription) Cancel() {
	t := s.transport

	t.mu.Lock()
	defer t.mu.Unlock()

	subs := t.topics[s.topic]
	for i, sub := range subs {
		if sub == s {
			t.topics[s.topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// Subscribe registers a handler for one topic.
func (t *InprocTransport) Subscribe(
	topic string,
	h Handler,
) (Subscription, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrTransportClosed
	}

	sub := &inprocSubscription{
		id:        sim.GetIDGenerator().Generate(),
		transport: t,
		topic:     topic,
		handler:   h,
	}
	t.topics[topic] = append(t.topics[topic], sub)

	return sub, nil
}

// Publish decodes the envelope's metadata and delivers the payload to every
// handler subscribed to the topic.
func (t *InprocTransport) Publish(topic string, payload []byte) error {
	meta, err := t.codec.DecodeMetadata(payload)
	if err != nil {
		return err
	}
	meta.Topic = topic

	t.mu.RLock()
	if t.closed {
		t.mu.RUnlock()
		return ErrTransportClosed
	}
	subs := append([]*inprocSubscription(nil), t.topics[topic]...)
	t.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(meta, payload)
	}

	return nil
}

// Close releases all subscriptions. Publishing on a closed transport fails.
func (t *InprocTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.topics = map[string][]*inprocSubscription{}

	return nil
}
