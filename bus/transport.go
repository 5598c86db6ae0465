package bus

import "github.com/flightworks/cosim/sim"

// Metadata is attached to every message on the bus.
type Metadata struct {
	Topic    string `json:"topic" msgpack:"topic"`
	TypeName string `json:"type_name" msgpack:"type_name"`

	// TimestampSim is the discrete simulation time of the message. It is
	// the NoSimTime sentinel when the simulation time is not specified.
	TimestampSim sim.TimeStamp `json:"timestamp_sim" msgpack:"timestamp_sim"`

	// TimestampPlatform is the absolute platform time since the Unix epoch.
	TimestampPlatform sim.TimeStamp `json:"timestamp_platform" msgpack:"timestamp_platform"`
}

// A Handler is invoked for every message delivered on a subscribed topic.
// Handlers may be invoked concurrently from the transport's dispatch
// goroutines.
type Handler func(meta Metadata, payload []byte)

// A Subscription represents one active topic subscription.
type Subscription interface {
	// Cancel stops delivery to the subscription's handler.
	Cancel()
}

// A Transport connects a driver to the message bus.
type Transport interface {
	// Subscribe registers a handler for one topic.
	Subscribe(topic string, h Handler) (Subscription, error)

	// Publish delivers an encoded message envelope to a topic. Delivery
	// is best effort; a send failure is returned to the caller and is
	// never retried by the transport.
	Publish(topic string, payload []byte) error

	// Close releases the transport's resources.
	Close() error
}
