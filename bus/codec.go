package bus

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/flightworks/cosim/sim"
)

// envelope is the wire form of every bus message: metadata followed by the
// message body.
type envelope struct {
	Metadata Metadata `msgpack:"metadata"`
	Data     any      `msgpack:"data"`
}

// Codec encodes and decodes message envelopes with msgpack.
type Codec struct{}

// NewMetadata creates metadata for a message published now at the given
// simulation time.
func NewMetadata(topic, typeName string, timestampSim sim.TimeStamp) Metadata {
	now := time.Now()

	return Metadata{
		Topic:        topic,
		TypeName:     typeName,
		TimestampSim: timestampSim,
		TimestampPlatform: sim.TimeStamp{
			Sec:     int32(now.Unix()),
			Nanosec: uint32(now.Nanosecond()),
		},
	}
}

// Encode serializes a message envelope.
func (Codec) Encode(meta Metadata, data any) ([]byte, error) {
	return msgpack.Marshal(envelope{Metadata: meta, Data: data})
}

// DecodeMetadata extracts only the metadata from an encoded envelope.
func (Codec) DecodeMetadata(payload []byte) (Metadata, error) {
	var e struct {
		Metadata Metadata `msgpack:"metadata"`
	}
	if err := msgpack.Unmarshal(payload, &e); err != nil {
		return Metadata{}, err
	}

	return e.Metadata, nil
}

// DecodeData extracts the message body from an encoded envelope as a nested
// document.
func (Codec) DecodeData(payload []byte) (map[string]any, error) {
	var e struct {
		Data map[string]any `msgpack:"data"`
	}
	if err := msgpack.Unmarshal(payload, &e); err != nil {
		return nil, err
	}

	return e.Data, nil
}

// DecodeDataInto decodes the message body into a typed message.
func (Codec) DecodeDataInto(payload []byte, msg any) error {
	var e struct {
		Data msgpack.RawMessage `msgpack:"data"`
	}
	if err := msgpack.Unmarshal(payload, &e); err != nil {
		return err
	}

	return msgpack.Unmarshal(e.Data, msg)
}
