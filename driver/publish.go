package driver

import (
	"github.com/flightworks/cosim/bus"
	"github.com/flightworks/cosim/msgs"
	"github.com/flightworks/cosim/sim"
)

// An outbound is one assembled message waiting to be sent. Messages are
// assembled under the driver lock and sent after it is released.
type outbound struct {
	topic   string
	payload []byte
}

// assembleOutputsLocked converts the latest output snapshot into one
// message per publish-direction binding, timestamped with the given
// simulation time.
func (c *Comp) assembleOutputsLocked(ts sim.TimeStamp) []outbound {
	var out []outbound
	for _, binding := range c.bindings.Outputs {
		var msg outbound
		var err error

		if binding.IsAux() {
			msg, err = c.assembleAux(binding, ts)
		} else {
			msg, err = c.assembleStructured(binding, ts)
		}
		if err != nil {
			c.log.Errorf("cannot assemble output for topic %s: %v",
				binding.Topic, err)
			continue
		}

		out = append(out, msg)
	}

	return out
}

// assembleStructured builds a structured message: a default-valued instance
// of the binding's type with each flattened field overwritten by the
// harvested value of prefix.field. A field with no harvested value keeps
// its default; that is a warning, not an error.
func (c *Comp) assembleStructured(
	binding *Binding,
	ts sim.TimeStamp,
) (outbound, error) {
	info, _ := msgs.LookupType(binding.TypeName)

	data, err := msgs.ToMap(info.New())
	if err != nil {
		return outbound{}, err
	}

	for _, field := range binding.Fields {
		name := binding.Prefix + "." + field
		v, found := c.snapshot[name]
		if !found {
			c.log.Warnf("variable %s not found in harvested values", name)
			continue
		}

		msgs.SetPath(data, field, v.Interface())
	}

	meta := bus.NewMetadata(binding.Topic, binding.TypeName, ts)
	payload, err := c.codec.Encode(meta, data)
	if err != nil {
		return outbound{}, err
	}

	return outbound{topic: binding.Topic, payload: payload}, nil
}

// assembleAux builds a generic document from the binding's explicit
// field-to-variable remap, with the same missing-value policy as
// structured messages.
func (c *Comp) assembleAux(
	binding *Binding,
	ts sim.TimeStamp,
) (outbound, error) {
	doc := map[string]any{}
	for _, field := range binding.FieldOrder {
		name := binding.VarMap[field]
		v, found := c.snapshot[name]
		if !found {
			c.log.Warnf("aux output variable %s not found in harvested values",
				name)
			continue
		}

		doc[field] = v.Interface()
	}

	meta := bus.NewMetadata(binding.Topic, msgs.JsonDataTypeName, ts)
	payload, err := c.codec.Encode(meta, msgs.NewJsonData(doc))
	if err != nil {
		return outbound{}, err
	}

	return outbound{topic: binding.Topic, payload: payload}, nil
}

// publishOutbound hands assembled messages to the bus. A send failure is
// logged and does not block subsequent messages or steps; there are no
// retries.
func (c *Comp) publishOutbound(out []outbound) {
	for _, msg := range out {
		if err := c.transport.Publish(msg.topic, msg.payload); err != nil {
			c.log.Errorf("cannot publish to %s: %v", msg.topic, err)
		}
	}
}
