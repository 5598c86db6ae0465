package driver

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/flightworks/cosim/bus"
	"github.com/flightworks/cosim/model"
	"github.com/flightworks/cosim/msgs"
	"github.com/flightworks/cosim/sim"
	"github.com/flightworks/cosim/tracing"
)

// Phase is the lifecycle phase of a driver.
type Phase int

// The lifecycle phases. A stopped driver returns to PhaseUnconfigured so a
// future reload is possible.
const (
	PhaseUnconfigured Phase = iota
	PhaseConfigLoaded
	PhaseStarted
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseUnconfigured:
		return "unconfigured"
	case PhaseConfigLoaded:
		return "config-loaded"
	case PhaseStarted:
		return "started"
	case PhaseRunning:
		return "running"
	default:
		return "invalid"
	}
}

// StepState is the state of the stepping engine.
type StepState int

// The stepping engine states. A faulted engine never steps again for this
// instance.
const (
	StepIdle StepState = iota
	StepStepping
	StepFaulted
)

func (s StepState) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepStepping:
		return "stepping"
	case StepFaulted:
		return "faulted"
	default:
		return "invalid"
	}
}

// A mailbox keeps the latest value of each field delivered on one topic.
// Values are overwritten on receipt and consumed at the next step; a topic
// delivered twice before a step keeps only the later values.
type mailbox struct {
	values map[string]any
	order  []string
}

func newMailbox() *mailbox {
	return &mailbox{values: map[string]any{}}
}

func (m *mailbox) put(field string, value any) {
	if _, found := m.values[field]; !found {
		m.order = append(m.order, field)
	}
	m.values[field] = value
}

// consume visits all pending fields in insertion order and empties the
// mailbox.
func (m *mailbox) consume(visit func(field string, value any)) {
	for _, field := range m.order {
		visit(field, m.values[field])
	}

	m.values = map[string]any{}
	m.order = nil
}

// Comp is a co-simulation driver. It owns one model instance and advances
// it in lock-step with the shared simulation clock.
type Comp struct {
	// mu serializes command processing, mailbox updates, stepping, and all
	// calls into the model instance. It is never held across a bus send.
	mu sync.Mutex

	id   string
	name string
	log  *logrus.Entry

	transport bus.Transport
	codec     bus.Codec
	loader    model.Loader
	tracer    tracing.Tracer

	commandTopic string
	clockTopic   string

	// halted is set by the global stop command; a halted driver ignores
	// all further traffic.
	halted bool

	// Per-load state, destroyed and rebuilt on every load command.
	cfg       *InstanceConfig
	origin    WorldOrigin
	bundle    *model.Bundle
	registry  *model.Registry
	instance  model.Instance
	accessor  *model.Accessor
	bindings  *BindingTable
	mailboxes map[string]*mailbox
	inputSubs []bus.Subscription

	phase     Phase
	stepState StepState
	running   bool
	simTime   float64
	startTime sim.TimeStamp

	// snapshot holds the latest harvested value of every declared variable.
	snapshot map[string]model.Value
}

// ID returns the driver's instance id.
func (c *Comp) ID() string {
	return c.id
}

// Name returns the driver's name.
func (c *Comp) Name() string {
	return c.name
}

// Phase returns the driver's lifecycle phase.
func (c *Comp) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

// StepState returns the state of the stepping engine.
func (c *Comp) StepState() StepState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stepState
}

// Running tells if the driver is started and has not faulted or stopped.
func (c *Comp) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// SimTime returns the driver's current simulation time in seconds.
func (c *Comp) SimTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.simTime
}

// Stop terminates and releases the model instance and clears all per-load
// state. It is idempotent.
func (c *Comp) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
}

// resetData clears all per-load state. The driver returns to
// PhaseUnconfigured so a future reload starts from a clean slate.
func (c *Comp) resetData() {
	c.cfg = nil
	c.origin = WorldOrigin{}
	c.bundle = nil
	c.registry = nil
	c.instance = nil
	c.accessor = nil
	c.bindings = nil
	c.mailboxes = map[string]*mailbox{}
	c.inputSubs = nil
	c.snapshot = map[string]model.Value{}
	c.phase = PhaseUnconfigured
	c.stepState = StepIdle
	c.running = false
	c.simTime = 0
	c.startTime = sim.TimeStamp{}
}

// decodeDocument decodes a message body into a flat-keyed document. Generic
// messages carry their document in the data field; structured messages are
// their own document.
func (c *Comp) decodeDocument(
	meta bus.Metadata,
	payload []byte,
) (map[string]any, error) {
	if meta.TypeName == msgs.JsonDataTypeName {
		doc := &msgs.JsonData{}
		if err := c.codec.DecodeDataInto(payload, doc); err != nil {
			return nil, err
		}
		return doc.Data, nil
	}

	return c.codec.DecodeData(payload)
}

// handleInput is the delivery callback of one subscribed input topic. It
// stores the message's flattened fields into the topic's mailbox,
// overwriting any pending values.
func (c *Comp) handleInput(meta bus.Metadata, payload []byte) {
	doc, err := c.decodeDocument(meta, payload)
	if err != nil {
		c.log.Warnf("dropping malformed message on %s: %v", meta.Topic, err)
		return
	}

	flat := msgs.Flatten(doc)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.halted || c.bindings == nil {
		return
	}

	binding, found := c.bindings.InputBinding(meta.Topic)
	if !found {
		return
	}

	mb, found := c.mailboxes[meta.Topic]
	if !found {
		mb = newMailbox()
		c.mailboxes[meta.Topic] = mb
	}

	prefix := ""
	if !binding.IsAux() {
		prefix = binding.Prefix + "."
	}

	for _, field := range sortedKeys(flat) {
		mb.put(prefix+field, flat[field])
	}
}
