package driver

import (
	"github.com/sirupsen/logrus"

	"github.com/flightworks/cosim/bus"
	"github.com/flightworks/cosim/model"
	"github.com/flightworks/cosim/sim"
	"github.com/flightworks/cosim/tracing"
)

// Well-known topics.
const (
	DefaultCommandTopic = "cosim.orchestrator.commands"
	DefaultClockTopic   = "cosim.clock"
)

// Builder can be used to build a driver.
type Builder struct {
	id           string
	transport    bus.Transport
	loader       model.Loader
	tracer       tracing.Tracer
	workDir      string
	rootPath     string
	commandTopic string
	clockTopic   string
}

// MakeBuilder creates a new builder with the default topics.
func MakeBuilder() Builder {
	return Builder{
		commandTopic: DefaultCommandTopic,
		clockTopic:   DefaultClockTopic,
	}
}

// WithID sets the driver's instance id. An id is generated when unset.
func (b Builder) WithID(id string) Builder {
	b.id = id
	return b
}

// WithTransport sets the bus transport the driver communicates through.
func (b Builder) WithTransport(t bus.Transport) Builder {
	b.transport = t
	return b
}

// WithLoader sets a custom model bundle loader. The default loader reads
// zipped bundles from disk.
func (b Builder) WithLoader(l model.Loader) Builder {
	b.loader = l
	return b
}

// WithTracer sets the step tracer.
func (b Builder) WithTracer(t tracing.Tracer) Builder {
	b.tracer = t
	return b
}

// WithWorkDir sets the working directory bundle archives unpack under.
func (b Builder) WithWorkDir(dir string) Builder {
	b.workDir = dir
	return b
}

// WithRootPath sets the root directory tried when resolving relative
// bundle paths.
func (b Builder) WithRootPath(path string) Builder {
	b.rootPath = path
	return b
}

// WithCommandTopic overrides the orchestrator command topic.
func (b Builder) WithCommandTopic(topic string) Builder {
	b.commandTopic = topic
	return b
}

// WithClockTopic overrides the clock topic.
func (b Builder) WithClockTopic(topic string) Builder {
	b.clockTopic = topic
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.transport == nil {
		panic("driver requires a transport")
	}
}

// Build builds the driver and subscribes it to the command and clock
// topics.
func (b Builder) Build() *Comp {
	b.parametersMustBeValid()

	id := b.id
	if id == "" {
		id = sim.GetIDGenerator().Generate()
	}

	loader := b.loader
	if loader == nil {
		loader = model.FileLoader{
			WorkDir:    b.workDir,
			RootPath:   b.rootPath,
			InstanceID: id,
		}
	}

	c := &Comp{
		id:           id,
		name:         "cosim.driver." + id,
		transport:    b.transport,
		loader:       loader,
		tracer:       b.tracer,
		commandTopic: b.commandTopic,
		clockTopic:   b.clockTopic,
	}
	c.log = logrus.WithField("driver", c.name)
	c.resetData()

	if _, err := b.transport.Subscribe(b.commandTopic, c.handleCommand); err != nil {
		panic(err)
	}
	if _, err := b.transport.Subscribe(b.clockTopic, c.handleClock); err != nil {
		panic(err)
	}

	return c
}
