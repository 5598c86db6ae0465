package driver

import (
	"time"

	"github.com/flightworks/cosim/bus"
	"github.com/flightworks/cosim/sim"
	"github.com/flightworks/cosim/tracing"
)

// handleClock is the delivery callback of the clock topic. Each tick
// announces the simulation time the instance should advance to.
func (c *Comp) handleClock(meta bus.Metadata, payload []byte) {
	doc, err := c.decodeDocument(meta, payload)
	if err != nil {
		c.log.Warnf("dropping malformed clock message: %v", err)
		return
	}

	target, found := timeStampFromDoc(doc, "timestamp_sim")
	if !found {
		c.log.Warnf("dropping clock message without timestamp_sim")
		return
	}

	c.mu.Lock()
	if c.halted || !c.running || c.phase != PhaseRunning {
		c.mu.Unlock()
		return
	}
	out := c.stepLocked(target)
	c.mu.Unlock()

	c.publishOutbound(out)
}

// stepLocked advances the model instance from its last known simulation
// time to the announced target time and returns the messages to publish. A
// nil return means the tick produced no output.
func (c *Comp) stepLocked(target sim.TimeStamp) []outbound {
	targetSec := target.ToSec()
	delta := targetSec - c.simTime

	// Clock messages may race slightly; a tick into the past is dropped,
	// not treated as fatal.
	if delta < 0 {
		c.log.Warnf("dropping clock tick into the past: t=%g current=%g",
			targetSec, c.simTime)
		c.traceStep(c.simTime, c.simTime, 0, tracing.OutcomeDropped)
		return nil
	}

	wallStart := time.Now()
	c.stepState = StepStepping

	c.applyMailboxesLocked()

	from := c.simTime
	result, err := c.instance.DoStep(from, delta)
	if err != nil {
		// A step failure is fatal for this instance, not for the process.
		c.stepState = StepFaulted
		c.running = false
		c.log.Errorf("model step from %g over %g failed: %v", from, delta, err)
		c.traceStep(from, from, time.Since(wallStart), tracing.OutcomeFaulted)
		return nil
	}

	c.stepState = StepIdle

	// The model may early-return before the target; its reported time is
	// trusted.
	c.simTime = result.LastSuccessfulTime

	if result.TerminateRequested {
		c.log.Warnf("model requested termination at t=%g", c.simTime)
		c.running = false
	}

	c.harvestLocked()
	c.traceStep(from, c.simTime, time.Since(wallStart), tracing.OutcomeOK)

	return c.assembleOutputsLocked(sim.TimeStampFromSec(c.simTime))
}

// applyMailboxesLocked writes every pending input value into the model
// instance. Order across topics follows the binding table; within one
// topic, insertion order. When two topics map to the same variable the
// last writer wins.
func (c *Comp) applyMailboxesLocked() {
	for _, binding := range c.bindings.Inputs {
		mb, found := c.mailboxes[binding.Topic]
		if !found {
			continue
		}

		mb.consume(func(field string, value any) {
			name := field
			if binding.IsAux() {
				mapped, found := binding.VarMap[field]
				if !found {
					// Aux fields absent from the remap are ignored.
					return
				}
				name = mapped
			}

			if err := c.accessor.Set(name, value); err != nil {
				c.log.Warnf("dropping input %s from topic %s: %v",
					name, binding.Topic, err)
			}
		})
	}
}

// harvestLocked reads every declared variable's current value into the
// output snapshot, regardless of whether it changed, so publication always
// has a complete picture.
func (c *Comp) harvestLocked() {
	for _, name := range c.registry.Names() {
		v, err := c.accessor.Get(name)
		if err != nil {
			c.log.Warnf("cannot harvest %s: %v", name, err)
			continue
		}

		c.snapshot[name] = v
	}
}

func (c *Comp) traceStep(
	from, to float64,
	wall time.Duration,
	outcome string,
) {
	if c.tracer == nil {
		return
	}

	c.tracer.TraceStep(tracing.StepRecord{
		ID:       sim.GetIDGenerator().Generate(),
		Driver:   c.name,
		From:     from,
		To:       to,
		WallTime: wall,
		Outcome:  outcome,
	})
}
