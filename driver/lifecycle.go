package driver

import (
	"encoding/json"

	"github.com/flightworks/cosim/bus"
	"github.com/flightworks/cosim/model"
	"github.com/flightworks/cosim/sim"
)

// Orchestrator command names.
const (
	CommandLoadConfig = "load_config"
	CommandStart      = "start"
	CommandStop       = "stop"
	CommandShutdown   = "shutdown"
)

// handleCommand is the delivery callback of the orchestrator command topic.
func (c *Comp) handleCommand(meta bus.Metadata, payload []byte) {
	doc, err := c.decodeDocument(meta, payload)
	if err != nil {
		c.log.Warnf("dropping malformed command: %v", err)
		return
	}

	command, _ := doc["command"].(string)
	params, _ := doc["parameters"].(map[string]any)

	var outbound []outbound

	c.mu.Lock()
	if c.halted {
		c.mu.Unlock()
		return
	}

	switch command {
	case CommandShutdown:
		c.log.Info("received global stop command")
		c.stopLocked()
		c.halted = true
	case CommandStop:
		c.log.Info("received stop command")
		c.stopLocked()
	case CommandLoadConfig:
		c.loadConfigLocked(params)
	case CommandStart:
		outbound = c.startLocked(params, meta)
	default:
		c.log.Warnf("ignoring unknown command %q", command)
	}
	c.mu.Unlock()

	// The initial output snapshot is sent after releasing the lock; the
	// mutex is never held across a bus send.
	c.publishOutbound(outbound)
}

// loadConfigLocked handles the load_config command: it locates this
// instance's configuration slice, loads the model bundle, builds the
// variable registry and the topic binding table, and subscribes to all
// required topics. Any failure is fatal to the attempt: the driver logs it
// and stays unconfigured.
func (c *Comp) loadConfigLocked(params map[string]any) {
	if c.phase != PhaseUnconfigured {
		c.log.Warnf("ignoring load_config in phase %s", c.phase)
		return
	}

	simCfg, err := ParseSimConfig(params)
	if err != nil {
		c.log.Errorf("cannot load config: %v", err)
		return
	}

	cfg := simCfg.FindInstance(c.id)
	if cfg == nil {
		c.log.Errorf("instance id %q not found in sim config", c.id)
		return
	}

	bundle, err := c.loader.Load(cfg.ModelPath)
	if err != nil {
		c.log.Errorf("cannot load model bundle: %v", err)
		return
	}

	registry := model.BuildRegistry(bundle.Description)

	bindings, err := BuildBindingTable(cfg, registry)
	if err != nil {
		c.log.Errorf("cannot build topic bindings: %v", err)
		bundle.Release()
		return
	}

	subs, err := c.subscribeInputs(bindings)
	if err != nil {
		c.log.Errorf("cannot subscribe input topics: %v", err)
		for _, s := range subs {
			s.Cancel()
		}
		bundle.Release()
		return
	}

	c.cfg = cfg
	c.origin = simCfg.World.Origin
	c.bundle = bundle
	c.registry = registry
	c.bindings = bindings
	c.inputSubs = subs
	c.mailboxes = map[string]*mailbox{}
	c.snapshot = map[string]model.Value{}
	c.phase = PhaseConfigLoaded

	c.log.Infof("loaded model %s (%d variables, protocol %s)",
		bundle.Description.ModelName, registry.Len(), bundle.Protocol.Version)
}

func (c *Comp) subscribeInputs(
	bindings *BindingTable,
) ([]bus.Subscription, error) {
	var subs []bus.Subscription
	for _, b := range bindings.Inputs {
		sub, err := c.transport.Subscribe(b.Topic, c.handleInput)
		if err != nil {
			return subs, err
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

// startLocked handles the start command: it instantiates the model, applies
// configured initial values, runs the protocol's initialization sequence,
// and returns the initial output snapshot for publication at the
// orchestrator-supplied start timestamp.
func (c *Comp) startLocked(params map[string]any, meta bus.Metadata) []outbound {
	if c.phase != PhaseConfigLoaded {
		c.log.Warnf("ignoring start in phase %s", c.phase)
		return nil
	}

	startTime, found := timeStampFromDoc(params, "sim_start_time")
	if !found {
		startTime = meta.TimestampSim
		if !startTime.IsSet() {
			startTime = sim.TimeStamp{}
		}
		c.log.Warnf("start command carries no sim_start_time, using %v",
			startTime)
	}

	inst, err := c.bundle.Instantiate(c.id)
	if err != nil {
		c.log.Errorf("cannot instantiate model: %v", err)
		return nil
	}

	if err := c.initInstanceLocked(inst, startTime.ToSec()); err != nil {
		c.log.Errorf("cannot initialize model: %v", err)
		inst.FreeInstance()
		return nil
	}

	c.instance = inst
	c.startTime = startTime
	c.simTime = startTime.ToSec()
	c.running = true
	c.stepState = StepIdle
	c.phase = PhaseStarted

	c.harvestLocked()
	out := c.assembleOutputsLocked(startTime)

	c.phase = PhaseRunning
	c.log.Infof("started at t=%g", c.simTime)

	return out
}

// initInstanceLocked runs instantiate, initial-value application, and the
// protocol's enter/exit initialization sequence.
func (c *Comp) initInstanceLocked(inst model.Instance, startTime float64) error {
	if err := inst.Instantiate(); err != nil {
		return err
	}

	accessor := model.NewAccessor(c.registry, inst, c.bundle.Protocol)

	if err := c.applyInitialValues(accessor); err != nil {
		return err
	}

	if c.bundle.Protocol.RequiresExperimentSetup {
		if err := inst.SetupExperiment(startTime); err != nil {
			return err
		}
		if err := inst.EnterInitializationMode(0); err != nil {
			return err
		}
	} else {
		if err := inst.EnterInitializationMode(startTime); err != nil {
			return err
		}
	}

	if err := inst.ExitInitializationMode(); err != nil {
		return err
	}

	c.accessor = accessor

	return nil
}

// applyInitialValues writes every configured initial value, plus the world
// origin when the model declares variables for it, into the instance. A
// type mismatch or unknown variable is fatal to the start attempt.
func (c *Comp) applyInitialValues(accessor *model.Accessor) error {
	initial := map[string]json.RawMessage{}
	for name, raw := range c.cfg.InitialValues {
		initial[name] = raw
	}
	c.injectWorldOrigin(initial)

	for _, name := range sortedKeys(initial) {
		literal, err := decodeLiteral(initial[name])
		if err != nil {
			return &model.ConfigError{
				Reason: "malformed initial value for " + name + ": " + err.Error(),
			}
		}

		c.log.Debugf("setting initial value %s = %v", name, literal)

		if err := accessor.Set(name, literal); err != nil {
			return err
		}
	}

	return nil
}

var worldOriginVars = []string{
	"world_origin_latitude",
	"world_origin_longitude",
	"world_origin_altitude",
}

func (c *Comp) injectWorldOrigin(initial map[string]json.RawMessage) {
	for _, name := range worldOriginVars {
		if !c.registry.Has(name) {
			return
		}
	}

	coords := []float64{
		c.origin.Latitude,
		c.origin.Longitude,
		c.origin.Altitude,
	}
	for i, name := range worldOriginVars {
		encoded, err := json.Marshal(coords[i])
		if err != nil {
			continue
		}
		initial[name] = encoded
	}
}

// stopLocked terminates and releases the model instance and clears all
// per-load state. Calling it twice in a row leaves the driver identical to
// calling it once.
func (c *Comp) stopLocked() {
	c.running = false

	if c.instance != nil {
		if err := c.instance.Terminate(); err != nil {
			c.log.Warnf("error terminating model instance: %v", err)
		}
		c.instance.FreeInstance()
		c.instance = nil
	}

	for _, sub := range c.inputSubs {
		sub.Cancel()
	}

	if c.bundle != nil {
		if err := c.bundle.Release(); err != nil {
			c.log.Warnf("error releasing model bundle: %v", err)
		}
	}

	c.resetData()
}

// timeStampFromDoc reads a {sec, nanosec} timestamp out of a decoded
// document.
func timeStampFromDoc(doc map[string]any, key string) (sim.TimeStamp, bool) {
	raw, found := doc[key].(map[string]any)
	if !found {
		return sim.TimeStamp{}, false
	}

	sec, secOK := asInt64(raw["sec"])
	nanosec, nanoOK := asInt64(raw["nanosec"])
	if !secOK || !nanoOK {
		return sim.TimeStamp{}, false
	}

	return sim.TimeStamp{Sec: int32(sec), Nanosec: uint32(nanosec)}, true
}

func asInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint8:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
