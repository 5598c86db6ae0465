package driver

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flightworks/cosim/bus"
	"github.com/flightworks/cosim/msgs"
	"github.com/flightworks/cosim/sim"
)

// recorder captures every message published on one topic.
type recorder struct {
	codec    bus.Codec
	messages [][]byte
}

func (r *recorder) subscribe(t bus.Transport, topic string) {
	_, err := t.Subscribe(topic, func(_ bus.Metadata, payload []byte) {
		r.messages = append(r.messages, payload)
	})
	Expect(err).To(Succeed())
}

func (r *recorder) lastDoc() map[string]any {
	Expect(r.messages).ToNot(BeEmpty())

	doc := &msgs.JsonData{}
	err := r.codec.DecodeDataInto(r.messages[len(r.messages)-1], doc)
	Expect(err).To(Succeed())

	return doc.Data
}

func (r *recorder) lastData() map[string]any {
	Expect(r.messages).ToNot(BeEmpty())

	data, err := r.codec.DecodeData(r.messages[len(r.messages)-1])
	Expect(err).To(Succeed())

	return data
}

var _ = Describe("Comp", func() {
	var (
		codec     bus.Codec
		transport *bus.InprocTransport
		loader    *fakeLoader
		d         *Comp

		telemetry *recorder
		effector  *recorder
	)

	send := func(topic string, doc map[string]any, ts sim.TimeStamp) {
		payload, err := codec.Encode(
			bus.NewMetadata(topic, msgs.JsonDataTypeName, ts),
			msgs.NewJsonData(doc))
		Expect(err).To(Succeed())
		Expect(transport.Publish(topic, payload)).To(Succeed())
	}

	sendCommand := func(command string, params map[string]any) {
		doc := map[string]any{"command": command}
		if params != nil {
			doc["parameters"] = params
		}
		send(DefaultCommandTopic, doc, sim.NoSimTime())
	}

	sendClock := func(t float64) {
		ts := sim.TimeStampFromSec(t)
		send(DefaultClockTopic, map[string]any{
			"timestamp_sim": map[string]any{
				"sec": ts.Sec, "nanosec": ts.Nanosec,
			},
		}, ts)
	}

	simConfig := func() map[string]any {
		return map[string]any{
			"world": map[string]any{
				"origin": map[string]any{
					"latitude":  47.6,
					"longitude": -122.3,
					"altitude":  86.0,
				},
			},
			"models": []any{
				map[string]any{
					"id":         "veh1",
					"model_path": "fake_aircraft.zip",
					"initial_values": map[string]any{
						"altitude": 100.0,
					},
					"component_input_topics": []any{
						map[string]any{
							"topic":    "veh1.effector_in",
							"msg_type": "cosim::types::EffectorState",
						},
					},
					"component_output_topics": []any{
						map[string]any{
							"topic":      "veh1.effector",
							"msg_type":   "cosim::types::EffectorState",
							"var_prefix": "effector_state",
						},
					},
					"aux_input_mapping": map[string]any{
						"veh1.controls": map[string]any{
							"throttle": "throttle",
						},
					},
					"aux_output_mapping": map[string]any{
						"veh1.telemetry": map[string]any{
							"alt": "altitude",
						},
					},
				},
			},
		}
	}

	loadConfig := func() {
		sendCommand(CommandLoadConfig,
			map[string]any{"sim_config": simConfig()})
	}

	start := func(t float64) {
		ts := sim.TimeStampFromSec(t)
		sendCommand(CommandStart, map[string]any{
			"sim_start_time": map[string]any{
				"sec": ts.Sec, "nanosec": ts.Nanosec,
			},
		})
	}

	BeforeEach(func() {
		transport = bus.NewInprocTransport()
		loader = &fakeLoader{desc: fakeDescription()}
		currentFake = newFakeInstance()

		d = MakeBuilder().
			WithID("veh1").
			WithTransport(transport).
			WithLoader(loader).
			Build()

		telemetry = &recorder{}
		telemetry.subscribe(transport, "veh1.telemetry")
		effector = &recorder{}
		effector.subscribe(transport, "veh1.effector")
	})

	AfterEach(func() {
		transport.Close()
	})

	It("should stay unconfigured before load_config", func() {
		start(0)

		Expect(d.Phase()).To(Equal(PhaseUnconfigured))
		Expect(d.Running()).To(BeFalse())
		Expect(currentFake.instantiated).To(BeFalse())
	})

	It("should load the configured model bundle", func() {
		loadConfig()

		Expect(d.Phase()).To(Equal(PhaseConfigLoaded))
		Expect(loader.loadedPaths).To(Equal([]string{"fake_aircraft.zip"}))
		Expect(d.Running()).To(BeFalse())
	})

	It("should stay unconfigured when its id is absent from the config",
		func() {
			cfg := simConfig()
			cfg["models"].([]any)[0].(map[string]any)["id"] = "someone_else"

			sendCommand(CommandLoadConfig, map[string]any{"sim_config": cfg})

			Expect(d.Phase()).To(Equal(PhaseUnconfigured))
		})

	It("should reject a config binding undeclared variables", func() {
		cfg := simConfig()
		cfg["models"].([]any)[0].(map[string]any)["aux_input_mapping"] =
			map[string]any{
				"veh1.controls": map[string]any{"throttle": "no_such_var"},
			}

		sendCommand(CommandLoadConfig, map[string]any{"sim_config": cfg})

		Expect(d.Phase()).To(Equal(PhaseUnconfigured))
	})

	Context("when started", func() {
		BeforeEach(func() {
			loadConfig()
			start(0)
		})

		It("should run the initialization sequence without experiment setup",
			func() {
				Expect(currentFake.instantiated).To(BeTrue())
				Expect(currentFake.setupCalls).To(Equal(0))
				Expect(currentFake.exitInitCalls).To(Equal(1))
				Expect(d.Phase()).To(Equal(PhaseRunning))
				Expect(d.Running()).To(BeTrue())
				Expect(d.SimTime()).To(Equal(0.0))
			})

		It("should apply initial values and the world origin", func() {
			Expect(currentFake.scalar(refAltitude)).To(Equal(100.0))
			Expect(currentFake.scalar(refOriginLat)).To(Equal(47.6))
			Expect(currentFake.scalar(refOriginLon)).To(Equal(-122.3))
			Expect(currentFake.scalar(refOriginAlt)).To(Equal(86.0))
		})

		It("should publish the initial snapshot on every output topic",
			func() {
				Expect(telemetry.messages).To(HaveLen(1))
				Expect(telemetry.lastDoc()["alt"]).To(Equal(100.0))

				Expect(effector.messages).To(HaveLen(1))
				pose := effector.lastData()["pose"].(map[string]any)
				position := pose["position"].(map[string]any)
				Expect(position["x"]).To(Equal(0.0))
			})

		It("should ignore a second start command", func() {
			start(5)

			Expect(currentFake.exitInitCalls).To(Equal(1))
			Expect(d.SimTime()).To(Equal(0.0))
		})

		It("should step to the announced clock time", func() {
			send("veh1.controls", map[string]any{"throttle": 0.5},
				sim.NoSimTime())
			sendClock(2.0)

			Expect(currentFake.stepCalls).To(Equal(
				[]stepCall{{from: 0, delta: 2.0}}))
			Expect(d.SimTime()).To(Equal(2.0))
			Expect(telemetry.messages).To(HaveLen(2))
			Expect(telemetry.lastDoc()["alt"]).To(Equal(101.0))
		})

		It("should apply a structured input under its variable prefix",
			func() {
				state := msgs.NewEffectorState()
				state.Pose.Position.Z = -12.5
				data, err := msgs.ToMap(state)
				Expect(err).To(Succeed())

				payload, err := codec.Encode(
					bus.NewMetadata("veh1.effector_in",
						"cosim::types::EffectorState", sim.NoSimTime()),
					data)
				Expect(err).To(Succeed())
				Expect(transport.Publish("veh1.effector_in", payload)).
					To(Succeed())

				sendClock(1.0)

				refPositionZ := refEffectorBase + 2
				refOrientationW := refEffectorBase + 3
				Expect(currentFake.setFloatCalls[refPositionZ]).To(Equal(1))
				Expect(currentFake.scalar(refPositionZ)).To(Equal(-12.5))
				Expect(currentFake.scalar(refOrientationW)).To(Equal(1.0))
			})

		It("should keep only the last value delivered before a step", func() {
			send("veh1.controls", map[string]any{"throttle": 0.2},
				sim.NoSimTime())
			send("veh1.controls", map[string]any{"throttle": 0.9},
				sim.NoSimTime())
			sendClock(1.0)

			Expect(currentFake.setFloatCalls[refThrottle]).To(Equal(1))
			Expect(currentFake.scalar(refThrottle)).To(Equal(0.9))
		})

		It("should not reapply a consumed input on later steps", func() {
			send("veh1.controls", map[string]any{"throttle": 0.5},
				sim.NoSimTime())
			sendClock(1.0)
			sendClock(2.0)

			Expect(currentFake.setFloatCalls[refThrottle]).To(Equal(1))
			Expect(currentFake.stepCalls).To(HaveLen(2))
		})

		It("should drop a clock tick into the past", func() {
			sendClock(3.0)
			published := len(telemetry.messages)

			sendClock(1.0)

			Expect(currentFake.stepCalls).To(HaveLen(1))
			Expect(d.SimTime()).To(Equal(3.0))
			Expect(telemetry.messages).To(HaveLen(published))
		})

		It("should step and republish on a zero-length tick", func() {
			sendClock(1.0)
			sendClock(1.0)

			Expect(currentFake.stepCalls).To(Equal([]stepCall{
				{from: 0, delta: 1.0},
				{from: 1.0, delta: 0},
			}))
			Expect(telemetry.messages).To(HaveLen(3))
		})

		It("should never step backward in time", func() {
			for _, t := range []float64{1.0, 0.5, 2.0, 1.5, 3.0} {
				sendClock(t)
			}

			last := 0.0
			for _, call := range currentFake.stepCalls {
				Expect(call.from).To(BeNumerically(">=", last))
				Expect(call.delta).To(BeNumerically(">=", 0))
				last = call.from + call.delta
			}
			Expect(d.SimTime()).To(Equal(3.0))
		})

		It("should fault the stepper when the model fails a step", func() {
			currentFake.stepErr = errors.New("solver diverged")
			published := len(telemetry.messages)

			sendClock(1.0)

			Expect(d.StepState()).To(Equal(StepFaulted))
			Expect(d.Running()).To(BeFalse())
			Expect(telemetry.messages).To(HaveLen(published))

			sendClock(2.0)
			Expect(currentFake.stepCalls).To(HaveLen(1))
		})

		It("should stop running when the model requests termination", func() {
			currentFake.requestTermination = true

			sendClock(1.0)

			Expect(d.Running()).To(BeFalse())
			Expect(telemetry.lastDoc()["alt"]).To(Equal(100.0))

			sendClock(2.0)
			Expect(currentFake.stepCalls).To(HaveLen(1))
		})

		It("should tear down on stop and accept a reload", func() {
			sendCommand(CommandStop, nil)

			Expect(d.Phase()).To(Equal(PhaseUnconfigured))
			Expect(d.Running()).To(BeFalse())
			Expect(currentFake.terminateCalls).To(Equal(1))
			Expect(currentFake.freeCalls).To(Equal(1))

			loadConfig()
			Expect(d.Phase()).To(Equal(PhaseConfigLoaded))
		})

		It("should treat repeated stops as one", func() {
			sendCommand(CommandStop, nil)
			sendCommand(CommandStop, nil)

			Expect(currentFake.terminateCalls).To(Equal(1))
			Expect(currentFake.freeCalls).To(Equal(1))
			Expect(d.Phase()).To(Equal(PhaseUnconfigured))
		})

		It("should ignore input topics after stopping", func() {
			sendCommand(CommandStop, nil)
			published := len(telemetry.messages)

			send("veh1.controls", map[string]any{"throttle": 0.5},
				sim.NoSimTime())
			sendClock(1.0)

			Expect(currentFake.stepCalls).To(BeEmpty())
			Expect(telemetry.messages).To(HaveLen(published))
		})

		It("should ignore everything after a shutdown command", func() {
			sendCommand(CommandShutdown, nil)

			Expect(currentFake.terminateCalls).To(Equal(1))
			Expect(d.Phase()).To(Equal(PhaseUnconfigured))

			loadConfig()
			Expect(d.Phase()).To(Equal(PhaseUnconfigured))

			sendClock(1.0)
			Expect(currentFake.stepCalls).To(BeEmpty())
		})
	})

	Context("with a protocol that requires experiment setup", func() {
		BeforeEach(func() {
			loader.desc.Version = "2.0"
			loadConfig()
			start(4)
		})

		It("should set up the experiment before initialization", func() {
			Expect(currentFake.setupCalls).To(Equal(1))
			Expect(currentFake.enterInitTime).To(Equal(0.0))
			Expect(d.Running()).To(BeTrue())
			Expect(d.SimTime()).To(Equal(4.0))
		})
	})
})
