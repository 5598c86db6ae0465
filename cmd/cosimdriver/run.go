package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/flightworks/cosim/bus"
	"github.com/flightworks/cosim/driver"
	"github.com/flightworks/cosim/monitoring"
	"github.com/flightworks/cosim/msgs"
	"github.com/flightworks/cosim/sim"
	"github.com/flightworks/cosim/tracing"
)

var runFilePath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one model through a scripted clock",
	Run: func(cmd *cobra.Command, args []string) {
		run()
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFilePath, "run-file", "f", "run.yaml",
		"Path of the YAML run file")
	rootCmd.AddCommand(runCmd)
}

func run() {
	// A .env file may carry COSIM_ROOT and friends; its absence is fine.
	_ = godotenv.Load()

	rf, err := loadRunFile(runFilePath)
	if err != nil {
		logrus.Fatalf("cannot load run file: %v", err)
	}

	applyLogLevel(rf.LogLevel)

	simCfg, err := loadSimConfig(rf.SimConfig)
	if err != nil {
		logrus.Fatalf("cannot load sim config: %v", err)
	}

	transport := bus.NewInprocTransport()

	var tracer tracing.Tracer
	if rf.TraceDB != "" {
		w := tracing.NewSQLiteTraceWriter(rf.TraceDB)
		w.Init()
		tracer = w
	}

	b := driver.MakeBuilder().
		WithID(rf.Driver.ID).
		WithTransport(transport).
		WithTracer(tracer).
		WithWorkDir(rf.Driver.WorkDir).
		WithRootPath(rf.Driver.RootPath)
	if rf.Driver.CommandTopic != "" {
		b = b.WithCommandTopic(rf.Driver.CommandTopic)
	}
	if rf.Driver.ClockTopic != "" {
		b = b.WithClockTopic(rf.Driver.ClockTopic)
	}
	d := b.Build()

	monitor := monitoring.NewMonitor()
	if rf.Monitor.Port != 0 {
		monitor.WithPortNumber(rf.Monitor.Port)
	}
	monitor.RegisterDriver(d)
	monitor.StartServer()

	if rf.Monitor.Dashboard {
		if err := browser.OpenURL(monitor.URL()); err != nil {
			logrus.Warnf("cannot open dashboard: %v", err)
		}
	}

	o := orchestrator{
		transport:    transport,
		commandTopic: commandTopicOf(rf),
		clockTopic:   clockTopicOf(rf),
	}

	o.sendCommand(driver.CommandLoadConfig,
		map[string]any{"sim_config": simCfg})
	if d.Phase() != driver.PhaseConfigLoaded {
		logrus.Fatalf("driver %s did not accept the configuration", d.Name())
	}

	o.sendCommand(driver.CommandStart, map[string]any{
		"sim_start_time": timeStampDoc(sim.TimeStamp{}),
	})
	if !d.Running() {
		logrus.Fatalf("driver %s did not start", d.Name())
	}

	runClock(o, d, rf)

	o.sendCommand(driver.CommandStop, nil)
	logrus.Infof("run complete at t=%g", d.SimTime())

	atexit.Exit(0)
}

// runClock ticks the driver at the configured step size until the duration
// elapses, the driver stops running, or the process is interrupted.
func runClock(o orchestrator, d *driver.Comp, rf *runFile) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, syscall.SIGINT, syscall.SIGTERM)

	steps := int(rf.Clock.Duration / rf.Clock.StepSize)
	for i := 1; i <= steps; i++ {
		select {
		case <-interrupted:
			logrus.Warn("interrupted, stopping")
			return
		default:
		}

		if !d.Running() {
			logrus.Warnf("driver stopped running at t=%g", d.SimTime())
			return
		}

		target := sim.TimeStampFromSec(float64(i) * rf.Clock.StepSize)
		o.sendClock(target)
	}
}

// orchestrator publishes the command and clock messages the driver listens
// for.
type orchestrator struct {
	transport    bus.Transport
	codec        bus.Codec
	commandTopic string
	clockTopic   string
}

func (o orchestrator) sendCommand(command string, params map[string]any) {
	doc := map[string]any{"command": command}
	if params != nil {
		doc["parameters"] = params
	}

	o.send(o.commandTopic, doc, sim.NoSimTime())
}

func (o orchestrator) sendClock(target sim.TimeStamp) {
	o.send(o.clockTopic,
		map[string]any{"timestamp_sim": timeStampDoc(target)}, target)
}

func (o orchestrator) send(topic string, doc map[string]any, ts sim.TimeStamp) {
	payload, err := o.codec.Encode(
		bus.NewMetadata(topic, msgs.JsonDataTypeName, ts),
		msgs.NewJsonData(doc))
	if err != nil {
		logrus.Fatalf("cannot encode message for %s: %v", topic, err)
	}

	if err := o.transport.Publish(topic, payload); err != nil {
		logrus.Fatalf("cannot publish to %s: %v", topic, err)
	}
}

func timeStampDoc(ts sim.TimeStamp) map[string]any {
	return map[string]any{"sec": ts.Sec, "nanosec": ts.Nanosec}
}

func commandTopicOf(rf *runFile) string {
	if rf.Driver.CommandTopic != "" {
		return rf.Driver.CommandTopic
	}
	return driver.DefaultCommandTopic
}

func clockTopicOf(rf *runFile) string {
	if rf.Driver.ClockTopic != "" {
		return rf.Driver.ClockTopic
	}
	return driver.DefaultClockTopic
}

func applyLogLevel(level string) {
	if level == "" {
		return
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("invalid log level %q", level)
	}
	logrus.SetLevel(parsed)
}

func loadSimConfig(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg map[string]any
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("malformed sim config %s: %w", path, err)
	}

	return cfg, nil
}
