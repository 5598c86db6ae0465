package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runFile is the YAML document that describes one standalone run.
type runFile struct {
	Driver struct {
		ID           string `yaml:"id"`
		WorkDir      string `yaml:"work_dir"`
		RootPath     string `yaml:"root_path"`
		CommandTopic string `yaml:"command_topic"`
		ClockTopic   string `yaml:"clock_topic"`
	} `yaml:"driver"`

	Clock struct {
		StepSize float64 `yaml:"step_size"`
		Duration float64 `yaml:"duration"`
	} `yaml:"clock"`

	// SimConfig is the path of the simulation configuration JSON file.
	SimConfig string `yaml:"sim_config"`

	Monitor struct {
		Port      int  `yaml:"port"`
		Dashboard bool `yaml:"dashboard"`
	} `yaml:"monitor"`

	TraceDB  string `yaml:"trace_db"`
	LogLevel string `yaml:"log_level"`
}

func loadRunFile(path string) (*runFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rf := &runFile{}
	if err := yaml.Unmarshal(raw, rf); err != nil {
		return nil, fmt.Errorf("malformed run file %s: %w", path, err)
	}

	if rf.Driver.ID == "" {
		return nil, fmt.Errorf("run file %s names no driver id", path)
	}
	if rf.SimConfig == "" {
		return nil, fmt.Errorf("run file %s names no sim_config", path)
	}
	if rf.Clock.StepSize <= 0 {
		return nil, fmt.Errorf("run file %s needs a positive clock step_size",
			path)
	}
	if rf.Clock.Duration < 0 {
		return nil, fmt.Errorf("run file %s has a negative clock duration",
			path)
	}

	return rf, nil
}
