package driver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/flightworks/cosim/model"
)

// A TopicSpec names one structured topic and its wire message type.
type TopicSpec struct {
	Topic   string `json:"topic"`
	MsgType string `json:"msg_type"`

	// VarPrefix overrides the message type's canonical variable prefix.
	VarPrefix string `json:"var_prefix,omitempty"`
}

// An InstanceConfig is one driver's slice of the global simulation
// configuration, delivered inside the orchestrator's load_config command.
type InstanceConfig struct {
	ID        string `json:"id"`
	ModelPath string `json:"model_path"`

	// InitialValues maps variable names to their initial values, typed by
	// their literal representation.
	InitialValues map[string]json.RawMessage `json:"initial_values"`

	InputTopics  []TopicSpec `json:"component_input_topics"`
	OutputTopics []TopicSpec `json:"component_output_topics"`

	// AuxInputMapping and AuxOutputMapping remap generic key/value topics:
	// topic name to a mapping from message field name to variable name.
	AuxInputMapping  map[string]map[string]string `json:"aux_input_mapping"`
	AuxOutputMapping map[string]map[string]string `json:"aux_output_mapping"`
}

// A WorldOrigin is the geodetic origin of the simulated world.
type WorldOrigin struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// A SimConfig is the global simulation configuration the orchestrator
// distributes with load_config.
type SimConfig struct {
	World struct {
		Origin WorldOrigin `json:"origin"`
	} `json:"world"`

	Models []InstanceConfig `json:"models"`
}

// ParseSimConfig decodes a sim config out of the decoded command parameter
// document.
func ParseSimConfig(params map[string]any) (*SimConfig, error) {
	raw, found := params["sim_config"]
	if !found {
		return nil, &model.ConfigError{
			Reason: "load_config parameters carry no sim_config",
		}
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, &model.ConfigError{
			Reason: fmt.Sprintf("cannot re-encode sim_config: %v", err),
		}
	}

	cfg := &SimConfig{}
	if err := json.Unmarshal(encoded, cfg); err != nil {
		return nil, &model.ConfigError{
			Reason: fmt.Sprintf("malformed sim_config: %v", err),
		}
	}

	return cfg, nil
}

// FindInstance returns the configuration slice for one driver id, or nil.
func (c *SimConfig) FindInstance(id string) *InstanceConfig {
	for i := range c.Models {
		if c.Models[i].ID == id {
			return &c.Models[i]
		}
	}

	return nil
}

// decodeLiteral decodes one initial-value literal, keeping numbers as
// json.Number so that integer and floating-point literals stay
// distinguishable for type checking.
func decodeLiteral(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
