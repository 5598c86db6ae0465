package driver

import (
	"fmt"
	"sort"

	"github.com/flightworks/cosim/model"
	"github.com/flightworks/cosim/msgs"
)

// Direction tells whether a binding subscribes to or publishes on its topic.
type Direction int

// The binding directions.
const (
	DirSubscribe Direction = iota
	DirPublish
)

// A Binding maps one bus topic onto model variables. Structured (component)
// bindings correspond implicitly through the message type's flattened field
// set under a variable prefix; generic (auxiliary) bindings carry an
// explicit field-to-variable remap. Bindings are built once at load time
// and are read-only during stepping.
type Binding struct {
	Topic     string
	Direction Direction

	// TypeName is the wire message type of a structured binding. It is
	// empty for auxiliary bindings, which carry generic documents.
	TypeName string

	// Prefix is the variable prefix of a structured binding, without the
	// trailing dot.
	Prefix string

	// Fields is the flattened field set of a structured binding's message
	// type, computed once from a default-valued message.
	Fields []string

	// VarMap remaps an auxiliary binding's message fields to variable
	// names. FieldOrder fixes the iteration order.
	VarMap     map[string]string
	FieldOrder []string
}

// IsAux tells if the binding carries generic documents.
func (b *Binding) IsAux() bool {
	return b.TypeName == ""
}

// A BindingTable holds all of one driver's topic bindings.
type BindingTable struct {
	Inputs  []*Binding
	Outputs []*Binding

	byInputTopic map[string]*Binding
}

// InputBinding returns the subscribe-direction binding of a topic.
func (t *BindingTable) InputBinding(topic string) (*Binding, bool) {
	b, found := t.byInputTopic[topic]
	return b, found
}

// BuildBindingTable builds the binding table of one instance configuration,
// validating every referenced variable against the registry. A binding that
// references a variable the model does not declare fails here, at bind
// time, never at step time.
func BuildBindingTable(
	cfg *InstanceConfig,
	reg *model.Registry,
) (*BindingTable, error) {
	t := &BindingTable{byInputTopic: map[string]*Binding{}}

	for _, spec := range cfg.InputTopics {
		b, err := buildStructuredBinding(spec, DirSubscribe, reg)
		if err != nil {
			return nil, err
		}
		if err := t.addInput(b); err != nil {
			return nil, err
		}
	}

	for _, topic := range sortedKeys(cfg.AuxInputMapping) {
		b, err := buildAuxBinding(
			topic, cfg.AuxInputMapping[topic], DirSubscribe, reg)
		if err != nil {
			return nil, err
		}
		if err := t.addInput(b); err != nil {
			return nil, err
		}
	}

	for _, spec := range cfg.OutputTopics {
		b, err := buildStructuredBinding(spec, DirPublish, reg)
		if err != nil {
			return nil, err
		}
		t.Outputs = append(t.Outputs, b)
	}

	for _, topic := range sortedKeys(cfg.AuxOutputMapping) {
		b, err := buildAuxBinding(
			topic, cfg.AuxOutputMapping[topic], DirPublish, reg)
		if err != nil {
			return nil, err
		}
		t.Outputs = append(t.Outputs, b)
	}

	return t, nil
}

func (t *BindingTable) addInput(b *Binding) error {
	if _, found := t.byInputTopic[b.Topic]; found {
		return &model.ConfigError{
			Reason: "topic " + b.Topic + " subscribed more than once",
		}
	}

	t.Inputs = append(t.Inputs, b)
	t.byInputTopic[b.Topic] = b

	return nil
}

func buildStructuredBinding(
	spec TopicSpec,
	dir Direction,
	reg *model.Registry,
) (*Binding, error) {
	info, found := msgs.LookupType(spec.MsgType)
	if !found {
		return nil, &model.ConfigError{
			Reason: fmt.Sprintf("topic %s uses unsupported message type %s",
				spec.Topic, spec.MsgType),
		}
	}

	prefix := info.Prefix
	if spec.VarPrefix != "" {
		prefix = spec.VarPrefix
	}

	fields, err := flattenedFields(info)
	if err != nil {
		return nil, err
	}

	for _, field := range fields {
		name := prefix + "." + field
		if _, err := reg.Resolve(name); err != nil {
			return nil, &model.ConfigError{
				Reason: fmt.Sprintf(
					"topic %s binds field %s to undeclared variable %s",
					spec.Topic, field, name),
			}
		}
	}

	return &Binding{
		Topic:     spec.Topic,
		Direction: dir,
		TypeName:  info.Name,
		Prefix:    prefix,
		Fields:    fields,
	}, nil
}

func buildAuxBinding(
	topic string,
	varMap map[string]string,
	dir Direction,
	reg *model.Registry,
) (*Binding, error) {
	for field, name := range varMap {
		if _, err := reg.Resolve(name); err != nil {
			return nil, &model.ConfigError{
				Reason: fmt.Sprintf(
					"aux topic %s remaps field %s to undeclared variable %s",
					topic, field, name),
			}
		}
	}

	return &Binding{
		Topic:      topic,
		Direction:  dir,
		VarMap:     varMap,
		FieldOrder: sortedKeys(varMap),
	}, nil
}

func flattenedFields(info msgs.TypeInfo) ([]string, error) {
	data, err := msgs.ToMap(info.New())
	if err != nil {
		return nil, fmt.Errorf("cannot flatten %s: %w", info.Name, err)
	}

	return sortedKeys(msgs.Flatten(data)), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
