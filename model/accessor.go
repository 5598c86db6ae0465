package model

import "fmt"

// An Accessor reads and writes a live model instance with values typed by
// the registry's recorded metadata. Callers never need to know a variable's
// type in advance: the registry is the single source of truth used to pick
// the variant at every access site.
type Accessor struct {
	registry *Registry
	instance Instance
	protocol Protocol
}

// NewAccessor creates an accessor over a registry, a live instance, and the
// protocol capability set selected at load time.
func NewAccessor(r *Registry, inst Instance, proto Protocol) *Accessor {
	return &Accessor{
		registry: r,
		instance: inst,
		protocol: proto,
	}
}

// Set converts a decoded document value to the variable's declared type and
// writes it into the model instance immediately. A scalar value is treated
// as a one-element array when the variable is scalar; any other shape or
// type mismatch is an error.
func (a *Accessor) Set(name string, raw any) error {
	d, err := a.registry.Resolve(name)
	if err != nil {
		return err
	}

	v, err := Convert(raw, d.Type)
	if err != nil {
		return err
	}

	return a.setValue(d, v)
}

// SetValue writes an already-typed value into the model instance.
func (a *Accessor) SetValue(name string, v Value) error {
	d, err := a.registry.Resolve(name)
	if err != nil {
		return err
	}

	if v.Kind() != d.Type {
		return &ConfigError{
			Reason: fmt.Sprintf("variable %s is %s, got %s",
				name, d.Type, v.Kind()),
		}
	}

	return a.setValue(d, v)
}

func (a *Accessor) setValue(d *VariableDescriptor, v Value) error {
	if err := a.arrayOpMustBeSupported("set", d, v.Len()); err != nil {
		return err
	}

	switch d.Type {
	case TypeReal:
		return a.instance.SetFloat64(d.Reference, v.Floats())
	case TypeInteger:
		return a.instance.SetInt64(d.Reference, v.Ints())
	case TypeString:
		return a.instance.SetString(d.Reference, v.Strs())
	case TypeBoolean:
		return a.instance.SetBoolean(d.Reference, v.Bools())
	default:
		panic("descriptor with invalid type")
	}
}

// Get reads the variable's current value from the model instance, with the
// element count taken from the registry's recorded dimensions.
func (a *Accessor) Get(name string) (Value, error) {
	d, err := a.registry.Resolve(name)
	if err != nil {
		return Value{}, err
	}

	count := d.ElementCount()
	if err := a.arrayOpMustBeSupported("get", d, count); err != nil {
		return Value{}, err
	}

	switch d.Type {
	case TypeReal:
		vals, err := a.instance.GetFloat64(d.Reference, count)
		if err != nil {
			return Value{}, err
		}
		if d.IsScalar() {
			return Float(vals[0]), nil
		}
		return FloatArray(vals), nil
	case TypeInteger:
		vals, err := a.instance.GetInt64(d.Reference, count)
		if err != nil {
			return Value{}, err
		}
		if d.IsScalar() {
			return Int(vals[0]), nil
		}
		return IntArray(vals), nil
	case TypeString:
		vals, err := a.instance.GetString(d.Reference, count)
		if err != nil {
			return Value{}, err
		}
		if d.IsScalar() {
			return Str(vals[0]), nil
		}
		return StrArray(vals), nil
	case TypeBoolean:
		vals, err := a.instance.GetBoolean(d.Reference, count)
		if err != nil {
			return Value{}, err
		}
		if d.IsScalar() {
			return Bool(vals[0]), nil
		}
		return BoolArray(vals), nil
	default:
		panic("descriptor with invalid type")
	}
}

func (a *Accessor) arrayOpMustBeSupported(
	op string,
	d *VariableDescriptor,
	count int,
) error {
	if count > 1 && !a.protocol.SupportsArrays {
		return &CapabilityError{
			Op: op,
			Reason: fmt.Sprintf(
				"variable %s has %d elements but protocol %s does not support arrays",
				d.Name, count, a.protocol.Version),
		}
	}

	if count != d.ElementCount() {
		return &ConfigError{
			Reason: fmt.Sprintf("variable %s expects %d elements, got %d",
				d.Name, d.ElementCount(), count),
		}
	}

	return nil
}
