package model

import "fmt"

// A ConfigError reports a configuration problem. Configuration errors are
// always fatal to the load or start attempt that surfaced them; they are
// never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// A CapabilityError reports an operation that the loaded protocol variant
// cannot express, such as an array access under a protocol without array
// support. It is fatal to the single call that raised it.
type CapabilityError struct {
	Op     string
	Reason string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability error in %s: %s", e.Op, e.Reason)
}

// An UnknownVariableError reports a variable name that the loaded model does
// not declare. It always indicates a configuration error.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return "unknown variable " + e.Name
}
