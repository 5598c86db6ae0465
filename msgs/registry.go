package msgs

import (
	"fmt"
	"sync"
)

// TypeInfo describes one registered structured message type.
type TypeInfo struct {
	// Name is the wire type name, e.g. "cosim::types::VehicleState".
	Name string

	// Prefix is the canonical variable prefix contributed by messages of
	// this type, without the trailing dot, e.g. "vehicle_state".
	Prefix string

	// New creates a message of this type with default values.
	New func() any
}

var typeRegistryMutex sync.RWMutex
var typeRegistry = map[string]TypeInfo{}

// RegisterType registers a structured message type so that topic bindings
// can look it up by wire type name. Registering the same name twice panics.
func RegisterType(info TypeInfo) {
	typeRegistryMutex.Lock()
	defer typeRegistryMutex.Unlock()

	if _, found := typeRegistry[info.Name]; found {
		panic(fmt.Sprintf("message type %s already registered", info.Name))
	}

	typeRegistry[info.Name] = info
}

// LookupType returns the registered type info for a wire type name.
func LookupType(name string) (TypeInfo, bool) {
	typeRegistryMutex.RLock()
	defer typeRegistryMutex.RUnlock()

	info, found := typeRegistry[name]
	return info, found
}

func init() {
	RegisterType(TypeInfo{
		Name:   "cosim::types::VehicleState",
		Prefix: "vehicle_state",
		New:    func() any { return NewVehicleState() },
	})
	RegisterType(TypeInfo{
		Name:   "cosim::types::EffectorState",
		Prefix: "effector_state",
		New:    func() any { return NewEffectorState() },
	})
	RegisterType(TypeInfo{
		Name:   "cosim::types::AutopilotCommand",
		Prefix: "autopilot_command",
		New:    func() any { return NewAutopilotCommand() },
	})
	RegisterType(TypeInfo{
		Name:   "cosim::types::FlightControlCommand",
		Prefix: "flight_control_command",
		New:    func() any { return NewFlightControlCommand() },
	})
	RegisterType(TypeInfo{
		Name:   "cosim::types::AircraftEffectorCommand",
		Prefix: "aircraft_effector_command",
		New:    func() any { return NewAircraftEffectorCommand() },
	})
	RegisterType(TypeInfo{
		Name:   "cosim::types::PrimaryFlightDisplayData",
		Prefix: "primary_flight_display_data",
		New:    func() any { return NewPrimaryFlightDisplayData() },
	})
}
