package model

// Protocol captures the capability differences between the two supported
// co-simulation protocol major versions. It is selected once at load time
// and consulted by the accessor and the driver instead of branching on the
// version string at every call site.
type Protocol struct {
	Version string

	// SupportsArrays tells whether array-valued variables can be read and
	// written. Array requests against a protocol without array support are
	// rejected with a CapabilityError, never silently truncated.
	SupportsArrays bool

	// RequiresExperimentSetup tells whether initialization needs a separate
	// SetupExperiment call carrying the start time before entering
	// initialization mode.
	RequiresExperimentSetup bool
}

// The supported protocol major version strings.
const (
	ProtocolVersion2 = "2.0"
	ProtocolVersion3 = "3.0"
)

// ProtocolForVersion returns the capability set of a declared protocol
// version. An unsupported version is a configuration error.
func ProtocolForVersion(version string) (Protocol, error) {
	switch version {
	case ProtocolVersion3:
		return Protocol{
			Version:        version,
			SupportsArrays: true,
		}, nil
	case ProtocolVersion2:
		return Protocol{
			Version:                 version,
			RequiresExperimentSetup: true,
		}, nil
	default:
		return Protocol{}, &ConfigError{
			Reason: "unsupported protocol version " + version,
		}
	}
}
