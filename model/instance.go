package model

// StepResult reports the outcome of one successful co-simulation step.
type StepResult struct {
	EventEncountered   bool
	TerminateRequested bool
	EarlyReturn        bool

	// LastSuccessfulTime is the simulation time the model actually reached.
	// It may differ slightly from the requested communication point when
	// the model early-returns; the driver trusts this value.
	LastSuccessfulTime float64
}

// An Instance is a live co-simulation slave exposing the standard
// instantiate/initialize/step/terminate protocol and typed get/set calls
// keyed by value reference. Instances are not reentrant: callers must
// serialize all calls.
type Instance interface {
	// Instantiate prepares the instance for initialization.
	Instantiate() error

	// SetupExperiment communicates the start time under protocol variants
	// that require a separate setup call (see Protocol).
	SetupExperiment(startTime float64) error

	// EnterInitializationMode begins initialization. Variants that take the
	// start time through SetupExperiment ignore the argument here.
	EnterInitializationMode(startTime float64) error

	// ExitInitializationMode makes the instance ready for stepping.
	ExitInitializationMode() error

	// DoStep advances the instance over
	// [currentTime, currentTime+stepSize]. A returned error is a step
	// failure, fatal for the instance.
	DoStep(currentTime, stepSize float64) (StepResult, error)

	// Terminate stops the instance.
	Terminate() error

	// FreeInstance releases the instance's resources. No calls may follow.
	FreeInstance()

	SetFloat64(ref ValueRef, vals []float64) error
	GetFloat64(ref ValueRef, n int) ([]float64, error)
	SetInt64(ref ValueRef, vals []int64) error
	GetInt64(ref ValueRef, n int) ([]int64, error)
	SetString(ref ValueRef, vals []string) error
	GetString(ref ValueRef, n int) ([]string, error)
	SetBoolean(ref ValueRef, vals []bool) error
	GetBoolean(ref ValueRef, n int) ([]bool, error)
}
