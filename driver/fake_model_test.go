package driver

import (
	"github.com/flightworks/cosim/model"
)

// Value references of the fake aircraft model.
const (
	refThrottle model.ValueRef = 1
	refAltitude model.ValueRef = 2

	refEffectorBase model.ValueRef = 10

	refOriginLat model.ValueRef = 20
	refOriginLon model.ValueRef = 21
	refOriginAlt model.ValueRef = 22
)

func fakeDescription() *model.Description {
	vars := []model.VariableDescriptor{
		{Name: "throttle", Reference: refThrottle,
			Type: model.TypeReal, Causality: model.CausalityInput},
		{Name: "altitude", Reference: refAltitude,
			Type: model.TypeReal, Causality: model.CausalityOutput},
		{Name: "world_origin_latitude", Reference: refOriginLat,
			Type: model.TypeReal, Causality: model.CausalityParameter},
		{Name: "world_origin_longitude", Reference: refOriginLon,
			Type: model.TypeReal, Causality: model.CausalityParameter},
		{Name: "world_origin_altitude", Reference: refOriginAlt,
			Type: model.TypeReal, Causality: model.CausalityParameter},
	}

	effectorFields := []string{
		"effector_state.pose.position.x",
		"effector_state.pose.position.y",
		"effector_state.pose.position.z",
		"effector_state.pose.orientation.w",
		"effector_state.pose.orientation.x",
		"effector_state.pose.orientation.y",
		"effector_state.pose.orientation.z",
	}
	for i, name := range effectorFields {
		vars = append(vars, model.VariableDescriptor{
			Name:      name,
			Reference: refEffectorBase + model.ValueRef(i),
			Type:      model.TypeReal,
			Causality: model.CausalityOutput,
		})
	}

	return &model.Description{
		ModelName:       "FakeAircraft",
		ModelIdentifier: "fake_aircraft",
		Version:         "3.0",
		Variables:       vars,
	}
}

// A fakeInstance is a scripted stand-in for a live model. Each step
// integrates altitude by the throttle value over the step interval.
type fakeInstance struct {
	floats map[model.ValueRef][]float64

	instantiated   bool
	setupCalls     int
	enterInitTime  float64
	inInitMode     bool
	exitInitCalls  int
	terminateCalls int
	freeCalls      int

	stepCalls []stepCall
	stepErr   error

	requestTermination bool

	setFloatCalls map[model.ValueRef]int
}

type stepCall struct {
	from  float64
	delta float64
}

func newFakeInstance() *fakeInstance {
	return &fakeInstance{
		floats:        map[model.ValueRef][]float64{},
		setFloatCalls: map[model.ValueRef]int{},
	}
}

func (f *fakeInstance) Instantiate() error {
	f.instantiated = true
	return nil
}

func (f *fakeInstance) SetupExperiment(startTime float64) error {
	f.setupCalls++
	return nil
}

func (f *fakeInstance) EnterInitializationMode(startTime float64) error {
	f.enterInitTime = startTime
	f.inInitMode = true
	return nil
}

func (f *fakeInstance) ExitInitializationMode() error {
	f.inInitMode = false
	f.exitInitCalls++
	return nil
}

func (f *fakeInstance) DoStep(
	currentTime, stepSize float64,
) (model.StepResult, error) {
	f.stepCalls = append(f.stepCalls, stepCall{currentTime, stepSize})

	if f.stepErr != nil {
		return model.StepResult{}, f.stepErr
	}

	throttle := f.scalar(refThrottle)
	f.floats[refAltitude] = []float64{f.scalar(refAltitude) +
		throttle*stepSize}

	return model.StepResult{
		LastSuccessfulTime: currentTime + stepSize,
		TerminateRequested: f.requestTermination,
	}, nil
}

func (f *fakeInstance) Terminate() error {
	f.terminateCalls++
	return nil
}

func (f *fakeInstance) FreeInstance() {
	f.freeCalls++
}

func (f *fakeInstance) SetFloat64(ref model.ValueRef, vals []float64) error {
	f.setFloatCalls[ref]++
	f.floats[ref] = append([]float64(nil), vals...)
	return nil
}

func (f *fakeInstance) SetInt64(model.ValueRef, []int64) error   { return nil }
func (f *fakeInstance) SetString(model.ValueRef, []string) error { return nil }
func (f *fakeInstance) SetBoolean(model.ValueRef, []bool) error  { return nil }

func (f *fakeInstance) GetFloat64(
	ref model.ValueRef,
	count int,
) ([]float64, error) {
	if vals, found := f.floats[ref]; found {
		return vals, nil
	}
	return make([]float64, count), nil
}

func (f *fakeInstance) GetInt64(_ model.ValueRef, count int) ([]int64, error) {
	return make([]int64, count), nil
}

func (f *fakeInstance) GetString(_ model.ValueRef, count int) ([]string, error) {
	return make([]string, count), nil
}

func (f *fakeInstance) GetBoolean(_ model.ValueRef, count int) ([]bool, error) {
	return make([]bool, count), nil
}

func (f *fakeInstance) scalar(ref model.ValueRef) float64 {
	if vals, found := f.floats[ref]; found && len(vals) > 0 {
		return vals[0]
	}
	return 0
}

// currentFake is handed out by the factory registered for the fake model
// identifier. Each spec installs a fresh one.
var currentFake *fakeInstance

func init() {
	model.RegisterFactory("fake_aircraft", func(string) model.Instance {
		return currentFake
	})
}

// fakeLoader hands out bundles that own no files.
type fakeLoader struct {
	desc *model.Description

	loadedPaths []string
	loadErr     error
}

func (l *fakeLoader) Load(path string) (*model.Bundle, error) {
	if l.loadErr != nil {
		return nil, l.loadErr
	}

	l.loadedPaths = append(l.loadedPaths, path)

	return model.NewBundle(l.desc)
}
