package model

// A ValueRef is the opaque handle a model instance uses to identify a
// variable for get/set calls, distinct from the variable's name.
type ValueRef uint32

// Causality tells whether a variable is an input, an output, a parameter,
// or the independent (time) variable.
type Causality int

// The causality kinds a model variable can declare.
const (
	CausalityUnknown Causality = iota
	CausalityInput
	CausalityOutput
	CausalityParameter
	CausalityIndependent
)

func (c Causality) String() string {
	switch c {
	case CausalityInput:
		return "input"
	case CausalityOutput:
		return "output"
	case CausalityParameter:
		return "parameter"
	case CausalityIndependent:
		return "independent"
	default:
		return "unknown"
	}
}

func causalityFromString(s string) Causality {
	switch s {
	case "input":
		return CausalityInput
	case "output":
		return CausalityOutput
	case "parameter":
		return CausalityParameter
	case "independent":
		return CausalityIndependent
	default:
		return CausalityUnknown
	}
}

// A VariableDescriptor is the immutable metadata of one declared model
// variable.
type VariableDescriptor struct {
	Name      string
	Reference ValueRef
	Type      VarType
	Causality Causality

	// Dimensions is the declared array shape. Empty means scalar.
	Dimensions []int
}

// IsScalar tells if the variable is a scalar.
func (d *VariableDescriptor) IsScalar() bool {
	return len(d.Dimensions) == 0
}

// ElementCount returns the flat element count used for array get/set calls.
// It is the product of all dimension lengths, or 1 for scalars.
func (d *VariableDescriptor) ElementCount() int {
	count := 1
	for _, dim := range d.Dimensions {
		count *= dim
	}
	return count
}
