package field

// Requirement tells whether a field part must be declared.
type Requirement int

const (
	// Mandatory parts fail the read when absent.
	Mandatory Requirement = iota
	// Optional parts read as absent.
	Optional
)

// String implements fmt.Stringer.
func (r Requirement) String() string {
	switch r {
	case Mandatory:
		return "mandatory"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

// Policy selects which parts of a field must be declared. The zero value
// requires both the variable attribute and the spec element, which is what
// input fields need; decorative fields such as titles or dividers use
// OptionalPolicy.
type Policy struct {
	Variable Requirement
	Spec     Requirement
}

// OptionalPolicy returns a policy under which neither the variable nor the
// spec is required.
func OptionalPolicy() Policy {
	return Policy{Variable: Optional, Spec: Optional}
}
