package gear

import "fmt"

// ParameterError reports a scalar input outside its recognized range.
// It corresponds to validation at the parameter boundary, before any
// geometry is derived.
type ParameterError struct {
	Name       string  // parameter name
	Got        float64 // offending value
	Constraint string  // violated constraint
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: want %s", e.Name, e.Got, e.Constraint)
}

// GeometryError reports derived geometry that is degenerate or would
// self-intersect for otherwise in-range parameters.
type GeometryError struct {
	Reason string
	Got    float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s (got %g)", e.Reason, e.Got)
}
