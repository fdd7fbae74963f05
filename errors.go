package dates

import "fmt"

// InvalidUnitError reports a unit outside the closed enumeration. It is
// returned by Add, Subtract, Diff, StartOf, EndOf and the truncating
// comparators; none of them fall back to a default granularity.
type InvalidUnitError struct {
	// Name is the rejected unit as given: a string passed to ParseUnit or
	// the String() form of an out-of-range Unit value.
	Name string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("dates: invalid unit %q", e.Name)
}

// UnsupportedInputError reports a value the coercion layer cannot interpret
// as an instant.
type UnsupportedInputError struct {
	Value any
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("dates: cannot interpret %T as an instant", e.Value)
}

// EmptyArgumentError reports a variadic selection (Min, Max) called with no
// arguments.
type EmptyArgumentError struct {
	// Op is the operation that was called, e.g. "Min".
	Op string
}

func (e *EmptyArgumentError) Error() string {
	return "dates: " + e.Op + " requires at least one instant"
}

// InvalidFieldError reports a Field outside the accessor registry. Only the
// registry entry points Get and Set can produce it; the named accessors are
// statically bound to valid fields.
type InvalidFieldError struct {
	Field Field
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("dates: invalid field %s", e.Field)
}

// invalidUnit builds the error for a Unit value rather than a raw name.
func invalidUnit(u Unit) error {
	return &InvalidUnitError{Name: u.String()}
}
