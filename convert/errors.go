package convert

import "fmt"

// UnsupportedObjectError reports an object family that has a recognized
// name but no workable conversion for its configuration.
type UnsupportedObjectError struct {
	Name string
}

func (e *UnsupportedObjectError) Error() string {
	return fmt.Sprintf("unsupported object %q", e.Name)
}

// InvalidParameterError reports an object parameter outside its valid
// range or of the wrong shape.
type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s = %v", e.Name, e.Value)
}

// MissingAttributeError reports a required object attribute or argument
// that the box text does not carry.
type MissingAttributeError struct {
	Name string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing attribute %s", e.Name)
}
