package cmd

import "fmt"

// Value describes a positional argument. Its position in the app defines the binding order.
type Value struct {
	Name        string
	Description string
	Required    bool

	Default   DefaultFunc
	Validator ValidatorFunc
}

// NewValue creates a required value without default.
func NewValue(name string) *Value {
	return &Value{
		Name:        name,
		Description: "Unknown",
		Required:    true,
	}
}

// WithDefault sets the fallback used when the value was not supplied.
// The function only sees values declared before this one.
func (v *Value) WithDefault(def DefaultFunc) *Value {
	v.Default = def
	return v
}

// Require marks the value as required or optional.
func (v *Value) Require(required bool) *Value {
	v.Required = required
	return v
}

// Describe sets the help text.
func (v *Value) Describe(description string) *Value {
	v.Description = description
	return v
}

// Validate sets the validator run against a user supplied value.
func (v *Value) Validate(validator ValidatorFunc) *Value {
	v.Validator = validator
	return v
}

// Optional reports whether the user may omit this value.
func (v *Value) Optional() bool {
	return !v.Required || v.Default != nil
}

// Usage returns the placeholder used in the usage line.
func (v *Value) Usage() string {
	if v.Optional() {
		return fmt.Sprintf("<%s?>", v.Name)
	}

	return fmt.Sprintf("<%s>", v.Name)
}
