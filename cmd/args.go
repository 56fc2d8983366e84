package cmd

import (
	"maps"
	"slices"
)

// Result contains everything resolved by a single Consume call.
type Result struct {
	// Positional values after defaulting, keyed by value name
	values map[string]string

	// Values of flags that expect one, keyed by flag name
	args map[string]string

	// Value-less flags that appeared on the command line
	flags map[string]struct{}
}

func newResult(values, args map[string]string, flags map[string]struct{}) *Result {
	return &Result{
		values: values,
		args:   args,
		flags:  flags,
	}
}

// HasFlag reports whether the flag appeared or a value was resolved for it.
func (r *Result) HasFlag(name string) bool {
	if _, ok := r.flags[name]; ok {
		return true
	}

	_, ok := r.args[name]
	return ok
}

// HasArg reports whether a value was resolved for the flag.
func (r *Result) HasArg(name string) bool {
	_, ok := r.args[name]
	return ok
}

// GetArg returns the value resolved for a flag.
func (r *Result) GetArg(name string) (string, bool) {
	arg, ok := r.args[name]
	return arg, ok
}

// HasValue reports whether the positional value was resolved.
func (r *Result) HasValue(name string) bool {
	_, ok := r.values[name]
	return ok
}

// GetValue returns a resolved positional value.
func (r *Result) GetValue(name string) (string, bool) {
	value, ok := r.values[name]
	return value, ok
}

// Args returns a copy of all resolved flag values.
func (r *Result) Args() map[string]string {
	return maps.Clone(r.args)
}

// Values returns a copy of all resolved positional values.
func (r *Result) Values() map[string]string {
	return maps.Clone(r.values)
}

// Flags returns the names of the value-less flags that appeared, sorted.
func (r *Result) Flags() []string {
	return slices.Sorted(maps.Keys(r.flags))
}
