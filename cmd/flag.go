package cmd

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultFunc resolves a fallback for a flag or value.
// It receives the entries resolved so far, keyed by name.
type DefaultFunc func(resolved map[string]string) string

// ValidatorFunc checks a resolved string and returns a descriptive error if it is rejected.
type ValidatorFunc func(value string) error

// Flag describes a single command-line flag and every literal token it is accepted as.
type Flag struct {
	Name             string
	Description      string
	ValueDescription string
	ExpectsValue     bool
	Abbreviations    []string

	Default   DefaultFunc
	Validator ValidatorFunc
}

// NewFlag creates a flag that expects no value and has no abbreviations yet.
func NewFlag(name string) *Flag {
	return &Flag{
		Name:             name,
		Description:      "Unknown",
		ValueDescription: "value",
	}
}

// Abbr adds a literal token (e.g. "-h" or "--help") that selects this flag.
func (f *Flag) Abbr(abbr string) *Flag {
	f.Abbreviations = append(f.Abbreviations, abbr)
	return f
}

// Expects marks whether the flag consumes the following token as its value.
func (f *Flag) Expects(value bool) *Flag {
	f.ExpectsValue = value
	return f
}

// WithDefault sets the fallback used when the flag has no value token.
// A flag with a default always expects a value.
func (f *Flag) WithDefault(def DefaultFunc) *Flag {
	f.Default = def
	f.ExpectsValue = true
	return f
}

// Describe sets the help text.
func (f *Flag) Describe(description string) *Flag {
	f.Description = description
	return f
}

// DescribeValue sets the placeholder shown in help text for the expected value.
// Panics if the flag does not expect a value.
func (f *Flag) DescribeValue(description string) *Flag {
	if !f.ExpectsValue {
		panic(fmt.Sprintf("cmd: tried to set value-description on flag %q which does not expect a value", f.Name))
	}

	f.ValueDescription = description
	return f
}

// Validate sets the validator run against every value resolved for this flag.
func (f *Flag) Validate(validator ValidatorFunc) *Flag {
	f.Validator = validator
	return f
}

// HasAbbr reports whether token is one of the flag's abbreviations.
func (f *Flag) HasAbbr(token string) bool {
	return slices.Contains(f.Abbreviations, token)
}

// Usage returns the left-hand help column, e.g. "-l, --log-file <file>".
func (f *Flag) Usage() string {
	usage := strings.Join(f.Abbreviations, ", ")
	if f.ExpectsValue {
		usage += fmt.Sprintf(" <%s>", f.ValueDescription)
	}

	return usage
}
