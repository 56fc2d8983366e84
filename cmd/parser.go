package cmd

import (
	"maps"
	"os"
	"strings"
)

// ConsumeArgs parses the arguments of the current process.
func (a *App) ConsumeArgs() (*Result, error) {
	return a.Consume(os.Args)
}

// Consume parses raw against the registered flags and values.
// The first element is always skipped, as it is the executable itself.
// Either a complete result or a *ParseError is returned, never both.
func (a *App) Consume(raw []string) (*Result, error) {
	args := make(map[string]string)
	values := make(map[string]string)
	flags := make(map[string]struct{})

	if len(raw) > 0 {
		raw = raw[1:]
	}

	offset := 0
	maxValues := len(a.values)

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		if isFlag(arg) {
			flag := a.lookupFlag(arg)
			if flag == nil {
				return nil, newParseError(ErrUnknownFlag, "Unknown flag: %s", arg)
			}

			if !flag.ExpectsValue {
				flags[flag.Name] = struct{}{}
				continue
			}

			var value string
			switch {
			case i+1 < len(raw) && !isFlag(raw[i+1]):
				i++
				value = raw[i]
			case flag.Default != nil:
				value = flag.Default(exclude(args, flag.Name))
			default:
				return nil, newParseError(ErrMissingFlagValue, "Flag %s expects a value.", arg)
			}

			if err := validate(flag.Validator, value); err != nil {
				return nil, err
			}

			args[flag.Name] = value
			continue
		}

		if offset == maxValues {
			return nil, newParseError(ErrTooManyValues, "Too many values. Maximum is %d but got %s as last one.", maxValues, arg)
		}

		values[a.values[offset].Name] = arg
		offset++
	}

	// Value flags that never appeared still resolve through their default
	for _, flag := range a.flags {
		if !flag.ExpectsValue || flag.Default == nil {
			continue
		}
		if _, ok := args[flag.Name]; ok {
			continue
		}

		value := flag.Default(exclude(args, flag.Name))
		if err := validate(flag.Validator, value); err != nil {
			return nil, err
		}

		args[flag.Name] = value
	}

	for i, value := range a.values {
		if supplied, ok := values[value.Name]; ok {
			if err := validate(value.Validator, supplied); err != nil {
				return nil, err
			}
			continue
		}

		if value.Default != nil {
			values[value.Name] = value.Default(resolvedBefore(values, a.values[:i]))
			continue
		}

		if value.Required {
			return nil, newParseError(ErrMissingValue, "Missing value labeled %q", value.Name)
		}
	}

	return newResult(values, args, flags), nil
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

func validate(validator ValidatorFunc, value string) error {
	if validator == nil {
		return nil
	}

	if err := validator(value); err != nil {
		return validationError(err)
	}

	return nil
}

// exclude copies resolved without name, so a default never sees its own flag.
func exclude(resolved map[string]string, name string) map[string]string {
	view := maps.Clone(resolved)
	delete(view, name)
	return view
}

// resolvedBefore copies the entries of the values declared ahead of the one being resolved.
func resolvedBefore(resolved map[string]string, declared []*Value) map[string]string {
	view := make(map[string]string, len(declared))
	for _, value := range declared {
		if v, ok := resolved[value.Name]; ok {
			view[value.Name] = v
		}
	}

	return view
}
