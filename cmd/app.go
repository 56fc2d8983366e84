package cmd

import "fmt"

// App collects the flags and values a program accepts.
// It is assembled once at startup and is read-only while parsing.
type App struct {
	name   string
	flags  []*Flag
	values []*Value
}

// NewApp creates an empty app with the given program name.
func NewApp(name string) *App {
	return &App{
		name: name,
	}
}

// Name returns the program name used in the usage line.
func (a *App) Name() string {
	return a.name
}

// SetName replaces the program name.
func (a *App) SetName(name string) *App {
	a.name = name
	return a
}

// AddFlag registers a flag.
// Panics if the name or one of the abbreviations is already in use.
func (a *App) AddFlag(flag *Flag) *App {
	for _, existing := range a.flags {
		if existing.Name == flag.Name {
			panic(fmt.Sprintf("Flag with name %q is already defined.", flag.Name))
		}

		for _, abbr := range existing.Abbreviations {
			if flag.HasAbbr(abbr) {
				panic(fmt.Sprintf("Flag with name %q uses %q which is already in use by %q.", flag.Name, abbr, existing.Name))
			}
		}
	}

	a.flags = append(a.flags, flag)
	return a
}

// AddValue registers a positional value after all previously registered ones.
// Panics if the name is already in use.
func (a *App) AddValue(value *Value) *App {
	for _, existing := range a.values {
		if existing.Name == value.Name {
			panic(fmt.Sprintf("Value with name %q is already defined.", value.Name))
		}
	}

	a.values = append(a.values, value)
	return a
}

// Flags returns the registered flags in registration order.
func (a *App) Flags() []*Flag {
	return a.flags
}

// Values returns the registered values in positional order.
func (a *App) Values() []*Value {
	return a.values
}

func (a *App) lookupFlag(token string) *Flag {
	for _, flag := range a.flags {
		if flag.HasAbbr(token) {
			return flag
		}
	}

	return nil
}
