package cmd

import (
	"fmt"
	"io"
	"strings"
)

type helpLine struct {
	usage       string
	description string
}

type helpSection struct {
	title string
	lines []helpLine
}

// UsageDescription renders the one-line synopsis, e.g. "Usage: cleanup <source?> [options...]".
func (a *App) UsageDescription() string {
	var sb strings.Builder
	sb.WriteString("Usage: " + a.name)

	for _, value := range a.values {
		sb.WriteString(" " + value.Usage())
	}

	switch len(a.flags) {
	case 0:
	case 1:
		sb.WriteString(" [options]")
	default:
		sb.WriteString(" [options...]")
	}

	return sb.String()
}

// Help renders the usage line followed by the aligned Flags, Arguments and Values sections.
func (a *App) Help() string {
	flags := helpSection{title: "Flags"}
	arguments := helpSection{title: "Arguments"}
	values := helpSection{title: "Values"}

	for _, flag := range a.flags {
		line := helpLine{usage: flag.Usage(), description: flag.Description}
		if flag.ExpectsValue {
			arguments.lines = append(arguments.lines, line)
		} else {
			flags.lines = append(flags.lines, line)
		}
	}

	for _, value := range a.values {
		values.lines = append(values.lines, helpLine{
			usage:       fmt.Sprintf("<%s>", value.Name),
			description: value.Description,
		})
	}

	sections := []helpSection{flags, arguments, values}

	// Every section shares the same column so descriptions line up across groups
	width := 0
	for _, section := range sections {
		for _, line := range section.lines {
			width = max(width, len(line.usage))
		}
	}

	var sb strings.Builder
	sb.WriteString(a.UsageDescription())
	sb.WriteString("\n")

	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "\n%s:\n", section.title)
		for _, line := range section.lines {
			fmt.Fprintf(&sb, "  %-*s  %s\n", width, line.usage, line.description)
		}
	}

	return sb.String()
}

// PrintHelp writes the full help text to w.
func (a *App) PrintHelp(w io.Writer) error {
	_, err := io.WriteString(w, a.Help())
	return err
}
