package log

import "github.com/fatih/color"

var levelColors = map[LogLevel]*color.Color{
	Debug: color.New(color.FgBlue),
	Info:  color.New(color.FgGreen),
	Warn:  color.New(color.FgYellow),
	Error: color.New(color.FgRed),
	Fatal: color.New(color.FgMagenta),
}

// Colorize wraps text in the color assigned to the level.
// Output stays plain when color is disabled globally (NO_COLOR, no tty).
func Colorize(l LogLevel, text string) string {
	c, ok := levelColors[l]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
