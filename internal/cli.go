package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/davidmdm/ansi"
)

var (
	cyan   = ansi.MakeStyle(ansi.FgCyan)
	yellow = ansi.MakeStyle(ansi.FgYellow)
)

// Colorize styles help text: lines starting with !cyan or !yellow are rendered in that
// color with the marker removed.
func Colorize(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if len(line) == 0 || line[0] != '!' {
			continue
		}

		color, line, _ := strings.Cut(line, " ")
		switch color {
		case "!cyan":
			lines[i] = cyan.Sprint(line)
		case "!yellow":
			lines[i] = yellow.Sprint(line)
		default:
			lines[i] = line
		}
	}
	return strings.Join(lines, "\n")
}

// Progress writes a stage banner to the context's stdout.
func Progress(ctx context.Context, msg string) {
	if Color(ctx) {
		msg = cyan.Sprint(msg)
	}
	fmt.Fprintln(Stdout(ctx), msg)
}

// Echo writes a command line about to be executed to the context's stdout.
func Echo(ctx context.Context, command string) {
	if Color(ctx) {
		command = yellow.Sprint(command)
	}
	fmt.Fprintln(Stdout(ctx), command)
}
