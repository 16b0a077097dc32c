package text

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/davidmdm/ansi"
)

type File struct {
	Name  string
	Lines []string
}

// Diff returns a unified diff of the two files, or an empty string when they are equal.
func Diff(expected, actual File, context int) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        terminate(expected.Lines),
		B:        terminate(actual.Lines),
		FromFile: expected.Name,
		ToFile:   actual.Name,
		Context:  context,
	})
	return diff
}

func DiffColorized(expected, actual File, context int) string {
	return colorize(Diff(expected, actual, context))
}

func terminate(lines []string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = line + "\n"
	}
	return result
}

var (
	green = ansi.MakeStyle(ansi.FgGreen)
	red   = ansi.MakeStyle(ansi.FgRed)
	cyan  = ansi.MakeStyle(ansi.FgCyan)
)

func colorize(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		case line[0] == '-':
			lines[i] = red.Sprint(line)
		case line[0] == '+':
			lines[i] = green.Sprint(line)
		case line[0] == '@':
			lines[i] = cyan.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}
