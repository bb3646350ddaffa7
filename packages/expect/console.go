package expect

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// formatValue formats a value for display, summarizing large values.
func formatValue(v any, maxLen int) string {
	switch val := v.(type) {
	case nil:
		return "<none>"
	case []any:
		return fmt.Sprintf("[array with %d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{map with %d entries}", len(val))
	}
	str := fmt.Sprintf("%v", v)
	if len(str) > maxLen {
		return str[:maxLen] + "..."
	}
	return str
}

// ConsoleFormatter renders gathered failures as human-readable colored
// terminal output.
type ConsoleFormatter struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatFailures(records []*Record) {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	if len(records) == 1 {
		fmt.Fprintf(f.writer, "\n%s\n\n", bold("1 expectation failed"))
	} else {
		fmt.Fprintf(f.writer, "\n%s\n\n", bold(fmt.Sprintf("%d expectations failed", len(records))))
	}

	for _, rec := range records {
		fmt.Fprintf(f.writer, "  %s %s\n", red("✗"), rec.Failure.Message)
		if rec.Failure.Check != "" {
			fmt.Fprintf(f.writer, "    Check:    %s\n", rec.Failure.Check)
			if rec.Failure.Expected != nil {
				fmt.Fprintf(f.writer, "    Expected: %s\n", formatValue(rec.Failure.Expected, 100))
			}
			fmt.Fprintf(f.writer, "    Actual:   %s\n", formatValue(rec.Failure.Actual, 100))
		}
	}
	fmt.Fprintf(f.writer, "\n")
}
