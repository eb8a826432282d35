package litest

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

// ConsoleFormatter renders the event stream as colored terminal output. Color
// handling follows the fatih/color conventions, so output degrades to plain
// text when the sink is not a terminal or NO_COLOR is set.
type ConsoleFormatter struct {
	NoopFormatter
	w     io.Writer
	level LogLevel

	head *color.Color
	pass *color.Color
	fail *color.Color
	warn *color.Color
}

// NewConsoleFormatter is a FormatterFactory producing a console formatter at
// the default LevelMessages verbosity.
func NewConsoleFormatter(w io.Writer) Formatter {
	return &ConsoleFormatter{
		w:     w,
		level: LevelMessages,
		head:  color.New(color.Bold),
		pass:  color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		warn:  color.New(color.FgYellow),
	}
}

// ConsoleFormatterAt returns a FormatterFactory producing console formatters
// at the given verbosity.
func ConsoleFormatterAt(level LogLevel) FormatterFactory {
	return func(w io.Writer) Formatter {
		f := NewConsoleFormatter(w).(*ConsoleFormatter)
		f.level = level
		return f
	}
}

func (f *ConsoleFormatter) lineNr(line int) string {
	return "line " + FormatLineNumber(line)
}

func (f *ConsoleFormatter) TestSuiteStart(suite *Suite) {
	f.head.Fprintf(f.w, "=== %s\n", suite.Name)
}

func (f *ConsoleFormatter) TestHeader(test *Test) {
	f.head.Fprintf(f.w, "--- Test %d: %s (%s)\n", test.Index, test.Name, filepath.Base(test.File))
}

func (f *ConsoleFormatter) TestFooter(test *Test, stats Stats) {
	switch {
	case test.Aborted:
		f.fail.Fprintf(f.w, "    ABORTED: %s\n", test.Name)
	case stats.Fails == 0:
		f.pass.Fprintf(f.w, "    ok: %d passed (%v)\n", stats.Passes, test.Duration)
	default:
		f.fail.Fprintf(f.w, "    FAILED: %d passed, %d failed\n", stats.Passes, stats.Fails)
	}
}

func (f *ConsoleFormatter) TestSuiteEnd(suite *Suite) {
	total := suite.TotalTestStats()
	f.head.Fprintf(f.w, "=== %s: %d passed, %d failed (%v)\n",
		suite.Name, total.Passes, total.Fails, suite.Duration)
}

func (f *ConsoleFormatter) AbortedTest(line int, reason string) {
	f.fail.Fprintf(f.w, "    %s: test aborted: %s\n", f.lineNr(line), reason)
}

func (f *ConsoleFormatter) PassedCheck(line int, expr string) {
	if f.level >= LevelEverything {
		f.pass.Fprintf(f.w, "    %s: passed check: %s\n", f.lineNr(line), expr)
	}
}

func (f *ConsoleFormatter) PassedThrow(line int, expr string) {
	if f.level >= LevelEverything {
		f.pass.Fprintf(f.w, "    %s: passed throw: %s\n", f.lineNr(line), expr)
	}
}

func (f *ConsoleFormatter) PassedEquals(line int, expr, value string) {
	if f.level >= LevelEverything {
		f.pass.Fprintf(f.w, "    %s: passed equals: %s == %s\n", f.lineNr(line), expr, value)
	}
}

func (f *ConsoleFormatter) Message(line int, text string) {
	if f.level >= LevelMessages {
		fmt.Fprintf(f.w, "    %s: %s\n", f.lineNr(line), text)
	}
}

func (f *ConsoleFormatter) Expr(line int, expr, value string) {
	if f.level >= LevelMessages {
		fmt.Fprintf(f.w, "    %s: %s evaluates to %s\n", f.lineNr(line), expr, value)
	}
}

func (f *ConsoleFormatter) UnexpectedException(line int, expr, message string) {
	f.warn.Fprintf(f.w, "    %s: exception caught: %s in %s\n", f.lineNr(line), message, expr)
}

func (f *ConsoleFormatter) FailedCheck(line int, expr string) {
	f.fail.Fprintf(f.w, "    %s: assertion failed: %s\n", f.lineNr(line), expr)
}

func (f *ConsoleFormatter) FailedEquals(line int, expr, expected, actual string) {
	f.fail.Fprintf(f.w, "    %s: equals failed: %s != %s (got %s)\n", f.lineNr(line), expr, expected, actual)
}

func (f *ConsoleFormatter) FailedThrow(line int, expr string) {
	f.fail.Fprintf(f.w, "    %s: expected exception: %s\n", f.lineNr(line), expr)
}

func (f *ConsoleFormatter) ManualFailure(line int, reason string) {
	f.fail.Fprintf(f.w, "    %s: manual failure: %s\n", f.lineNr(line), reason)
}
