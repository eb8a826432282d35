package litest

import (
	"io"
	"strconv"
)

// Formatter translates test lifecycle and assertion events into rendered
// output. A formatter instance is bound to one sink, is created at the start
// of a run and released at the end, and is never shared across runs.
//
// Concrete formatters embed NoopFormatter and override only the hooks they
// care about.
type Formatter interface {
	// Lifecycle hooks.
	TestSuiteStart(suite *Suite)
	TestHeader(test *Test)
	TestFooter(test *Test, stats Stats)
	AbortedTest(line int, reason string)
	TestSuiteEnd(suite *Suite)

	// Assertion and message events.
	PassedCheck(line int, expr string)
	PassedThrow(line int, expr string)
	PassedEquals(line int, expr, value string)
	Message(line int, text string)
	Expr(line int, expr, value string)
	UnexpectedException(line int, expr, message string)
	FailedCheck(line int, expr string)
	FailedEquals(line int, expr, expected, actual string)
	FailedThrow(line int, expr string)
	ManualFailure(line int, reason string)
}

// FormatterFactory constructs a Formatter bound to an output sink. A run
// calls it once to create the formatter it will own for that run.
type FormatterFactory func(w io.Writer) Formatter

// NoopFormatter implements every Formatter hook as a no-op.
type NoopFormatter struct{}

func (NoopFormatter) TestSuiteStart(*Suite)                  {}
func (NoopFormatter) TestHeader(*Test)                       {}
func (NoopFormatter) TestFooter(*Test, Stats)                {}
func (NoopFormatter) AbortedTest(int, string)                {}
func (NoopFormatter) TestSuiteEnd(*Suite)                    {}
func (NoopFormatter) PassedCheck(int, string)                {}
func (NoopFormatter) PassedThrow(int, string)                {}
func (NoopFormatter) PassedEquals(int, string, string)       {}
func (NoopFormatter) Message(int, string)                    {}
func (NoopFormatter) Expr(int, string, string)               {}
func (NoopFormatter) UnexpectedException(int, string, string) {}
func (NoopFormatter) FailedCheck(int, string)                {}
func (NoopFormatter) FailedEquals(int, string, string, string) {}
func (NoopFormatter) FailedThrow(int, string)                {}
func (NoopFormatter) ManualFailure(int, string)              {}

// NewNoopFormatter is a FormatterFactory for NoopFormatter, for callers that
// want a run with no output at all.
func NewNoopFormatter(io.Writer) Formatter {
	return NoopFormatter{}
}

// FormatLineNumber renders a source line number for display. Non-positive
// values mean the line is unknown. Concrete formatters may decorate the
// result further (for example with a "Line " prefix).
func FormatLineNumber(line int) string {
	if line > 0 {
		return strconv.Itoa(line)
	}
	return "???"
}
