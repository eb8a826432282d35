package litest

import (
	"fmt"
	"io"
)

// LogLevel selects how much a formatter logs during a test run.
type LogLevel int

const (
	// LevelErrors logs only failed assertions and aborted tests.
	LevelErrors LogLevel = iota + 1

	// LevelMessages also logs messages and printed expressions.
	LevelMessages

	// LevelEverything also logs passed assertions.
	LevelEverything
)

// MarkdownFormatter renders the event stream as a Markdown-like text report.
type MarkdownFormatter struct {
	NoopFormatter
	w     io.Writer
	level LogLevel
}

// NewMarkdownFormatter is a FormatterFactory producing a Markdown formatter
// at the default LevelMessages verbosity.
func NewMarkdownFormatter(w io.Writer) Formatter {
	return &MarkdownFormatter{w: w, level: LevelMessages}
}

// MarkdownFormatterAt returns a FormatterFactory producing Markdown
// formatters at the given verbosity.
func MarkdownFormatterAt(level LogLevel) FormatterFactory {
	return func(w io.Writer) Formatter {
		return &MarkdownFormatter{w: w, level: level}
	}
}

func (f *MarkdownFormatter) logMessages() bool { return f.level >= LevelMessages }
func (f *MarkdownFormatter) logPasses() bool   { return f.level >= LevelEverything }

func (f *MarkdownFormatter) lineNr(line int) string {
	return "Line " + FormatLineNumber(line)
}

func (f *MarkdownFormatter) TestHeader(test *Test) {
	fmt.Fprintf(f.w, "\n Test %d: *%s* in file *%s*\n", test.Index, test.Name, test.File)
	fmt.Fprintln(f.w, "------------------------------------------------")
}

func (f *MarkdownFormatter) TestFooter(test *Test, stats Stats) {
	fmt.Fprintf(f.w, "\n**Total passed / failed assertions: %d / %d**\n", stats.Passes, stats.Fails)
}

func (f *MarkdownFormatter) TestSuiteEnd(suite *Suite) {
	total := suite.TotalTestStats()
	fmt.Fprintf(f.w, "\n Summary\n")
	fmt.Fprintln(f.w, "------------------------------------------------")
	fmt.Fprintf(f.w, "**Total passed / failed assertions: %d / %d**\n\n", total.Passes, total.Fails)
}

func (f *MarkdownFormatter) AbortedTest(line int, reason string) {
	fmt.Fprintf(f.w, "- %s:\t**Test aborted: %s**\n", f.lineNr(line), reason)
}

func (f *MarkdownFormatter) PassedCheck(line int, expr string) {
	if f.logPasses() {
		fmt.Fprintf(f.w, "- %s:\tPassed check in `%s`\n", f.lineNr(line), expr)
	}
}

func (f *MarkdownFormatter) PassedThrow(line int, expr string) {
	if f.logPasses() {
		fmt.Fprintf(f.w, "- %s:\tPassed throw in `%s`\n", f.lineNr(line), expr)
	}
}

func (f *MarkdownFormatter) PassedEquals(line int, expr, value string) {
	if f.logPasses() {
		fmt.Fprintf(f.w, "- %s:\tPassed equals: `%s` == `%s`\n", f.lineNr(line), expr, value)
	}
}

func (f *MarkdownFormatter) Message(line int, text string) {
	if f.logMessages() {
		fmt.Fprintf(f.w, "- %s:\t%s.\n", f.lineNr(line), text)
	}
}

func (f *MarkdownFormatter) Expr(line int, expr, value string) {
	if f.logMessages() {
		fmt.Fprintf(f.w, "- %s:\t`%s` evaluates to `%s`.\n", f.lineNr(line), expr, value)
	}
}

func (f *MarkdownFormatter) UnexpectedException(line int, expr, message string) {
	fmt.Fprintf(f.w, "- %s:\tException was caught: %s in `%s`\n", f.lineNr(line), message, expr)
}

func (f *MarkdownFormatter) FailedCheck(line int, expr string) {
	fmt.Fprintf(f.w, "- %s:\tAssertion failed: `%s`\n", f.lineNr(line), expr)
}

func (f *MarkdownFormatter) FailedEquals(line int, expr, expected, actual string) {
	fmt.Fprintf(f.w, "- %s:\tEquals failed: `%s` != `%s` (got `%s`)\n", f.lineNr(line), expr, expected, actual)
}

func (f *MarkdownFormatter) FailedThrow(line int, expr string) {
	fmt.Fprintf(f.w, "- %s:\tExpected exception: `%s`\n", f.lineNr(line), expr)
}

func (f *MarkdownFormatter) ManualFailure(line int, reason string) {
	fmt.Fprintf(f.w, "- %s:\tManual failure, reason: '%s'\n", f.lineNr(line), reason)
}
