package litest

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingFormatter captures every event it receives, so tests can assert on
// the exact event stream a run produced.
type recordingFormatter struct {
	NoopFormatter
	events []string
}

// factory returns the same instance to every run, so the recorded events
// survive the run's formatter release.
func (r *recordingFormatter) factory(io.Writer) Formatter { return r }

func (r *recordingFormatter) record(kind string, args ...interface{}) {
	e := kind
	for _, a := range args {
		e += fmt.Sprintf("|%v", a)
	}
	r.events = append(r.events, e)
}

func (r *recordingFormatter) kinds() []string {
	var ks []string
	for _, e := range r.events {
		ks = append(ks, strings.SplitN(e, "|", 2)[0])
	}
	return ks
}

func (r *recordingFormatter) TestSuiteStart(s *Suite)        { r.record("TestSuiteStart", s.Name) }
func (r *recordingFormatter) TestHeader(test *Test)          { r.record("TestHeader", test.Index, test.Name) }
func (r *recordingFormatter) TestFooter(test *Test, st Stats) {
	r.record("TestFooter", test.Name, st.Passes, st.Fails)
}
func (r *recordingFormatter) AbortedTest(line int, reason string) {
	r.record("AbortedTest", line, reason)
}
func (r *recordingFormatter) TestSuiteEnd(s *Suite) { r.record("TestSuiteEnd", s.Name) }
func (r *recordingFormatter) PassedCheck(line int, expr string) {
	r.record("PassedCheck", line, expr)
}
func (r *recordingFormatter) PassedThrow(line int, expr string) {
	r.record("PassedThrow", line, expr)
}
func (r *recordingFormatter) PassedEquals(line int, expr, value string) {
	r.record("PassedEquals", line, expr, value)
}
func (r *recordingFormatter) Message(line int, text string) { r.record("Message", line, text) }
func (r *recordingFormatter) Expr(line int, expr, value string) {
	r.record("Expr", line, expr, value)
}
func (r *recordingFormatter) UnexpectedException(line int, expr, message string) {
	r.record("UnexpectedException", line, expr, message)
}
func (r *recordingFormatter) FailedCheck(line int, expr string) {
	r.record("FailedCheck", line, expr)
}
func (r *recordingFormatter) FailedEquals(line int, expr, expected, actual string) {
	r.record("FailedEquals", line, expr, expected, actual)
}
func (r *recordingFormatter) FailedThrow(line int, expr string) {
	r.record("FailedThrow", line, expr)
}
func (r *recordingFormatter) ManualFailure(line int, reason string) {
	r.record("ManualFailure", line, reason)
}

// newRunningSuite prepares a suite that behaves as if a run had started one
// test, for exercising assertion primitives outside Run.
func newRunningSuite(f Formatter) *Suite {
	s := NewSuite("unit")
	s.output = f
	s.StartTest()
	return s
}

func TestFormatLineNumber(t *testing.T) {
	assert.Equal(t, "12", FormatLineNumber(12))
	assert.Equal(t, "???", FormatLineNumber(0))
	assert.Equal(t, "???", FormatLineNumber(-5))
}

func TestNoopFormatterImplementsEveryHook(t *testing.T) {
	var f Formatter = NoopFormatter{}
	f.TestSuiteStart(nil)
	f.TestHeader(nil)
	f.TestFooter(nil, Stats{})
	f.AbortedTest(1, "x")
	f.TestSuiteEnd(nil)
	f.PassedCheck(1, "x")
	f.PassedThrow(1, "x")
	f.PassedEquals(1, "x", "y")
	f.Message(1, "x")
	f.Expr(1, "x", "y")
	f.UnexpectedException(1, "x", "y")
	f.FailedCheck(1, "x")
	f.FailedEquals(1, "x", "y", "z")
	f.FailedThrow(1, "x")
	f.ManualFailure(1, "x")
}
