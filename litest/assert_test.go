package litest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicsWith runs fn and returns the recovered panic value of type E, failing
// the test if fn does not panic with that type.
func panicsWith[E any](t *testing.T, fn func()) E {
	t.Helper()
	var got E
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a panic")
			e, ok := r.(E)
			require.True(t, ok, "panic value was %T, not the expected type", r)
			got = e
		}()
		fn()
	}()
	return got
}

func TestCheckPassAndFail(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	assert.Equal(t, Passed, Check(s, func() bool { return true }, Continue, "1 == 1", 3))
	assert.Equal(t, Failed, Check(s, func() bool { return false }, Continue, "1 == 2", 4))

	assert.Equal(t, Stats{Passes: 1, Fails: 1}, s.TotalTestStats())
	assert.Equal(t, []string{"PassedCheck|3|1 == 1", "FailedCheck|4|1 == 2"}, rec.events)
}

func TestCheckAbortPolicy(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	e := panicsWith[*TestAbortError](t, func() {
		Check(s, func() bool { return false }, Abort, "false", 9)
	})
	assert.Equal(t, 9, e.Line)
	assert.Equal(t, "Check failed.", e.Message)
	assert.Equal(t, Stats{Fails: 1}, s.TotalTestStats())
}

func TestCheckThrowModeOverridesContinuePolicy(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)
	s.Mode = ModeThrow

	e := panicsWith[*AssertionFailureError](t, func() {
		Check(s, func() bool { return false }, Continue, "false", 0)
	})
	assert.Contains(t, e.Message, "false")
	assert.Equal(t, []string{"FailedCheck|0|false"}, rec.events)
}

func TestCheckPredicatePanicReportsException(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	// A panic during evaluation aborts the test even though the requested
	// policy was Continue.
	e := panicsWith[*TestAbortError](t, func() {
		Check(s, func() bool { panic(errors.New("boom")) }, Continue, "expr", 7)
	})
	assert.Equal(t, "Caught in assertion", e.Message)
	assert.Equal(t, []string{"UnexpectedException|7|expr|boom"}, rec.events)
	assert.Equal(t, Stats{Fails: 1}, s.TotalTestStats())
}

func TestEqualIncrementsExactlyOneCounter(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	assert.Equal(t, Passed, Equal(s, 4, func() int { return 2 + 2 }, Continue, "2+2", 1))
	assert.Equal(t, Stats{Passes: 1, Fails: 0}, s.TotalTestStats())

	assert.Equal(t, Failed, Equal(s, 5, func() int { return 2 + 2 }, Continue, "2+2", 2))
	assert.Equal(t, Stats{Passes: 1, Fails: 1}, s.TotalTestStats())

	assert.Equal(t, []string{
		"PassedEquals|1|2+2|4",
		"FailedEquals|2|2+2|5|4",
	}, rec.events)
}

func TestEqualWithStrings(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	Equal(s, "ab", func() string { return "a" + "b" }, Continue, `"a"+"b"`, 0)
	assert.Equal(t, []string{`PassedEquals|0|"a"+"b"|ab`}, rec.events)
}

func TestThrowsPassesOnAnyPanic(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	assert.Equal(t, Passed, Throws(s, func() { panic("anything") }, Continue, "expr", 1))
	assert.Equal(t, Failed, Throws(s, func() {}, Continue, "expr", 2))
	assert.Equal(t, []string{"PassedThrow|1|expr", "FailedThrow|2|expr"}, rec.events)
}

type wantedError struct{ msg string }

func (e *wantedError) Error() string { return e.msg }

func TestThrowsTypeMatching(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	outcome := ThrowsType[*wantedError](s, func() { panic(&wantedError{msg: "yes"}) }, Continue, "expr", 1)
	assert.Equal(t, Passed, outcome)
	assert.Equal(t, []string{"PassedThrow|1|expr"}, rec.events)
}

func TestThrowsTypeNormalReturnIsFailedThrow(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	outcome := ThrowsType[*wantedError](s, func() {}, Continue, "expr", 2)
	assert.Equal(t, Failed, outcome)
	assert.Equal(t, []string{"FailedThrow|2|expr"}, rec.events)
}

func TestThrowsTypeWrongKindGoesThroughUnexpectedException(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	// A panic of the wrong kind is not folded into FailedThrow: it is an
	// unexpected exception, and it aborts the test.
	e := panicsWith[*TestAbortError](t, func() {
		ThrowsType[*wantedError](s, func() { panic(errors.New("other")) }, Continue, "expr", 3)
	})
	assert.Equal(t, "Caught in assertion", e.Message)
	assert.Equal(t, []string{"UnexpectedException|3|expr|other"}, rec.events)
}

func TestGenerateFailure(t *testing.T) {
	rec := &recordingFormatter{}
	s := newRunningSuite(rec)

	assert.Equal(t, Failed, GenerateFailure(s, "not implemented", Continue, 8))
	assert.Equal(t, []string{"ManualFailure|8|not implemented"}, rec.events)
	assert.Equal(t, Stats{Fails: 1}, s.TotalTestStats())

	e := panicsWith[*TestAbortError](t, func() {
		GenerateFailure(s, "fatal", Abort, 9)
	})
	assert.Equal(t, "Manual failure", e.Message)
}

func TestPanicMessageShapes(t *testing.T) {
	assert.Equal(t, "boom", panicMessage(errors.New("boom")))
	assert.Equal(t, "plain", panicMessage("plain"))
	assert.Equal(t, "N/A", panicMessage(42))
	assert.Equal(t, "N/A", panicMessage(struct{}{}))
}
