package litest

import "runtime"

// The caller-facing assertion layer. Go has no preprocessor to capture
// __LINE__ and stringified expressions, so these helpers take the expression
// text as an explicit string and capture the line number with runtime.Caller.
// Expect/Require pairs map to the Continue/Abort failure policies.

// Expect asserts that predicate returns true; the test resumes on failure.
func Expect(s *Suite, expr string, predicate func() bool) AssertionOutcome {
	return Check(s, predicate, Continue, expr, callerLine())
}

// Require asserts that predicate returns true; the test aborts on failure.
func Require(s *Suite, expr string, predicate func() bool) AssertionOutcome {
	return Check(s, predicate, Abort, expr, callerLine())
}

// ExpectEqual asserts that producer returns expected; the test resumes on
// failure.
func ExpectEqual[T comparable](s *Suite, expr string, expected T, producer func() T) AssertionOutcome {
	return Equal(s, expected, producer, Continue, expr, callerLine())
}

// RequireEqual asserts that producer returns expected; the test aborts on
// failure.
func RequireEqual[T comparable](s *Suite, expr string, expected T, producer func() T) AssertionOutcome {
	return Equal(s, expected, producer, Abort, expr, callerLine())
}

// ExpectPanic asserts that action panics; the test resumes on failure.
func ExpectPanic(s *Suite, expr string, action func()) AssertionOutcome {
	return Throws(s, action, Continue, expr, callerLine())
}

// RequirePanic asserts that action panics; the test aborts on failure.
func RequirePanic(s *Suite, expr string, action func()) AssertionOutcome {
	return Throws(s, action, Abort, expr, callerLine())
}

// ExpectPanicAs asserts that action panics with a value of type E; the test
// resumes on failure.
func ExpectPanicAs[E any](s *Suite, expr string, action func()) AssertionOutcome {
	return ThrowsType[E](s, action, Continue, expr, callerLine())
}

// RequirePanicAs asserts that action panics with a value of type E; the test
// aborts on failure.
func RequirePanicAs[E any](s *Suite, expr string, action func()) AssertionOutcome {
	return ThrowsType[E](s, action, Abort, expr, callerLine())
}

// Fail records a manual failure; the test resumes afterwards.
func Fail(s *Suite, reason string) AssertionOutcome {
	return GenerateFailure(s, reason, Continue, callerLine())
}

// AbortTest records a manual failure and aborts the test.
func AbortTest(s *Suite, reason string) AssertionOutcome {
	return GenerateFailure(s, reason, Abort, callerLine())
}

// Message emits a message event to the current run's formatter.
func Message(s *Suite, text string) {
	s.output.Message(callerLine(), text)
}

// PrintExpr emits the description of a value, labeled with its expression
// text, to the current run's formatter.
func PrintExpr(s *Suite, expr string, value interface{}) {
	s.output.Expr(callerLine(), expr, Describe(value))
}

// callerLine is the source line of the caller two frames up, or 0 if it
// cannot be determined.
func callerLine() int {
	if _, _, line, ok := runtime.Caller(2); ok {
		return line
	}
	return 0
}
