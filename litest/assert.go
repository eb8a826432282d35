package litest

// The assertion engine. Each primitive takes the owning suite, a closure
// producing the value or behavior under test, a failure policy, a
// human-readable source-expression string, and a source line number (0 when
// unknown). Every failed outcome is resolved with the same three-tier
// precedence: ModeThrow beats everything and raises an AssertionFailureError;
// otherwise an Abort policy raises a TestAbortError; otherwise the primitive
// records the failure and returns Failed so the test can continue.
//
// The ergonomic caller-facing layer in api.go fills in line numbers and
// policies; these functions are the full-signature forms.

// Check asserts that predicate returns true.
func Check(s *Suite, predicate func() bool, policy FailurePolicy, expr string, line int) AssertionOutcome {
	var result bool
	if outcome, completed := evaluate(s, line, expr, func() { result = predicate() }); !completed {
		return outcome
	}
	if !result {
		s.Failed()
		s.output.FailedCheck(line, expr)
		return resolveFailure(s, policy, line, "Check failed.", "Broken assertion in: "+expr)
	}
	s.Passed()
	s.output.PassedCheck(line, expr)
	return Passed
}

// Equal asserts that the value returned by producer equals expected.
func Equal[T comparable](s *Suite, expected T, producer func() T, policy FailurePolicy, expr string, line int) AssertionOutcome {
	var actual T
	if outcome, completed := evaluate(s, line, expr, func() { actual = producer() }); !completed {
		return outcome
	}
	if actual != expected {
		s.Failed()
		s.output.FailedEquals(line, expr, Describe(expected), Describe(actual))
		return resolveFailure(s, policy, line, "Equal failed.", "Unexpected value in: "+expr)
	}
	s.Passed()
	s.output.PassedEquals(line, expr, Describe(expected))
	return Passed
}

// Throws asserts that action panics. Any panic value counts as a pass; a
// normal return is a failure.
func Throws(s *Suite, action func(), policy FailurePolicy, expr string, line int) AssertionOutcome {
	if _, panicked := capture(action); panicked {
		s.Passed()
		s.output.PassedThrow(line, expr)
		return Passed
	}
	s.Failed()
	s.output.FailedThrow(line, expr)
	return resolveFailure(s, policy, line, "No exception in throw assertion.", "No exception in: "+expr)
}

// ThrowsType asserts that action panics with a value of type E. A normal
// return is reported as a failed throw; a panic of any other type is reported
// through the unexpected-exception path instead, so the two failure shapes
// stay distinguishable in the formatter stream.
func ThrowsType[E any](s *Suite, action func(), policy FailurePolicy, expr string, line int) AssertionOutcome {
	recovered, panicked := capture(action)
	if panicked {
		if _, ok := recovered.(E); ok {
			s.Passed()
			s.output.PassedThrow(line, expr)
			return Passed
		}
		return reportException(s, line, expr, panicMessage(recovered), Abort)
	}
	s.Failed()
	s.output.FailedThrow(line, expr)
	return resolveFailure(s, policy, line, "No exception in throw assertion.", "No exception in: "+expr)
}

// GenerateFailure unconditionally records a failure, without evaluating
// anything.
func GenerateFailure(s *Suite, reason string, policy FailurePolicy, line int) AssertionOutcome {
	s.Failed()
	s.output.ManualFailure(line, reason)
	return resolveFailure(s, policy, line, "Manual failure", "Manual failure, reason: "+reason)
}

// reportException records an assertion failure caused by a panic escaping the
// evaluated closure. A panic during evaluation aborts the test regardless of
// the policy the caller asked for, unless ModeThrow escalates it first.
func reportException(s *Suite, line int, expr, message string, policy FailurePolicy) AssertionOutcome {
	s.Failed()
	s.output.UnexpectedException(line, expr, message)
	if s.Mode == ModeThrow {
		panic(&AssertionFailureError{Message: "Unexpected exception in: " + expr})
	}
	if policy == Abort {
		panic(&TestAbortError{Line: line, Message: "Caught in assertion"})
	}
	return Failed
}

// resolveFailure applies the three-tier failure precedence after the failure
// has already been recorded and reported.
func resolveFailure(s *Suite, policy FailurePolicy, line int, abortReason, escalation string) AssertionOutcome {
	if s.Mode == ModeThrow {
		panic(&AssertionFailureError{Message: escalation})
	}
	if policy == Abort {
		panic(&TestAbortError{Line: line, Message: abortReason})
	}
	return Failed
}

// evaluate invokes fn, routing any panic through reportException. completed
// is false when fn panicked and reportException returned rather than
// escalating.
func evaluate(s *Suite, line int, expr string, fn func()) (outcome AssertionOutcome, completed bool) {
	defer func() {
		if r := recover(); r != nil {
			outcome = reportException(s, line, expr, panicMessage(r), Abort)
		}
	}()
	fn()
	return Passed, true
}

// capture invokes fn and reports whether it panicked, returning the recovered
// value if so.
func capture(fn func()) (recovered interface{}, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			recovered, panicked = r, true
		}
	}()
	fn()
	return nil, false
}

// panicMessage extracts a human-readable message from a panic value,
// degrading to "N/A" for values with no textual form.
func panicMessage(r interface{}) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return notAvailable
	}
}
