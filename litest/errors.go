package litest

// AssertionFailureError is the ModeThrow escalation of an assertion failure.
// It is raised with panic inside the assertion engine, recovered at the run
// boundary, and returned as the error of Run or RunSome. It is fatal to that
// run: no subsequent test begins.
type AssertionFailureError struct {
	Message string
}

func (e *AssertionFailureError) Error() string {
	return e.Message
}

// TestAbortError terminates the current test only. It is raised with panic by
// an Abort-policy assertion failure and recovered at the suite's per-test
// boundary; the suite then moves on to the next test.
type TestAbortError struct {
	Line    int
	Message string
}

func (e *TestAbortError) Error() string {
	return e.Message
}
