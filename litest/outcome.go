package litest

// AssertionOutcome is the result of a single assertion.
type AssertionOutcome int

const (
	// Passed means the assertion was evaluated and checked successfully.
	Passed AssertionOutcome = iota

	// Failed means the assertion was not completed successfully.
	Failed
)

func (o AssertionOutcome) String() string {
	if o == Passed {
		return "passed"
	}
	return "failed"
}

// FailurePolicy is the action taken after an assertion failure.
type FailurePolicy int

const (
	// Continue lets the test proceed past the failed assertion.
	Continue FailurePolicy = iota

	// Abort stops the current test; the suite continues with the next one.
	Abort
)

// Mode is the suite-wide behavior when an assertion fails. It is strictly
// stronger than any per-assertion FailurePolicy.
type Mode int

const (
	// ModeContinue records failures and keeps going, producing a complete
	// report over all requested tests.
	ModeContinue Mode = iota

	// ModeThrow escalates every failure into an AssertionFailureError that
	// ends the run immediately. Useful for debugging.
	ModeThrow
)

// Stats counts passed and failed assertions. One instance accumulates over a
// whole suite run; another exists per running test. Counters only ever
// increase.
type Stats struct {
	Passes int
	Fails  int
}
