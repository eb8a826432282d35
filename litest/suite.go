package litest

import (
	"io"
	"runtime"
	"time"
)

// Suite is an ordered, append-only collection of tests plus the statistics
// accumulated while running them.
//
// A suite runs one test at a time and is not safe for concurrent use; a run
// owns the suite (and its formatter) exclusively until it returns. Test
// payloads that spawn their own goroutines must serialize access to the suite
// themselves.
type Suite struct {
	// Name identifies the suite in rendered output.
	Name string

	// Mode is the failure-handling mode of the current run. It is set by Run
	// and RunSome.
	Mode Mode

	// EndTime is when the most recent run finished.
	EndTime time.Time

	// Duration is the elapsed wall time of the most recent run.
	Duration time.Duration

	tests      []*Test
	output     Formatter
	totalStats Stats
	stats      []Stats
	counter    int
}

// NewSuite creates an empty suite with the given name.
func NewSuite(name string) *Suite {
	return &Suite{Name: name, counter: -1}
}

// AddTest appends a test to the suite. The defining-file label is captured
// from the caller, falling back to "N/A" if unavailable.
func (s *Suite) AddTest(name string, fn TestFunc) {
	file := notAvailable
	if _, f, _, ok := runtime.Caller(1); ok {
		file = f
	}
	s.AddTestInFile(name, fn, file)
}

// AddTestInFile appends a test with an explicit defining-file label.
func (s *Suite) AddTestInFile(name string, fn TestFunc, file string) {
	s.tests = append(s.tests, &Test{
		File:  file,
		Name:  name,
		Func:  fn,
		Index: len(s.tests) + 1,
	})
}

// TestCount returns the number of registered tests.
func (s *Suite) TestCount() int {
	return len(s.tests)
}

// Run runs every registered test in registration order, rendering results
// through a formatter constructed from newFormatter and bound to out.
//
// Under ModeContinue the returned error is always nil: the run produces a
// complete report no matter what the tests do. Under ModeThrow the first
// assertion failure anywhere ends the run and is returned as an
// *AssertionFailureError.
func (s *Suite) Run(out io.Writer, newFormatter FormatterFactory, mode Mode) error {
	indices := make([]int, len(s.tests))
	for i := range indices {
		indices[i] = i
	}
	return s.RunSome(out, newFormatter, indices, mode)
}

// RunSome runs the tests at the given zero-based indices, in the given order.
// Indices outside [0, TestCount()) are silently skipped: they contribute no
// statistics and emit no lifecycle events.
func (s *Suite) RunSome(out io.Writer, newFormatter FormatterFactory, indices []int, mode Mode) (err error) {
	s.Mode = mode
	s.output = newFormatter(out)
	s.totalStats = Stats{}

	// The formatter is owned by this run and released on every exit path,
	// including a ModeThrow escalation propagating from a test.
	defer func() {
		s.output = nil
		if r := recover(); r != nil {
			if e, ok := r.(*AssertionFailureError); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	started := time.Now()
	s.output.TestSuiteStart(s)

	for _, index := range indices {
		if index < 0 || index >= len(s.tests) {
			continue
		}
		test := s.tests[index]
		s.StartTest()
		s.output.TestHeader(test)
		s.runTest(test)
		s.output.TestFooter(test, s.CurrentTestStats())
	}

	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(started)
	s.output.TestSuiteEnd(s)
	return nil
}

// runTest invokes one test payload inside the per-test recovery boundary.
// Three unwind causes are distinguished: a deliberate abort, an error-shaped
// panic, and anything else. None of them stops the suite run; a ModeThrow
// escalation is re-raised for the run boundary to handle.
func (s *Suite) runTest(test *Test) {
	test.Aborted = false
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *AssertionFailureError:
			panic(e)
		case *TestAbortError:
			test.Aborted = true
			s.output.AbortedTest(e.Line, e.Message)
		case error:
			test.Aborted = true
			s.output.AbortedTest(0, "Uncaught exception: "+e.Error())
		default:
			test.Aborted = true
			s.output.AbortedTest(0, "Uncaught exception outside of assertion.")
		}
	}()

	started := time.Now()
	test.Func(s)
	test.Duration = time.Since(started)
}

// StartTest advances the internal test counter and opens a fresh statistics
// slot. The slot stays current until the next StartTest call or the end of
// the run. Run and RunSome call this for every test they start; it is
// exported for callers driving the state machine directly.
func (s *Suite) StartTest() {
	s.counter++
	s.stats = append(s.stats, Stats{})
}

// Passed records a passed assertion in the current-test and total statistics.
func (s *Suite) Passed() AssertionOutcome {
	s.totalStats.Passes++
	s.stats[s.counter].Passes++
	return Passed
}

// Failed records a failed assertion in the current-test and total statistics.
func (s *Suite) Failed() AssertionOutcome {
	s.totalStats.Fails++
	s.stats[s.counter].Fails++
	return Failed
}

// CurrentTestStats returns the statistics of the test currently running. Only
// valid between a StartTest call and the next one.
func (s *Suite) CurrentTestStats() Stats {
	return s.stats[s.counter]
}

// TotalTestStats returns the statistics accumulated over the current or most
// recent run.
func (s *Suite) TotalTestStats() Stats {
	return s.totalStats
}

// AllTestStats returns the per-test statistics slots in the order the tests
// were started. The list grows monotonically across repeated runs of the same
// suite; it is never reset.
func (s *Suite) AllTestStats() []Stats {
	return s.stats
}
