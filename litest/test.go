package litest

import "time"

// TestFunc is the payload of a test: a closure that receives the owning suite
// as its shared context and makes assertions against it.
type TestFunc func(s *Suite)

// Test is a single registered test. Its identity (File, Name, Index) is fixed
// at registration; Aborted and Duration are updated once per run.
type Test struct {
	// File is a label for the file the test was defined in, or "N/A".
	File string

	// Name is the short description given at registration.
	Name string

	// Func is the test payload.
	Func TestFunc

	// Index is the 1-based position of the test within its suite.
	Index int

	// Aborted reports whether the last run of this test was aborted.
	Aborted bool

	// Duration is the elapsed wall time of the last run. It is only
	// meaningful if Aborted is false.
	Duration time.Duration
}
