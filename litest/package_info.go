// Package litest is a minimal unit-testing micro-framework.
//
// The general model is:
//
// 1. A Suite holds an ordered list of named tests. Each test is a closure
// that receives the suite as its context and makes assertions against it.
//
// 2. Assertions record pass/fail outcomes in per-test and suite-wide
// statistics, and report every outcome as an event to a Formatter.
//
// 3. A Formatter is a visitor bound to one output sink for the duration of
// one run. Concrete formatters (Markdown, HTML, console) implement only the
// event hooks they care about; NoopFormatter supplies no-op defaults for the
// rest.
//
// A failed assertion normally just records the failure and lets the test
// continue. The Abort policy stops the current test (the suite moves on to
// the next one); ModeThrow stops the entire run at the first failure and
// reports it as the error of Run or RunSome, which is intended for
// interactive debugging rather than batch reporting.
package litest
