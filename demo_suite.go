package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/litest/litest-go/litest"
)

// rangeError is the panic value of mustPositive, used to demonstrate
// panic-type assertions.
type rangeError struct {
	n int
}

func (e *rangeError) Error() string {
	return fmt.Sprintf("value out of range: %d", e.n)
}

func mustPositive(n int) int {
	if n <= 0 {
		panic(&rangeError{n: n})
	}
	return n
}

// newDemoSuite builds a suite that exercises every assertion kind, including
// some that fail or abort on purpose so the report shows all event shapes.
func newDemoSuite() *litest.Suite {
	s := litest.NewSuite("litest demonstration")

	s.AddTest("tests that pass", func(s *litest.Suite) {
		var xs []int
		litest.Expect(s, "len(xs) == 0", func() bool { return len(xs) == 0 })

		litest.Message(s, "Appending two elements")
		xs = append(xs, 42, 56)

		litest.ExpectEqual(s, "len(xs)", 2, func() int { return len(xs) })
		litest.ExpectPanic(s, `panic("bad code")`, func() { panic("bad code") })
		litest.ExpectPanicAs[*rangeError](s, "mustPositive(-1)", func() { mustPositive(-1) })
		litest.PrintExpr(s, "xs", xs)
	})

	s.AddTest("tests that fail", func(s *litest.Suite) {
		litest.Expect(s, "1 > 2", func() bool { return 1 > 2 })
		litest.ExpectEqual(s, "1+1", 3, func() int { return 1 + 1 })
		litest.ExpectPanic(s, "mustPositive(1)", func() { mustPositive(1) })
		litest.Fail(s, "Some code went awry!")
	})

	s.AddTest("test that is aborted early", func(s *litest.Suite) {
		litest.Message(s, "Test should be aborted on the next line")
		litest.Require(s, "42 > 1e100", func() bool { return 42 > 1e100 })

		// Never reached.
		litest.Expect(s, "true", func() bool { return true })
	})

	s.AddTest("test with panic outside of assertions", func(s *litest.Suite) {
		litest.Expect(s, "maxInt > 5", func() bool { return int(^uint(0)>>1) > 5 })
		panic(fmt.Errorf("something unrelated went wrong"))
	})

	s.AddTest("strings", func(s *litest.Suite) {
		litest.RequireEqual(s, `strings.Join({"a","b"}, "-")`, "a-b", func() string {
			return strings.Join([]string{"a", "b"}, "-")
		})
		litest.Expect(s, `strings.HasPrefix("litest", "li")`, func() bool {
			return strings.HasPrefix("litest", "li")
		})
	})

	s.AddTest("http status endpoint", func(s *litest.Suite) {
		handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(204))
		server := httptest.NewServer(handler)
		defer server.Close()

		resp, err := http.Get(server.URL)
		litest.Require(s, "http.Get(server.URL)", func() bool { return err == nil })
		defer resp.Body.Close()

		litest.ExpectEqual(s, "resp.StatusCode", 204, func() int { return resp.StatusCode })
		litest.ExpectEqual(s, "requests received", 1, func() int { return len(requests) })
	})

	return s
}
