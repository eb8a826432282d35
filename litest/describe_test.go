package litest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringerValue struct{}

func (stringerValue) String() string { return "rendered" }

type panickyStringer struct{}

func (panickyStringer) String() string { panic("misbehaving String method") }

func TestDescribeScalars(t *testing.T) {
	assert.Equal(t, "42", Describe(42))
	assert.Equal(t, "hello", Describe("hello"))
	assert.Equal(t, "true", Describe(true))
	assert.Equal(t, "1.5", Describe(1.5))
}

func TestDescribePrefersStringer(t *testing.T) {
	assert.Equal(t, "rendered", Describe(stringerValue{}))
}

func TestDescribeUsesErrorMessage(t *testing.T) {
	assert.Equal(t, "it broke", Describe(errors.New("it broke")))
}

func TestDescribeSlices(t *testing.T) {
	assert.Equal(t, "{ 1, 2, 3 }", Describe([]int{1, 2, 3}))
	assert.Equal(t, "{ a, b }", Describe([]string{"a", "b"}))
	assert.Equal(t, "{  }", Describe([]int{}))
}

func TestDescribeNestedSlices(t *testing.T) {
	assert.Equal(t, "{ { 1 }, { 2, 3 } }", Describe([][]int{{1}, {2, 3}}))
}

func TestDescribeFallsBackToPlaceholder(t *testing.T) {
	type opaque struct{ n int }
	assert.Equal(t, "N/A", Describe(opaque{n: 1}))
	assert.Equal(t, "N/A", Describe(nil))
	assert.Equal(t, "N/A", Describe(map[string]int{"a": 1}))
	assert.Equal(t, "N/A", Describe(func() {}))
}

func TestDescribeNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "N/A", Describe(panickyStringer{}))
	})
}
