package parsec_test

import (
	"testing"

	"github.com/flowdev/parsec"
	"github.com/stretchr/testify/assert"
)

func TestExpectedSetDedupesPreservingOrder(t *testing.T) {
	t.Parallel()

	e := parsec.NewExpectedSet("a", "b", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, e.Items())
}

func TestExpectedSetUnionKeepsFirstOperandFirst(t *testing.T) {
	t.Parallel()

	a := parsec.NewExpectedSet("x", "y")
	b := parsec.NewExpectedSet("y", "z")

	assert.Equal(t, []string{"x", "y", "z"}, a.Union(b).Items())
}

func TestNoneExpectedIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, parsec.NoneExpected.Empty())
	assert.False(t, parsec.NewExpectedSet("a").Empty())
}
