package parsec_test

import (
	"testing"

	"github.com/flowdev/parsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewConsumeTracksLineAndColumn(t *testing.T) {
	t.Parallel()

	v := parsec.NewView("ab\ncd\nef")

	got := v.Consume(5) // "ab\ncd"
	require.Equal(t, "ab\ncd", got)
	assert.Equal(t, 5, v.Idx())
	assert.Equal(t, 1, v.Line())
	assert.Equal(t, 2, v.Column())
}

func TestViewSaveLoadRoundTrips(t *testing.T) {
	t.Parallel()

	v := parsec.NewView("hello\nworld")
	v.Consume(7)
	mark := v.Save()

	v.Consume(2)
	assert.NotEqual(t, mark, v.Save())

	v.Load(mark)
	assert.Equal(t, 7, v.Idx())
	assert.Equal(t, 1, v.Line())
	assert.Equal(t, 1, v.Column())
}

func TestViewPeekDoesNotAdvance(t *testing.T) {
	t.Parallel()

	v := parsec.NewView("abcdef")
	assert.Equal(t, "abc", v.Peek(3))
	assert.Equal(t, 0, v.Idx())
	assert.Equal(t, "abcdef", v.Peek(100))
}

func TestViewAtEnd(t *testing.T) {
	t.Parallel()

	v := parsec.NewView("ab")
	assert.False(t, v.AtEnd())
	v.Consume(2)
	assert.True(t, v.AtEnd())
}
