package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Of(1, 2, 3), Of(1, 2, 3)))
	assert.False(t, Equal(Of(1, 2, 3), Of(1, 2)))
	assert.False(t, Equal(Of(1, 2, 3), Of(1, 2, 4)))
	assert.True(t, NotEqual(Of(1), Of(2)))

	// capacity does not take part in equality
	a := Of(1, 2)
	_ = a.Reserve(10)
	assert.True(t, Equal(a, Of(1, 2)))

	assert.True(t, Equal(New[int](), nil))
}

func TestEqualFunc(t *testing.T) {
	a := Of("a", "B")
	b := Of("A", "b")
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, Equal(a, b))
}

func TestCompare(t *testing.T) {
	a := Of(1, 2)
	b := Of(1, 2, 3)
	c := Of(1, 3)

	assert.True(t, Less(a, b))
	assert.True(t, Less(b, c))
	assert.True(t, Less(a, c))
	assert.False(t, Less(b, a))

	assert.True(t, LessOrEqual(a, b))
	assert.True(t, LessOrEqual(a, Of(1, 2)))
	assert.True(t, Greater(c, b))
	assert.True(t, GreaterOrEqual(c, c))
	assert.False(t, GreaterOrEqual(a, b))

	assert.Equal(t, 0, Compare(a, Of(1, 2)))
	assert.Equal(t, -1, Compare(New[int](), a))
	assert.Equal(t, 1, Compare(c, b))
}

func TestCompare_Strings(t *testing.T) {
	assert.True(t, Less(Of("apple"), Of("banana")))
	assert.True(t, Less(Of("a", "b"), Of("a", "c")))
}

func TestCompareFunc(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }
	assert.Negative(t, CompareFunc(Of("zz"), Of("aaa"), byLen))
	assert.Zero(t, CompareFunc(Of("ab", "c"), Of("xy", "z"), byLen))
}
