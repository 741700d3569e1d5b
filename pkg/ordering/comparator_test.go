package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscending(t *testing.T) {
	assert.Positive(t, Ascending(2, 1))
	assert.Negative(t, Ascending(1, 2))
	assert.Negative(t, Ascending(1, 1), "equal elements are never reported as out of order")
	assert.Positive(t, Ascending("b", "a"))
}

func TestDescending(t *testing.T) {
	assert.Positive(t, Descending(1, 2))
	assert.Negative(t, Descending(2, 1))
	assert.Negative(t, Descending(1.5, 1.5))
}

func TestLexicographic(t *testing.T) {
	assert.Negative(t, Lexicographic(10, 2))
	assert.Positive(t, Lexicographic(9, 10))
	assert.Zero(t, Lexicographic("x", "x"))
	assert.Negative(t, Lexicographic(-1, 0))
}

func TestLexicographic_MixedValues(t *testing.T) {
	input := []any{9, "10", 2.5, true, "apple"}

	result := SortDefault(input)

	assert.Equal(t, []any{"10", 2.5, 9, "apple", true}, result)
}

func TestLexicographic_Structs(t *testing.T) {
	type point struct{ X, Y int }

	result := SortDefault([]point{{X: 2, Y: 0}, {X: 10, Y: 1}, {X: 1, Y: 5}})

	require.Len(t, result, 3)
	assert.Equal(t, []point{{X: 1, Y: 5}, {X: 10, Y: 1}, {X: 2, Y: 0}}, result)
}

func TestReverse(t *testing.T) {
	result := SortFunc(unsorted(), Reverse(Ascending[int]))
	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, result)

	result = SortFunc([]int{1, 10, 2}, Reverse(Lexicographic[int]))
	assert.Equal(t, []int{2, 10, 1}, result)
}

func TestInfallible(t *testing.T) {
	c, err := Infallible(Ascending[int])(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}
