package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, evens)
}

func TestFilterEmpty(t *testing.T) {
	result := Filter([]int{}, func(n int) bool { return true })
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	input := []string{"a", "bb", "ccc"}
	_ = Filter(input, func(s string) bool { return len(s) > 1 })
	assert.Equal(t, []string{"a", "bb", "ccc"}, input)
}

func TestMap(t *testing.T) {
	lengths := Map([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 2, 3}, lengths)
}

func TestMapEmpty(t *testing.T) {
	result := Map([]int{}, func(n int) int { return n * 2 })
	assert.Empty(t, result)
}
