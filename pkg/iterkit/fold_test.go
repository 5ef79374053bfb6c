package iterkit_test

import (
	"testing"

	"go.llib.dev/chainkit/pkg/iterkit"

	"go.llib.dev/testcase/assert"
)

func TestAccumulate(t *testing.T) {
	add := func(a, b int) int { return a + b }

	assert.Equal(t, []int{1, 3, 6, 10}, iterkit.Collect(iterkit.Accumulate(iterkit.IntRange(1, 4), add)))
	assert.Empty(t, iterkit.Collect(iterkit.Accumulate(iterkit.Empty[int](), add)))
	assert.Equal(t, []int{2, 4, 8}, iterkit.Collect(iterkit.Head(iterkit.Accumulate(iterkit.Repeat(2, -1), func(a, b int) int {
		return a * b
	}), 3)))
}

func TestAccumulateFrom(t *testing.T) {
	concat := func(acc string, n int) string { return acc + string(rune('0'+n)) }

	assert.Equal(t, []string{">", ">1", ">12"}, iterkit.Collect(iterkit.AccumulateFrom(iterkit.IntRange(1, 2), ">", concat)))
	assert.Equal(t, []string{">"}, iterkit.Collect(iterkit.AccumulateFrom(iterkit.Empty[int](), ">", concat)))
}
