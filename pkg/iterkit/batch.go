package iterkit

import (
	"iter"

	"go.llib.dev/chainkit/port/option"
)

// Batch groups the elements of the sequence into slices of at most BatchSize elements.
// The last batch holds the remainder, and it is never empty.
func Batch[T any](i iter.Seq[T], opts ...BatchOption) iter.Seq[[]T] {
	c := option.ToConfig[BatchConfig](opts)
	size := c.getSize()
	return func(yield func([]T) bool) {
		var vs = make([]T, 0, size)
		var flush = func() bool {
			var cont bool = true
			if 0 < len(vs) {
				cont = yield(vs)
				vs = make([]T, 0, size)
			}
			return cont
		}
		for v := range i {
			vs = append(vs, v)
			if size <= len(vs) {
				if !flush() {
					return
				}
			}
		}
		flush()
	}
}

type BatchConfig struct {
	Size int
}

func (c BatchConfig) Configure(t *BatchConfig) {
	if 0 < c.Size {
		t.Size = c.Size
	}
}

type BatchOption option.Option[BatchConfig]

func BatchSize(n int) BatchOption {
	return option.Func[BatchConfig](func(c *BatchConfig) {
		c.Size = n
		c.Size = c.getSize()
	})
}

func (c BatchConfig) getSize() int {
	const defaultBatchSize = 64
	if c.Size <= 0 {
		return defaultBatchSize
	}
	return c.Size
}
