package subsequence

import (
	"errors"
	"strconv"
	"strings"
)

// ErrBadSize indicates a negative size passed to Random.
var ErrBadSize = errors.New("subsequence: size must be non-negative")

// Sequence is an ordered list of signed integers.
type Sequence []int

// String renders the sequence as "[a, b, c]".
func (s Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Defaults for Random.
const (
	// DefaultSeed is used when no WithSeed option is supplied.
	DefaultSeed int64 = 1
	// DefaultMaxElement bounds generated values to [0, DefaultMaxElement].
	DefaultMaxElement = 100
)

// Option customizes Random.
type Option func(*randomConfig)

type randomConfig struct {
	seed       int64
	maxElement int
}

// WithSeed fixes the generator seed; equal seeds yield equal sequences.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.seed = seed
	}
}

// WithMaxElement sets the inclusive upper bound of generated values.
// Panics if max < 0.
func WithMaxElement(max int) Option {
	if max < 0 {
		panic("subsequence: WithMaxElement(max<0)")
	}
	return func(c *randomConfig) {
		c.maxElement = max
	}
}
