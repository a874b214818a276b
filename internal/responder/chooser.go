package responder

import (
	"math/rand/v2"
	"sync"
)

// Chooser picks an index in [0, n). Implementations must be safe for
// concurrent use.
type Chooser interface {
	IntN(n int) int
}

// globalChooser draws from the runtime's shared source.
type globalChooser struct{}

func (globalChooser) IntN(n int) int { return rand.IntN(n) }

// NewSeededChooser returns a deterministic Chooser for the given seed.
func NewSeededChooser(seed uint64) Chooser {
	return &seededChooser{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type seededChooser struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (c *seededChooser) IntN(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.r.IntN(n)
}

// SequenceChooser replays a fixed sequence of indexes, cycling when it
// runs out. Each value is reduced modulo n. Useful in tests that assert
// exact replies.
type SequenceChooser struct {
	mu  sync.Mutex
	seq []int
	pos int
}

// NewSequenceChooser returns a SequenceChooser over seq. An empty
// sequence always yields 0.
func NewSequenceChooser(seq ...int) *SequenceChooser {
	return &SequenceChooser{seq: append([]int(nil), seq...)}
}

func (c *SequenceChooser) IntN(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.seq) == 0 || n <= 0 {
		return 0
	}
	v := c.seq[c.pos%len(c.seq)]
	c.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
