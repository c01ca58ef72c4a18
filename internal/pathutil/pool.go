package pathutil

import "sync"

// Walks of generated documents rarely nest past 16 objects; builders that
// grew past 128 segments are dropped rather than kept alive in the pool.
const (
	initialSegments = 16
	maxPooledDepth  = 128
)

var builders = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, initialSegments)}
	},
}

// Get returns an empty PathBuilder for one traversal. Release it with Put.
func Get() *PathBuilder {
	b := builders.Get().(*PathBuilder)
	b.Reset()
	return b
}

// Put hands a builder back once its traversal is finished.
func Put(b *PathBuilder) {
	if b != nil && cap(b.segments) <= maxPooledDepth {
		builders.Put(b)
	}
}
