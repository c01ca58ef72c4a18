package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides incremental JSON Pointer construction.
// Segments are escaped on Push; the full string is only materialized when
// String() is called.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a mapping key segment.
func (p *PathBuilder) Push(segment string) {
	seg := EscapeToken(segment)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// PushIndex adds a sequence index segment.
func (p *PathBuilder) PushIndex(i int) {
	seg := strconv.Itoa(i)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last) + 1
}

// Depth returns the number of segments.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the pointer. The root is the empty string.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	for _, seg := range p.segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// Join builds a JSON Pointer from unescaped segments.
func Join(segments ...string) string {
	var p PathBuilder
	for _, s := range segments {
		p.Push(s)
	}
	return p.String()
}
