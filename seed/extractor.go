// Package seed turns a room identity string into procedural parameters.
// Every parameter consumed by shapes, motions and palettes flows through
// an Extractor cursor and the range mapping in this package.
package seed

// Extractor yields fixed-width slices of a source string, wrapping to the start
// when a slice would run past the end. Reads behave as indexing into the
// infinite repetition of the source.
type Extractor struct {
	src string
	pos int
}

// NewExtractor creates a cursor at offset 0
func NewExtractor(src string) *Extractor {
	return &Extractor{src: src}
}

// Next returns the next n characters and advances the cursor by n mod len(src)
func (e *Extractor) Next(n int) string {
	total := len(e.src)
	if n <= 0 || total == 0 {
		return ""
	}

	if e.pos+n <= total {
		out := e.src[e.pos : e.pos+n]
		e.pos = (e.pos + n) % total
		return out
	}

	// Wrapped read, also covers n > total by walking whole repetitions
	buf := make([]byte, 0, n)
	for len(buf) < n {
		take := min(n-len(buf), total-e.pos)
		buf = append(buf, e.src[e.pos:e.pos+take]...)
		e.pos = (e.pos + take) % total
	}
	return string(buf)
}

// Skip advances the cursor by n characters without returning them
func (e *Extractor) Skip(n int) {
	if n <= 0 || len(e.src) == 0 {
		return
	}
	e.pos = (e.pos + n) % len(e.src)
}

// Offset returns the current cursor position
func (e *Extractor) Offset() int {
	return e.pos
}

// Reset rewinds the cursor to 0
func (e *Extractor) Reset() {
	e.pos = 0
}

// Source returns the string being read
func (e *Extractor) Source() string {
	return e.src
}
