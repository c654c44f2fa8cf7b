// Package contfrac: a small stream decorator remembering recent coefficients.

package contfrac

import "math/big"

// CachedStream wraps a Stream and remembers the most recent values pulled
// through it, newest first. It is handy when debugging an engine traversal
// or when a consumer needs to inspect the last few quotients it advanced
// past without restarting the generator.
type CachedStream struct {
	in   Stream
	size int
	last []*big.Int
}

// NewCachedStream decorates in with a window of the given size.
// A size <= 0 falls back to 10, matching the default history depth.
func NewCachedStream(in Stream, size int) *CachedStream {
	if size <= 0 {
		size = 10
	}

	return &CachedStream{in: in, size: size, last: make([]*big.Int, 0, size)}
}

// Next forwards to the wrapped stream, recording the value on success.
func (s *CachedStream) Next() (*big.Int, bool) {
	v, ok := s.in.Next()
	if !ok {
		return nil, false
	}
	s.last = append([]*big.Int{new(big.Int).Set(v)}, s.last...)
	if len(s.last) > s.size {
		s.last = s.last[:s.size]
	}

	return v, true
}

// Last returns the remembered values, newest first. The slice is a copy;
// mutating it does not disturb the decorator.
func (s *CachedStream) Last() []*big.Int {
	return copyTerms(s.last)
}
