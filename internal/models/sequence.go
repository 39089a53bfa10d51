package models

import "sync/atomic"

// Sequence hands out monotonically increasing identifiers starting at 0.
type Sequence struct {
	next atomic.Int64
}

// NewSequence creates a sequence whose first identifier is 0
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the current identifier and advances the sequence
func (s *Sequence) Next() int64 {
	return s.next.Add(1) - 1
}

// Peek returns the identifier the next call to Next will hand out
func (s *Sequence) Peek() int64 {
	return s.next.Load()
}
