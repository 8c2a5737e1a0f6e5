// ════════════════════════════════════════════════════════════════════════════════════════════════
// Skip-Storage Vector
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache-Conscious Priority Queue
// Component: Growable Array With Block-Aligned Forbidden Slots
//
// Description:
//   A growable array whose logical indices skip offset 0 of every block, so that block roots
//   always land on offset 1 and the addressing package's arithmetic never has to special-case
//   the first slot. Growth doubles capacity, starting at 16*B slots.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package skipstore

import "github.com/example/bheap/addressing"

// Store is a growable array over T with one forbidden slot at offset 0
// of every B-sized block. Indices returned by PushBack, and accepted by
// At, always satisfy idx & (B-1) != 0.
//
// Store owns no finalizers or destructors — Go values don't need them —
// so grow never has to choose between moving and copying the way the
// block-size-templated C++ original did: a slice assignment can't fail
// partway through, so every relocation is unconditionally safe.
type Store[B addressing.Block, T any] struct {
	data []T
	end  uint64 // one past the highest occupied logical index; 0 when empty
}

// PushBack constructs x at the next non-forbidden logical index and
// returns that index. Grows storage if the backing array is full.
//
//go:nosplit
//go:inline
func (s *Store[B, T]) PushBack(x T) uint64 {
	var b B
	mask := b.Mask()
	if s.end&mask != 0 {
		idx := s.end
		s.data[idx] = x
		s.end++
		return idx
	}
	if s.end == uint64(len(s.data)) {
		return s.grow(x)
	}
	s.end++
	idx := s.end
	s.data[idx] = x
	s.end++
	return idx
}

// grow doubles capacity (or allocates the initial 16*B slots), places x
// at its final resting position in the new backing array, and relocates
// every previously occupied slot across, skipping forbidden ones.
func (s *Store[B, T]) grow(x T) uint64 {
	var b B
	size := b.Mask() + 1
	desired := size * 16
	if len(s.data) != 0 {
		desired = uint64(len(s.data)) * 2
	}
	next := make([]T, desired)
	idx := s.end + 1
	next[idx] = x
	for i := uint64(1); i < s.end; i++ {
		if i&b.Mask() != 0 {
			next[i] = s.data[i]
		}
	}
	s.data = next
	s.end = idx + 1
	return idx
}

// PopBack destroys the element at the highest occupied index. If the
// new end lands on a block root (offset 1), the forbidden slot at
// offset 0 is skipped too. Precondition: !Empty().
//
//go:nosplit
//go:inline
func (s *Store[B, T]) PopBack() {
	var b B
	s.end--
	var zero T
	s.data[s.end] = zero
	if s.end&b.Mask() == 1 {
		s.end--
	}
}

// Back returns a pointer to the element at the highest occupied index.
// Precondition: !Empty().
//
//go:nosplit
//go:inline
func (s *Store[B, T]) Back() *T {
	return &s.data[s.end-1]
}

// At returns a pointer to the element at logical index idx.
// Precondition: idx is occupied and idx & (B-1) != 0.
//
//go:nosplit
//go:inline
func (s *Store[B, T]) At(idx uint64) *T {
	return &s.data[idx]
}

// Empty reports whether the store holds no elements.
//
//go:nosplit
//go:inline
func (s *Store[B, T]) Empty() bool {
	return s.end == 0
}

// Len reports the raw end marker (spec's m_end): one past the highest
// occupied logical index, including the forbidden slots skipped along
// the way. Callers that want the element count subtract the forbidden
// slot count themselves — see bheap.Queue.Len.
//
//go:nosplit
//go:inline
func (s *Store[B, T]) Len() uint64 {
	return s.end
}
