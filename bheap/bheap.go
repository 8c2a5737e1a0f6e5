// ════════════════════════════════════════════════════════════════════════════════════════════════
// B-Heap Priority Queue
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache-Conscious Priority Queue
// Component: Heap Invariant, Push/Pop/Top/RescheduleTop
//
// Description:
//   A binary min-heap laid out over addressing's block-grouped indices and skipstore's
//   forbidden-slot-skipping array, so that percolation crosses O(log_B N) block boundaries
//   instead of O(log2 N) cache lines. Keys and an optional parallel payload move in lock-step;
//   all structural decisions are driven by key comparisons alone.
//
// Features:
//   - Push / Top / Pop with the classic "sift hole to a leaf, then sift the last element up" pop
//   - RescheduleTop: replace the minimum's key in one O(log N) pass, preserving its payload
//   - Payload-absent variant (NoValue) compiles away to a zero-sized parallel store
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package bheap

import (
	"github.com/example/bheap/addressing"
	"github.com/example/bheap/internal/tracelog"
	"github.com/example/bheap/skipstore"
)

// NoValue is the payload-absent marker. Queue[B, K, NoValue] carries no
// parallel payload store worth the name: NoValue is zero-sized, so its
// skipstore.Store allocates nothing and every payload move is a no-op
// assignment of a zero-sized value — the Go realization of spec.md §9's
// "payload strategy" with a statically-no-op "none" variant.
type NoValue = struct{}

// Less is a strict weak ordering: Less(a, b) means "a sorts strictly
// before b". The queue extracts the minimum under this relation.
type Less[K any] func(a, b K) bool

// Queue is a B-heap priority queue over key type K with parallel
// payload type V (use NoValue for no payload). B selects the block
// size via addressing.Block8/16/32/64 or a custom zero-sized Block.
//
// A Queue has no internal concurrency and is not safe for concurrent
// use. Push/Pop/RescheduleTop may relocate elements (including via
// growth); Top returns copies of the key and payload, not references
// into the queue, so those copies stay valid across such calls.
type Queue[B addressing.Block, K any, V any] struct {
	less Less[K]
	keys skipstore.Store[B, K]
	vals skipstore.Store[B, V]
}

// New creates an empty queue ordered by less.
func New[B addressing.Block, K any, V any](less Less[K]) *Queue[B, K, V] {
	return &Queue[B, K, V]{less: less}
}

// Len reports the number of elements in the queue: spec.md §3's
// m_end - ceil(m_end / B), derived from the raw skip-store end marker
// rather than re-counted.
//
//go:nosplit
//go:inline
func (q *Queue[B, K, V]) Len() int {
	end := q.keys.Len()
	size := addressing.Size[B]()
	return int(end - (end+size-1)/size)
}

// Empty reports whether the queue holds no elements.
//
//go:nosplit
//go:inline
func (q *Queue[B, K, V]) Empty() bool {
	return q.keys.Empty()
}

// Push inserts (key, value) and restores the heap invariant.
func (q *Queue[B, K, V]) Push(key K, value V) {
	q.vals.PushBack(value)
	q.pushKey(key)
}

// pushKey implements §4.3's push sift-up: the new key starts at the
// back, and is walked toward the root one parent at a time for as long
// as it sorts before its parent.
func (q *Queue[B, K, V]) pushKey(key K) {
	hole := q.keys.PushBack(key)
	tmpKey := *q.keys.Back()
	tmpVal := *q.vals.Back()

	for hole != 1 {
		parent := addressing.Parent[B](hole)
		p := q.keys.At(parent)
		if !q.less(tmpKey, *p) {
			break
		}
		*q.keys.At(hole) = *p
		*q.vals.At(hole) = *q.vals.At(parent)
		hole = parent
	}
	*q.keys.At(hole) = tmpKey
	*q.vals.At(hole) = tmpVal
}

// Top returns the minimum key and its payload without removing them.
// Precondition: !Empty().
func (q *Queue[B, K, V]) Top() (K, V) {
	tracelog.Assert(!q.Empty(), "Top called on empty queue")
	return *q.keys.At(1), *q.vals.At(1)
}

// Pop removes the minimum. Callers that need the removed key/value
// must read Top first — Pop itself returns nothing, mirroring the
// two-step top()/pop() protocol the block-heap design is built around.
// Precondition: !Empty().
func (q *Queue[B, K, V]) Pop() {
	tracelog.Assert(!q.Empty(), "Pop called on empty queue")
	lastIdx := q.keys.Len() - 1
	idx := uint64(1)

	for {
		lc := addressing.Child[B](idx)
		if lc > lastIdx {
			break
		}
		offset := addressing.SiblingOffset[B](idx)
		rc := lc + offset
		next := lc
		if rc < lastIdx && !q.less(*q.keys.At(lc), *q.keys.At(rc)) {
			next = rc
		}
		*q.keys.At(idx) = *q.keys.At(next)
		*q.vals.At(idx) = *q.vals.At(next)
		idx = next
	}

	if idx != lastIdx {
		lastKey := *q.keys.Back()
		lastVal := *q.vals.Back()
		for idx != 1 {
			parent := addressing.Parent[B](idx)
			if !q.less(lastKey, *q.keys.At(parent)) {
				break
			}
			*q.keys.At(idx) = *q.keys.At(parent)
			*q.vals.At(idx) = *q.vals.At(parent)
			idx = parent
		}
		*q.keys.At(idx) = lastKey
		*q.vals.At(idx) = lastVal
	}
	q.keys.PopBack()
	q.vals.PopBack()
}

// RescheduleTop replaces the current minimum's key with newKey and
// restores the heap invariant in one O(log N) pass, without touching
// the payload's identity: whichever slot newKey settles into ends up
// holding the payload that used to be at the root. It returns the key
// that was previously at the top.
//
// Semantically equivalent to Pop() followed by Push(newKey, <old top's
// payload>), per spec.md §4.3 property P4, but restructures the tree in
// a single sift-down instead of a sift-to-leaf-then-sift-up.
// Precondition: !Empty().
func (q *Queue[B, K, V]) RescheduleTop(newKey K) K {
	tracelog.Assert(!q.Empty(), "RescheduleTop called on empty queue")
	oldKey := *q.keys.At(1)
	lastIdx := q.keys.Len() - 1

	if lastIdx == 1 {
		*q.keys.At(1) = newKey
		return oldKey
	}

	val := *q.vals.At(1)
	idx := uint64(1)
	for {
		lc := addressing.Child[B](idx)
		if lc > lastIdx {
			break
		}
		offset := addressing.SiblingOffset[B](idx)
		rc := lc + offset
		next := lc
		// Unlike Pop, nothing is being extracted here, so the element at
		// lastIdx is still a fully valid sibling: the comparison is
		// inclusive (rc <= lastIdx), not the strict rc < lastIdx that
		// Pop uses to exclude the element it is mid-extraction of.
		if rc <= lastIdx && !q.less(*q.keys.At(lc), *q.keys.At(rc)) {
			next = rc
		}
		if !q.less(*q.keys.At(next), newKey) {
			break
		}
		*q.keys.At(idx) = *q.keys.At(next)
		*q.vals.At(idx) = *q.vals.At(next)
		idx = next
	}
	*q.keys.At(idx) = newKey
	*q.vals.At(idx) = val
	return oldKey
}
