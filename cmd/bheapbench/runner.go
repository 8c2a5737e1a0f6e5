// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: runner.go — drives a workload through a bheap.Queue and times it
//
// Purpose:
//   - Replays a workload's Push/Pop/RescheduleTop sequence against a
//     concretely-instantiated Queue, separately timing each op kind.
// ─────────────────────────────────────────────────────────────────────────────

package main

import (
	"time"

	"github.com/example/bheap/addressing"
	"github.com/example/bheap/bheap"
)

func lessUint64(a, b uint64) bool { return a < b }

// runBenchmark instantiates Queue[B, uint64, bheap.NoValue] and replays w,
// returning per-op-kind nanoseconds/op.
func runBenchmark[B addressing.Block](w workload) (pushNsOp, popNsOp, rescheduleNsOp float64) {
	q := bheap.New[B, uint64, bheap.NoValue](lessUint64)

	var pushTotal, popTotal, rescheduleTotal time.Duration
	var pushN, popN, rescheduleN int64

	for i, op := range w.ops {
		key := w.keys[i]
		switch op {
		case opPush:
			start := time.Now()
			q.Push(key, bheap.NoValue{})
			pushTotal += time.Since(start)
			pushN++
		case opPop:
			start := time.Now()
			q.Pop()
			popTotal += time.Since(start)
			popN++
		case opReschedule:
			start := time.Now()
			q.RescheduleTop(key)
			rescheduleTotal += time.Since(start)
			rescheduleN++
		}
	}

	if pushN > 0 {
		pushNsOp = float64(pushTotal.Nanoseconds()) / float64(pushN)
	}
	if popN > 0 {
		popNsOp = float64(popTotal.Nanoseconds()) / float64(popN)
	}
	if rescheduleN > 0 {
		rescheduleNsOp = float64(rescheduleTotal.Nanoseconds()) / float64(rescheduleN)
	}
	return
}

// dispatchBlockSize runs the benchmark with the Block type matching
// cfg.BlockSize, since B is a compile-time type parameter and the CLI
// only knows its value at runtime.
func dispatchBlockSize(blockSize int, w workload) (pushNsOp, popNsOp, rescheduleNsOp float64, ok bool) {
	switch blockSize {
	case 8:
		p, o, r := runBenchmark[addressing.Block8](w)
		return p, o, r, true
	case 16:
		p, o, r := runBenchmark[addressing.Block16](w)
		return p, o, r, true
	case 32:
		p, o, r := runBenchmark[addressing.Block32](w)
		return p, o, r, true
	case 64:
		p, o, r := runBenchmark[addressing.Block64](w)
		return p, o, r, true
	default:
		return 0, 0, 0, false
	}
}
