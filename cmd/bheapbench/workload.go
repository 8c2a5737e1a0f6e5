// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: workload.go — deterministic key stream for benchmark runs
//
// Purpose:
//   - Expands a -seed string into a reproducible stream of keys and a
//     reproducible interleaving of Push/Pop/RescheduleTop ops, so two runs
//     with the same flags are directly comparable.
//
// Notes:
//   - Uses sha3 rather than math/rand's process-global state, matching
//     router/update_test.go's sha3.Sum256 seeding in the teacher's pack.
// ─────────────────────────────────────────────────────────────────────────────

package main

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/sha3"
)

// opKind enumerates the operations a workload replays against the queue.
type opKind uint8

const (
	opPush opKind = iota
	opPop
	opReschedule
)

// workload is a pre-generated, deterministic sequence of ops and keys.
type workload struct {
	ops  []opKind
	keys []uint64
}

// seedPRNG expands seed into a 64-bit rand.Source via sha3-256, instead of
// math/rand's time-seeded default, so -seed fully determines the run.
func seedPRNG(seed string) *rand.Rand {
	digest := sha3.Sum256([]byte(seed))
	s := binary.LittleEndian.Uint64(digest[:8])
	if s == 0 {
		s = 1
	}
	return rand.New(rand.NewSource(int64(s)))
}

// buildWorkload generates keyCount pushes interleaved with pops and
// reschedules at rescheduleFrac, keeping the queue non-empty whenever a
// pop or reschedule is due.
func buildWorkload(keyCount int, rescheduleFrac float64, seed string) workload {
	rng := seedPRNG(seed)
	w := workload{
		ops:  make([]opKind, 0, keyCount*2),
		keys: make([]uint64, 0, keyCount*2),
	}

	live := 0
	pushed := 0
	for pushed < keyCount || live > 0 {
		switch {
		case pushed >= keyCount:
			if live > 0 && rng.Float64() < rescheduleFrac {
				w.ops = append(w.ops, opReschedule)
				w.keys = append(w.keys, rng.Uint64())
			} else {
				w.ops = append(w.ops, opPop)
				w.keys = append(w.keys, 0)
				live--
			}
		case live == 0:
			w.ops = append(w.ops, opPush)
			w.keys = append(w.keys, rng.Uint64())
			pushed++
			live++
		default:
			r := rng.Float64()
			switch {
			case r < rescheduleFrac:
				w.ops = append(w.ops, opReschedule)
				w.keys = append(w.keys, rng.Uint64())
			case r < rescheduleFrac+0.5:
				w.ops = append(w.ops, opPush)
				w.keys = append(w.keys, rng.Uint64())
				pushed++
				live++
			default:
				w.ops = append(w.ops, opPop)
				w.keys = append(w.keys, 0)
				live--
			}
		}
	}
	return w
}
