// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: affinity_linux.go — CPU affinity pinning for benchmark timing
//
// Purpose:
//   - Pins the calling goroutine's OS thread to a single CPU core before a
//     timed run, so scheduler migration doesn't add cache-cold noise to
//     ns/op measurements.
//
// Notes:
//   - Ported from ring24/setaffinity_linux.go's raw sched_setaffinity
//     syscall to golang.org/x/sys/unix's portable wrapper — that dependency
//     was already present in the teacher's go.mod, but only transitively.
//   - Non-Linux builds get the no-op in affinity_stub.go, mirroring the
//     teacher's setaffinity_linux.go / setaffinity_stub.go split.
// ─────────────────────────────────────────────────────────────────────────────

//go:build linux

package main

import (
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/example/bheap/internal/tracelog"
)

// pinToCPU locks the calling goroutine to its current OS thread and
// restricts that thread to run only on cpu. A negative cpu disables
// pinning. Failures are logged and otherwise ignored — affinity is a
// measurement aid, not a correctness requirement.
func pinToCPU(cpu int) {
	if cpu < 0 {
		return
	}
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		tracelog.DropError("AFFINITY", err)
	}
}
