//go:build bheap_nodebug

package tracelog

// Assert is a no-op in release builds (-tags bheap_nodebug). Callers must
// not rely on it for control flow — by spec.md §7 a violated precondition
// is undefined behavior either way.
//
//go:nosplit
//go:inline
func Assert(cond bool, msg string) {}
