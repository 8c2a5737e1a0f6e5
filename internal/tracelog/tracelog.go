// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: tracelog.go — cold-path logging and debug asserts
//
// Purpose:
//   - Logs setup/error paths without introducing heap pressure.
//   - Backs bheap.Queue's precondition assertions (Top/Pop/RescheduleTop on
//     an empty queue) so debug builds fail loudly instead of corrupting state.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint; string concatenation only.
//   - Assert is a no-op under the bheap_nodebug build tag — see assert_release.go.
//
// ⚠️ Never invoke DropError/DropMessage in hot loops — cold paths only.
// ─────────────────────────────────────────────────────────────────────────────

package tracelog

import "log"

// DropError logs prefix and err, joined by plain string concatenation.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		log.Print(prefix + ": " + err.Error())
	} else {
		log.Print(prefix)
	}
}

// DropMessage logs a cold-path diagnostic: state transitions, grow events,
// bench phase boundaries.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	log.Print(prefix + ": " + message)
}
