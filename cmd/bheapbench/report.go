// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: report.go — JSON run report encode/decode
//
// Purpose:
//   - Serializes a completed RunReport to disk and reads one back for
//     comparison against a fresh run.
//
// Notes:
//   - Uses sugawarayuuta/sonnet instead of encoding/json, matching
//     syncharvester.go's sonnet.Unmarshal on its hot decode path.
// ─────────────────────────────────────────────────────────────────────────────

package main

import (
	"os"

	"github.com/sugawarayuuta/sonnet"
)

// RunReport is one benchmark run's measurements, persisted both as a
// sqlite row (store.go) and as a standalone JSON artifact.
type RunReport struct {
	BlockSize    int     `json:"block_size"`
	KeyCount     int     `json:"key_count"`
	PushNsOp     float64 `json:"push_ns_op"`
	PopNsOp      float64 `json:"pop_ns_op"`
	RescheduleOp float64 `json:"reschedule_ns_op"`
	AllocsPerOp  int64   `json:"allocs_per_op"`
	Seed         string  `json:"seed"`
	UnixTime     int64   `json:"unix_time"`
}

// writeReport encodes r as JSON to path.
func writeReport(path string, r RunReport) error {
	data, err := sonnet.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// readReport decodes a previously written report, for comparing a new
// run against a baseline.
func readReport(path string) (RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunReport{}, err
	}
	var r RunReport
	if err := sonnet.Unmarshal(data, &r); err != nil {
		return RunReport{}, err
	}
	return r, nil
}
