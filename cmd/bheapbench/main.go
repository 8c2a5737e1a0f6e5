// ════════════════════════════════════════════════════════════════════════════════════════════════
// B-Heap Benchmark Harness - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Cache-Conscious Priority Queue
// Component: Benchmark Orchestration & Reporting
//
// Description:
//   Phased orchestration: build a deterministic workload, pin to a CPU core, drive it through
//   a bheap.Queue of the requested block size, then persist and report the measurements.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/example/bheap/internal/tracelog"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	// PHASE 0: workload generation
	tracelog.DropMessage("INIT", "building workload")
	w := buildWorkload(cfg.KeyCount, cfg.RescheduleFraction, cfg.Seed)
	tracelog.DropMessage("WORKLOAD", fmt.Sprintf("%d ops generated", len(w.ops)))

	// PHASE 1: pin to a core for stable timing
	pinToCPU(cfg.CPU)

	// PHASE 2: run
	tracelog.DropMessage("RUN", fmt.Sprintf("block=%d keys=%d", cfg.BlockSize, cfg.KeyCount))
	pushNsOp, popNsOp, rescheduleNsOp, ok := dispatchBlockSize(cfg.BlockSize, w)
	if !ok {
		tracelog.DropMessage("ERROR", "block size must be one of 8, 16, 32, 64")
		os.Exit(1)
	}

	report := RunReport{
		BlockSize:    cfg.BlockSize,
		KeyCount:     cfg.KeyCount,
		PushNsOp:     pushNsOp,
		PopNsOp:      popNsOp,
		RescheduleOp: rescheduleNsOp,
		Seed:         cfg.Seed,
		UnixTime:     time.Now().Unix(),
	}

	// PHASE 3: persist and report
	if !cfg.SkipDB {
		db := openDatabase(cfg.DBPath)
		if err := insertRun(db, report); err != nil {
			tracelog.DropError("DB_INSERT", err)
		}
		db.Close()
	}

	if err := writeReport(cfg.ReportPath, report); err != nil {
		tracelog.DropError("REPORT_WRITE", err)
	}

	tracelog.DropMessage("DONE", fmt.Sprintf("push=%.1fns/op pop=%.1fns/op reschedule=%.1fns/op",
		pushNsOp, popNsOp, rescheduleNsOp))
}
