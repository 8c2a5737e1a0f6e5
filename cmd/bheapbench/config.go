// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: config.go — CLI flags and benchmark tunables
//
// Purpose:
//   - Parses the bheapbench flag set into a Config.
//   - Groups numeric tunables the way the teacher's constants.go groups
//     ISR tunables: one block per concern, each value commented with why.
// ─────────────────────────────────────────────────────────────────────────────

package main

import "flag"

const (
	// DefaultKeyCount is large enough to push every block size through
	// several grow() doublings without the run taking more than a few
	// seconds on a laptop-class core.
	DefaultKeyCount = 1 << 20

	// DefaultRescheduleFraction is the share of ops that are
	// RescheduleTop rather than Push/Pop pairs, chosen to resemble a
	// timer wheel workload where most activity re-keys the soonest
	// deadline rather than inserting brand-new ones.
	DefaultRescheduleFraction = 0.3

	// DefaultDBPath matches the teacher's main.go convention of a
	// relative sqlite file living next to the binary.
	DefaultDBPath = "bheap_bench.db"

	// DefaultReportPath is where the JSON run report lands when
	// -report is not overridden.
	DefaultReportPath = "bheap_bench_report.json"
)

// Config holds one benchmark run's parameters.
type Config struct {
	BlockSize          int
	KeyCount           int
	RescheduleFraction float64
	Seed               string
	DBPath             string
	ReportPath         string
	CPU                int
	SkipDB             bool
}

// parseConfig builds a Config from the command line. It does not validate
// the values; an unsupported -block is rejected later by dispatchBlockSize.
func parseConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("bheapbench", flag.ContinueOnError)
	cfg := Config{}

	fs.IntVar(&cfg.BlockSize, "block", 16, "block size B: one of 8, 16, 32, 64")
	fs.IntVar(&cfg.KeyCount, "keys", DefaultKeyCount, "number of keys to push through the workload")
	fs.Float64Var(&cfg.RescheduleFraction, "reschedule-frac", DefaultRescheduleFraction, "fraction of ops that are RescheduleTop")
	fs.StringVar(&cfg.Seed, "seed", "bheapbench", "seed string expanded via sha3 into the workload's PRNG seed")
	fs.StringVar(&cfg.DBPath, "db", DefaultDBPath, "sqlite database file for persisting run results")
	fs.StringVar(&cfg.ReportPath, "report", DefaultReportPath, "path to write the JSON run report")
	fs.IntVar(&cfg.CPU, "cpu", -1, "pin the benchmark goroutine's OS thread to this CPU core; -1 disables pinning")
	fs.BoolVar(&cfg.SkipDB, "no-db", false, "skip sqlite persistence entirely")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
