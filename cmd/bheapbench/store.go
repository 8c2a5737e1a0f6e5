// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: store.go — sqlite persistence for benchmark runs
//
// Purpose:
//   - Persists each RunReport as a row so successive runs (across block
//     sizes, key counts, machine changes) can be compared with plain SQL
//     instead of diffing JSON files by hand.
//
// Notes:
//   - Mirrors main.go's openDatabase/mustDB bootstrap: sql.Open then panic
//     on a malformed DSN, blank-imported driver registration.
// ─────────────────────────────────────────────────────────────────────────────

package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// openDatabase opens (creating if absent) the sqlite file at path and
// ensures the runs table exists.
func openDatabase(path string) *sql.DB {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		panic("bheapbench: failed to open database " + path + ": " + err.Error())
	}
	if _, err := db.Exec(createRunsTable); err != nil {
		panic("bheapbench: failed to create runs table: " + err.Error())
	}
	return db
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	block_size        INTEGER NOT NULL,
	key_count         INTEGER NOT NULL,
	push_ns_op        REAL NOT NULL,
	pop_ns_op         REAL NOT NULL,
	reschedule_ns_op  REAL NOT NULL,
	allocs_per_op     INTEGER NOT NULL,
	seed              TEXT NOT NULL,
	unix_time         INTEGER NOT NULL
)`

// insertRun persists one report as a row.
func insertRun(db *sql.DB, r RunReport) error {
	_, err := db.Exec(
		`INSERT INTO runs (block_size, key_count, push_ns_op, pop_ns_op, reschedule_ns_op, allocs_per_op, seed, unix_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.BlockSize, r.KeyCount, r.PushNsOp, r.PopNsOp, r.RescheduleOp, r.AllocsPerOp, r.Seed, r.UnixTime,
	)
	return err
}

// latestRun returns the most recent persisted run for blockSize, or
// ok=false if none exists yet.
func latestRun(db *sql.DB, blockSize int) (r RunReport, ok bool, err error) {
	row := db.QueryRow(
		`SELECT block_size, key_count, push_ns_op, pop_ns_op, reschedule_ns_op, allocs_per_op, seed, unix_time
		 FROM runs WHERE block_size = ? ORDER BY id DESC LIMIT 1`,
		blockSize,
	)
	err = row.Scan(&r.BlockSize, &r.KeyCount, &r.PushNsOp, &r.PopNsOp, &r.RescheduleOp, &r.AllocsPerOp, &r.Seed, &r.UnixTime)
	if err == sql.ErrNoRows {
		return RunReport{}, false, nil
	}
	if err != nil {
		return RunReport{}, false, err
	}
	return r, true, nil
}
