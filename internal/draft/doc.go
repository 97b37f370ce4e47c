// Package draft persists work-in-progress course JSON in a SQLite store. The
// store is an injected capability keyed by course code; every write also
// records an immutable snapshot for history. A file lock next to the database
// keeps concurrent processes out, and Debouncer gives callers time-based
// write coalescing.
package draft
