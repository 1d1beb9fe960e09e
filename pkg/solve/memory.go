package solve

import "runtime"

// freeMemoryBytes estimates the headroom before the process needs more
// memory from the OS, used by both solvers' OOM check (§4.4, §4.5: "every N
// expansions ... check free memory; if below 15 MiB, cancel"). No
// introspection library for this appears anywhere in the retrieved pack, so
// this stays on runtime.MemStats rather than reaching for a third-party
// dependency -- see DESIGN.md.
func freeMemoryBytes() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.Sys > m.HeapAlloc {
		return m.Sys - m.HeapAlloc
	}
	return 0
}
