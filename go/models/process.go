package models

// MemIO is the minimum a backend needs to touch another address space.
// Reads and writes are all-or-nothing: a short transfer is an error.
type MemIO interface {
	MemReadInto(p []byte, addr uint64) error
	MemWrite(addr uint64, p []byte) error
}

// Process is an opened handle on a target process.
type Process interface {
	MemIO
	Pid() int
	Close() error
}

// ProcessInfo is one entry of a process listing.
type ProcessInfo struct {
	Pid  int
	Name string
}
