package cpu

// Hook is an opaque handle returned by HookAdd, usable with HookDel.
type Hook interface{}

// Cpu abstracts the minimum functionality the emulator needs from a
// decode/execute backend. Snapshot save/restore is deliberately absent.
type Cpu interface {
	// memory mapping
	MemMapProt(addr, size uint64, prot int) error
	MemProt(addr, size uint64, prot int) error
	MemUnmap(addr, size uint64) error

	// memory IO
	MemRead(addr, size uint64) ([]byte, error)
	MemReadInto(p []byte, addr uint64) error
	MemWrite(addr uint64, p []byte) error

	// register IO
	RegRead(reg int) (uint64, error)
	RegWrite(reg int, val uint64) error

	// execution; Start blocks until the run ends or Stop is called from a hook
	Start(begin, until uint64) error
	Stop() error

	// hooks
	HookAdd(htype int, cb interface{}, begin, end uint64, extra ...int) (Hook, error)
	HookDel(hook Hook) error

	// cleanup
	Close() error
}

// Builder constructs a fresh backend instance. One builder value is
// shared per architecture; each New() call owns independent state.
type Builder interface {
	New() (Cpu, error)
}
