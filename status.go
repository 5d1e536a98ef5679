package emustep

// Status tracks the session through its lifecycle. Reset returns to
// StatusReady from any state.
type Status int

const (
	// StatusReady means a fresh backend exists with no regions mapped.
	StatusReady Status = iota
	// StatusMapped means regions (and possibly code) are loaded and the
	// session can run or resume.
	StatusMapped
	// StatusRunning is only observable from inside hook callbacks.
	StatusRunning
	// StatusStopped means Stop() tore the session down.
	StatusStopped
	// StatusFaulted means the backend faulted during a run.
	StatusFaulted
	// StatusFinished means the program counter reached the end address.
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusMapped:
		return "mapped"
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	case StatusFaulted:
		return "faulted"
	case StatusFinished:
		return "finished"
	}
	return "unknown"
}
