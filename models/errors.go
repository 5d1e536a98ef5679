package models

import "errors"

// Error kinds reported by the emulator. Backend failures are wrapped
// around these with context; use errors.Is to classify.
var (
	ErrUnsupportedArch = errors.New("unsupported architecture")
	ErrUnknownRegister = errors.New("unknown register")

	// preconditions on the load/run pipeline
	ErrMissingTextRegion  = errors.New("missing .text region")
	ErrMissingStackRegion = errors.New("missing .stack region")
	ErrNoCodeCompiled     = errors.New("no code compiled")

	ErrAssembly = errors.New("assembly failed")

	// the backend rejected a region's address/size/permission combination
	ErrRegionMap = errors.New("region mapping rejected")
	// the backend faulted during execution
	ErrFault = errors.New("emulation fault")

	// the session reached a terminal state
	ErrFinished  = errors.New("emulation finished")
	ErrNotMapped = errors.New("no memory mapped")
)
