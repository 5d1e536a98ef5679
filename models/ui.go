package models

// UI is the presentation collaborator: two append-only line sinks and a
// notification fired when execution reaches its end address. Hooks call
// into the UI synchronously, in program order.
type UI interface {
	// Trace receives instruction-by-instruction disassembly.
	Trace(line string)
	// Log receives mapping, register-seeding and hook event notices.
	Log(line string)
	// OnFinished fires once when the program counter reaches the end
	// address; presentations use it to disable run/step affordances.
	OnFinished()
}
