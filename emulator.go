// Package emustep drives a single-threaded multi-architecture cpu
// emulation session: map named regions, assemble code into .text, seed
// registers, then run or single-step while hooks narrate execution.
package emustep

import (
	"github.com/emustep/emustep/arch"
	"github.com/emustep/emustep/models"
	"github.com/emustep/emustep/models/cpu"
	"github.com/emustep/emustep/ui"
)

// EndUnbounded is the end address before any code is assembled: run
// until the backend stops on its own.
const EndUnbounded = ^uint64(0)

// Emulator is one emulation session. It exclusively owns the backend
// instance, its mapped regions and its register file; callers must
// serialize Run/Step/Stop/Reset.
type Emulator struct {
	arch   *models.Arch
	config *models.Config
	ui     models.UI

	cpu   cpu.Cpu
	hooks []cpu.Hook

	// mapped regions, in mapping order plus by-name index
	regions   []*models.Region
	regionMap map[string]*models.Region

	code  []byte
	insns int

	start, end uint64
	status     Status
	stepping   bool
	stopNow    bool
}

// New resolves an architecture by registry name and creates a session
// for it.
func New(archName string, conf *models.Config) (*Emulator, error) {
	a, err := arch.Get(archName)
	if err != nil {
		return nil, err
	}
	return NewArch(a, conf)
}

// NewArch creates a session for an already-resolved architecture. The
// fresh backend has all four hooks installed before anything can run.
func NewArch(a *models.Arch, conf *models.Config) (*Emulator, error) {
	conf = conf.Init()
	e := &Emulator{
		arch:      a,
		config:    conf,
		ui:        ui.NewStream(conf),
		regionMap: make(map[string]*models.Region),
		insns:     -1,
		end:       EndUnbounded,
	}
	if err := e.createVM(); err != nil {
		return nil, err
	}
	return e, nil
}

// SetUI replaces the presentation collaborator. Pass nil to restore the
// plain stream fallback.
func (e *Emulator) SetUI(u models.UI) {
	if u == nil {
		u = ui.NewStream(e.config)
	}
	e.ui = u
}

func (e *Emulator) createVM() error {
	c, err := e.arch.Cpu.New()
	if err != nil {
		return err
	}
	e.cpu = c
	if err := e.addHooks(); err != nil {
		c.Close()
		e.cpu = nil
		return err
	}
	e.status = StatusReady
	return nil
}

func (e *Emulator) Arch() *models.Arch { return e.arch }
func (e *Emulator) Bits() int          { return e.arch.Bits }
func (e *Emulator) Status() Status     { return e.status }

// Start is the address the next Run() begins at.
func (e *Emulator) Start() uint64 { return e.start }

// End is the address execution halts at, EndUnbounded until code of a
// known length has been assembled.
func (e *Emulator) End() uint64 { return e.end }

// Insns is the statement count of the last successful assembly, -1
// when nothing is assembled.
func (e *Emulator) Insns() int { return e.insns }

// Code is the current assembled code buffer.
func (e *Emulator) Code() []byte {
	out := make([]byte, len(e.code))
	copy(out, e.code)
	return out
}

// SetStart moves the resume point. A finished or faulted session is
// re-armed so callers like the repl can keep feeding code.
func (e *Emulator) SetStart(addr uint64) {
	e.start = addr
	e.rearm()
}

// SetEnd moves the halt address.
func (e *Emulator) SetEnd(addr uint64) {
	e.end = addr
	e.rearm()
}

func (e *Emulator) rearm() {
	if e.cpu != nil && len(e.regions) > 0 &&
		(e.status == StatusFinished || e.status == StatusFaulted) {
		e.status = StatusMapped
	}
}

// PC reads the current program counter.
func (e *Emulator) PC() (uint64, error) {
	if e.cpu == nil {
		return 0, models.ErrNotMapped
	}
	return e.cpu.RegRead(e.arch.PC)
}
