package emustep

import (
	"fmt"
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"

	"github.com/emustep/emustep/models"
)

// RegWrite writes a register by its architecture-specific name.
func (e *Emulator) RegWrite(name string, val uint64) error {
	enum, err := e.arch.RegEnum(name)
	if err != nil {
		return err
	}
	return e.cpu.RegWrite(enum, val)
}

// RegRead reads a register by name.
func (e *Emulator) RegRead(name string) (uint64, error) {
	enum, err := e.arch.RegEnum(name)
	if err != nil {
		return 0, err
	}
	return e.cpu.RegRead(enum)
}

// SeedRegisters writes every entry, then forces the program counter to
// the .text base and the stack pointer to the .stack base. The
// override wins over caller-supplied pc/sp values so execution always
// starts at the mapped entry point with a valid stack.
func (e *Emulator) SeedRegisters(regs map[string]uint64) error {
	if e.cpu == nil {
		return models.ErrNotMapped
	}
	// Preconditions before any write so a failure leaves the register
	// file untouched.
	text, ok := e.regionMap[".text"]
	if !ok {
		e.ui.Log(">>> cannot seed registers: no .text region mapped")
		return models.ErrMissingTextRegion
	}
	stack, ok := e.regionMap[".stack"]
	if !ok {
		e.ui.Log(">>> cannot seed registers: no .stack region mapped")
		return models.ErrMissingStackRegion
	}
	names := make([]string, 0, len(regs))
	for name := range regs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return sortorder.NaturalLess(names[i], names[j]) })
	for _, name := range names {
		if err := e.RegWrite(name, regs[name]); err != nil {
			e.ui.Log(fmt.Sprintf("failed to seed register %s: %v", name, err))
			return err
		}
		e.ui.Log(fmt.Sprintf(">>> register %s = 0x%x", name, regs[name]))
	}
	if err := e.cpu.RegWrite(e.arch.PC, text.Addr); err != nil {
		return err
	}
	e.ui.Log(fmt.Sprintf(">>> register %s = 0x%x (.text base)", e.arch.RegName(e.arch.PC), text.Addr))
	if err := e.cpu.RegWrite(e.arch.SP, stack.Addr); err != nil {
		return err
	}
	e.ui.Log(fmt.Sprintf(">>> register %s = 0x%x (.stack base)", e.arch.RegName(e.arch.SP), stack.Addr))
	return nil
}

// RegDump reads every named register, natural-sorted by name.
func (e *Emulator) RegDump() ([]models.RegVal, error) {
	if e.cpu == nil {
		return nil, models.ErrNotMapped
	}
	return e.arch.RegDump(e.cpu)
}
