// Package mock is a deterministic software backend: a fixed-width
// instruction stream over the software register file and memory model.
// It executes no real instruction semantics, which makes it suitable
// for exercising the engine state machine without a hardware-backed
// emulator attached.
package mock

import (
	"encoding/binary"

	"github.com/emustep/emustep/models/cpu"
)

// register enums for the mock ISA
const (
	PC = iota + 1
	SP
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	R7
)

const DefaultInsnSize = 4

type Builder struct {
	// InsnSize is the fixed width of every mock instruction.
	InsnSize uint64
}

func (b *Builder) New() (cpu.Cpu, error) {
	size := b.InsnSize
	if size == 0 {
		size = DefaultInsnSize
	}
	m := &MockCpu{
		Regs: cpu.NewRegs(64, []int{
			PC, SP, R0, R1, R2, R3, R4, R5, R6, R7,
		}),
		Mem:  cpu.NewMem(64, binary.LittleEndian),
		insn: size,
	}
	m.Hooks = cpu.NewHooks(m, m.Mem)
	return m, nil
}

type MockCpu struct {
	*cpu.Hooks
	*cpu.Regs
	*cpu.Mem

	insn        uint64
	exitRequest bool
}

func (m *MockCpu) Start(begin, until uint64) error {
	m.exitRequest = false
	pc := begin
	m.RegWrite(PC, pc)
	m.OnBlock(pc, 0)

	for pc != until && !m.exitRequest {
		if _, err := m.ReadProt(pc, m.insn, cpu.PROT_EXEC); err != nil {
			return err
		}
		m.OnCode(pc, uint32(m.insn))
		// exitRequest is checked again so a hook can halt the run
		if m.exitRequest {
			break
		}
		pc += m.insn
		m.RegWrite(PC, pc)
	}
	return nil
}

func (m *MockCpu) Stop() error {
	m.exitRequest = true
	return nil
}

func (m *MockCpu) Close() error {
	return nil
}
