package models

import (
	"sort"
	"testing"

	"github.com/lunixbochs/fvbommel-util/sortorder"
	"github.com/pkg/errors"

	"github.com/emustep/emustep/models/cpu"
)

type Reg struct {
	Enum int
	Name string
}

type RegVal struct {
	Reg
	Val uint64
	// Default marks registers in the architecture's display subset.
	Default bool
}

type regList []Reg

func (r regList) Len() int           { return len(r) }
func (r regList) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r regList) Less(i, j int) bool { return sortorder.NaturalLess(r[i].Name, r[j].Name) }

// Dis decodes machine bytes into instructions for display.
type Dis interface {
	Dis(mem []byte, addr uint64) ([]Ins, error)
}

// Asm assembles instruction text at an address, returning the encoded
// bytes and the number of statements assembled.
type Asm interface {
	Asm(asm string, addr uint64) ([]byte, int, error)
}

// Arch describes one (ISA, width, endianness, syntax) combination: the
// builders for its execution, disassembly and assembly backends, plus
// the register name table used to resolve symbolic register access.
// The three backends must stay configuration-consistent, which is why
// they travel together here.
type Arch struct {
	// Name is the registry key, e.g. "x86" or "mips64be".
	Name string
	Bits int

	Cpu cpu.Builder
	Dis Dis
	Asm Asm

	PC   int
	SP   int
	Regs map[string]int

	// DefaultRegs is the register subset shown by dumps, in display order.
	DefaultRegs []string

	// sorted for RegDump
	regList regList
}

func (a *Arch) String() string {
	return a.Name
}

// RegEnum resolves a symbolic register name to the backend enum.
func (a *Arch) RegEnum(name string) (int, error) {
	if enum, ok := a.Regs[name]; ok {
		return enum, nil
	}
	return 0, errors.Wrapf(ErrUnknownRegister, "%q for arch %q", name, a.Name)
}

// RegName is the reverse lookup, for log lines. PC/SP have no entry in
// some register tables, so those are special-cased.
func (a *Arch) RegName(enum int) string {
	for name, e := range a.Regs {
		if e == enum {
			return name
		}
	}
	switch enum {
	case a.PC:
		return "pc"
	case a.SP:
		return "sp"
	}
	return ""
}

func (a *Arch) regs() regList {
	if a.regList == nil {
		rl := make(regList, 0, len(a.Regs))
		for n, e := range a.Regs {
			rl = append(rl, Reg{e, n})
		}
		sort.Sort(rl)
		a.regList = rl
	}
	return a.regList
}

// RegDump reads every named register from c, natural-sorted by name.
func (a *Arch) RegDump(c cpu.Cpu) ([]RegVal, error) {
	rl := a.regs()
	defaults := make(map[string]bool, len(a.DefaultRegs))
	for _, name := range a.DefaultRegs {
		defaults[name] = true
	}
	ret := make([]RegVal, len(rl))
	for i, r := range rl {
		val, err := c.RegRead(r.Enum)
		if err != nil {
			return nil, err
		}
		ret[i] = RegVal{r, val, defaults[r.Name]}
	}
	return ret, nil
}

// SmokeTest round-trips the stack pointer through a fresh backend.
func (a *Arch) SmokeTest(t *testing.T) {
	c, err := a.Cpu.New()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if err := c.RegWrite(a.SP, 0x1000); err != nil {
		t.Fatal(err)
	}
	val, err := c.RegRead(a.SP)
	if err != nil {
		t.Fatal(err)
	}
	if val != 0x1000 {
		t.Fatal(a.Name + " failed to read/write stack pointer")
	}
}

// TestExec assembles asm at 0x1000 and runs it until the backend walks
// off the end of the code.
func (a *Arch) TestExec(t *testing.T, asm string) {
	c, err := a.Cpu.New()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	code, _, err := a.Asm.Asm(asm, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.MemMapProt(0x1000, 0x1000, cpu.PROT_ALL); err != nil {
		t.Fatal(err)
	}
	if err := c.MemWrite(0x1000, code); err != nil {
		t.Fatal(err)
	}
	if err := c.Start(0x1000, 0x1000+uint64(len(code))); err != nil {
		t.Fatal(err)
	}
}

func (a *Arch) BenchRegs(b *testing.B) {
	c, err := a.Cpu.New()
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.RegWrite(a.SP, 0x1000); err != nil {
			b.Fatal(err)
		}
		if _, err := c.RegRead(a.SP); err != nil {
			b.Fatal(err)
		}
	}
}

func (a *Arch) BenchExec(b *testing.B, asm string) {
	c, err := a.Cpu.New()
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()
	code, _, err := a.Asm.Asm(asm, 0x1000)
	if err != nil {
		b.Fatal(err)
	}
	if err := c.MemMapProt(0x1000, 0x1000, cpu.PROT_ALL); err != nil {
		b.Fatal(err)
	}
	if err := c.MemWrite(0x1000, code); err != nil {
		b.Fatal(err)
	}
	end := 0x1000 + uint64(len(code))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Start(0x1000, end); err != nil {
			b.Fatal(err)
		}
	}
}
