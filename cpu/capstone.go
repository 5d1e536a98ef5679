package cpu

import (
	cs "github.com/bnagy/gapstone"
	"github.com/pkg/errors"

	"github.com/emustep/emustep/models"
)

// Capstone is the gapstone-backed disassembler. It exists alongside
// Capstr because gapstone exposes engine options, which we need for the
// ATT syntax dialect on x86.
type Capstone struct {
	Arch, Mode int
	// Syntax is a CS_OPT_SYNTAX_* value, 0 for the engine default.
	Syntax uint

	cs *cs.Engine
	dc discache
}

func (c *Capstone) Open() (err error) {
	engine, err := cs.New(c.Arch, uint(c.Mode))
	if err != nil {
		return errors.Wrap(err, "cs.New() failed")
	}
	if c.Syntax != 0 {
		if err := engine.SetOption(cs.CS_OPT_SYNTAX, c.Syntax); err != nil {
			engine.Close()
			return errors.Wrap(err, "cs.SetOption() failed")
		}
	}
	c.cs = &engine
	c.dc.cache = make(map[uint64]*discacheEntry)
	return nil
}

func (c *Capstone) Dis(mem []byte, addr uint64) ([]models.Ins, error) {
	if c.cs == nil {
		if err := c.Open(); err != nil {
			return nil, err
		}
	}
	if ent := c.dc.Get(addr, mem); ent != nil {
		return ent.dis, nil
	}
	dis, err := c.cs.Disasm(mem, addr, 0)
	if err != nil {
		return nil, errors.Wrap(err, "capstone disassembly failed")
	}
	ret := make([]models.Ins, len(dis))
	for i, ins := range dis {
		ret[i] = csIns(ins)
	}
	c.dc.Put(addr, mem, ret)
	return ret, nil
}

// wrapper to make gapstone.Instruction conform to the models.Ins interface
type csIns cs.Instruction

func (c csIns) Addr() uint64     { return uint64(c.Address) }
func (c csIns) Bytes() []byte    { return cs.Instruction(c).Bytes }
func (c csIns) Mnemonic() string { return cs.Instruction(c).Mnemonic }
func (c csIns) OpStr() string    { return cs.Instruction(c).OpStr }
