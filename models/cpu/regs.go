package cpu

import (
	"github.com/pkg/errors"
)

// Regs is a register file for software backends, indexed by the same
// integer enums a hardware-backed Cpu would use. Values are masked to
// the register width on write.
type Regs struct {
	mask uint64
	vals map[int]uint64
}

func NewRegs(bits uint, enums []int) *Regs {
	r := &Regs{
		mask: ^uint64(0) >> (64 - bits),
		vals: make(map[int]uint64),
	}
	for _, e := range enums {
		r.vals[e] = 0
	}
	return r
}

func (r *Regs) RegRead(enum int) (uint64, error) {
	if val, ok := r.vals[enum]; !ok {
		return 0, errors.New("invalid register")
	} else {
		return val, nil
	}
}

func (r *Regs) RegWrite(enum int, val uint64) error {
	val &= r.mask
	if _, ok := r.vals[enum]; !ok {
		return errors.New("invalid register")
	}
	r.vals[enum] = val
	return nil
}
