package cpu

import (
	ks "github.com/keystone-engine/keystone/bindings/go/keystone"
	"github.com/pkg/errors"
)

type Keystone struct {
	Arch ks.Architecture
	Mode ks.Mode
	// Syntax is an OPT_SYNTAX_* value, 0 for the engine default.
	Syntax ks.OptionValue

	ks *ks.Keystone
}

func (k *Keystone) Open() (err error) {
	k.ks, err = ks.New(k.Arch, k.Mode)
	if err != nil {
		return errors.Wrap(err, "ks.New() failed")
	}
	if k.Syntax != 0 {
		if err := k.ks.Option(ks.OPT_SYNTAX, k.Syntax); err != nil {
			return errors.Wrap(err, "ks.Option() failed")
		}
	}
	return nil
}

// Asm assembles text at addr, returning the encoding and the number of
// statements assembled.
func (k *Keystone) Asm(asm string, addr uint64) ([]byte, int, error) {
	if k.ks == nil {
		if err := k.Open(); err != nil {
			return nil, -1, err
		}
	}
	out, count, ok := k.ks.Assemble(asm, addr)
	if !ok {
		return nil, -1, errors.Wrap(k.ks.LastError(), "ks.Assemble() failed")
	}
	return out, int(count), nil
}
