package emustep

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/emustep/emustep/models"
)

// Assemble turns instruction-text lines into the session's code
// buffer, assembling at the current start address. A failed assembly
// leaves the previous buffer untouched. When updateEnd is set, the end
// address becomes start + len(code) so a run halts exactly after the
// last assembled instruction.
func (e *Emulator) Assemble(lines []string, updateEnd bool) (int, error) {
	asm := strings.Join(lines, " ; ")
	e.ui.Log(fmt.Sprintf(">>> assembling for %q: %s", e.arch.Name, asm))

	code, count, err := e.arch.Asm.Asm(asm, e.start)
	if err != nil || count < 0 {
		e.ui.Log(">>> failed to assemble code")
		return -1, errors.Wrapf(models.ErrAssembly, "%v", err)
	}
	e.code, e.insns = code, count
	e.ui.Log(fmt.Sprintf(">>> %d instructions assembled", count))

	if updateEnd {
		e.end = e.start + uint64(len(code))
	}
	return count, nil
}

// LoadText writes the assembled code buffer into the .text region.
func (e *Emulator) LoadText() error {
	text, ok := e.regionMap[".text"]
	if !ok {
		e.ui.Log("missing .text region (map one before loading code)")
		return models.ErrMissingTextRegion
	}
	if e.code == nil {
		e.ui.Log("no code assembled yet")
		return models.ErrNoCodeCompiled
	}
	e.ui.Log(fmt.Sprintf(">>> loading .text at 0x%x", text.Addr))
	return e.cpu.MemWrite(text.Addr, e.code)
}
