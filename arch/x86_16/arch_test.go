package x86_16

import (
	"testing"
)

var testAsm = `
mov ax, 100
l1:
dec ax
cmp ax, 0
jg l1
`

func TestX86_16(t *testing.T)          { Arch.SmokeTest(t) }
func TestX86_16Exec(t *testing.T)      { Arch.TestExec(t, testAsm) }
func TestX86_16ATT(t *testing.T)       { ArchATT.SmokeTest(t) }
func BenchmarkX86_16Regs(b *testing.B) { Arch.BenchRegs(b) }
func BenchmarkX86_16Exec(b *testing.B) { Arch.BenchExec(b, testAsm) }
