package sparc64

import (
	"testing"
)

var testAsm = `
set 100, %l0
loop: sub %l0, 1, %l0
      cmp %l0, 0
      bg loop
      nop
`

func TestSparc64(t *testing.T)          { Arch.SmokeTest(t) }
func TestSparc64Exec(t *testing.T)      { Arch.TestExec(t, testAsm) }
func BenchmarkSparc64Regs(b *testing.B) { Arch.BenchRegs(b) }
func BenchmarkSparc64Exec(b *testing.B) { Arch.BenchExec(b, testAsm) }
