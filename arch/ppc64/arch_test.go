package ppc64

import (
	"testing"
)

var testAsm = `
li 10, 100
l1:
addi 10, 10, -1
cmpwi 10, 0
bgt l1
`

func TestPpc64(t *testing.T)          { Arch.SmokeTest(t) }
func TestPpc64Exec(t *testing.T)      { Arch.TestExec(t, testAsm) }
func BenchmarkPpc64Regs(b *testing.B) { Arch.BenchRegs(b) }
func BenchmarkPpc64Exec(b *testing.B) { Arch.BenchExec(b, testAsm) }
