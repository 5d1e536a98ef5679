package ppc

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

func TestPpc(t *testing.T)          { Arch.SmokeTest(t) }
func TestPpcExec(t *testing.T)      { Arch.TestExec(t, testAsm) }
func BenchmarkPpcRegs(b *testing.B) { Arch.BenchRegs(b) }
func BenchmarkPpcExec(b *testing.B) { Arch.BenchExec(b, testAsm) }
