package emustep

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/emustep/emustep/models"
	"github.com/emustep/emustep/models/cpu"
)

// These tests run real code through the unicorn backend and need the
// unicorn/keystone/capstone shared libraries installed.

func TestX86Session(t *testing.T) {
	e, err := New("x86", nil)
	if err != nil {
		t.Fatal(err)
	}
	u := &testUI{}
	e.SetUI(u)

	regions := []*models.Region{
		{Name: ".text", Addr: 0x1000, Size: 0x1000, Prot: cpu.PROT_READ | cpu.PROT_EXEC},
		{Name: ".stack", Addr: 0x2000, Size: 0x1000, Prot: cpu.PROT_READ | cpu.PROT_WRITE},
	}
	if err := e.MapRegions(regions); err != nil {
		t.Fatal(err)
	}
	count, err := e.Assemble([]string{"mov eax, 1", "mov ebx, 2", "add eax, ebx"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("assembled %d instructions, want 3", count)
	}
	if err := e.LoadText(); err != nil {
		t.Fatal(err)
	}
	if err := e.SeedRegisters(map[string]uint64{"eax": 0, "ebx": 0}); err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}

	if e.Status() != StatusFinished {
		t.Fatalf("state %s after run, want finished", e.Status())
	}
	if n := u.insns(); n != 3 {
		t.Fatalf("%d trace lines, want 3: %v", n, u.trace)
	}
	if eax, _ := e.RegRead("eax"); eax != 3 {
		t.Fatalf("eax = %d, want 3", eax)
	}
	if pc, _ := e.PC(); pc != e.End() {
		t.Fatalf("pc = 0x%x, want end 0x%x", pc, e.End())
	}
	last := u.trace[len(u.trace)-1]
	if !strings.Contains(last, "End of emulation") {
		t.Fatalf("missing end-of-run notice, trace ends with %q", last)
	}
	if err := e.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestX86Step(t *testing.T) {
	e, err := New("x86", nil)
	if err != nil {
		t.Fatal(err)
	}
	u := &testUI{}
	e.SetUI(u)

	regions := []*models.Region{
		{Name: ".text", Addr: 0x1000, Size: 0x1000, Prot: cpu.PROT_ALL},
		{Name: ".stack", Addr: 0x2000, Size: 0x1000, Prot: cpu.PROT_READ | cpu.PROT_WRITE},
	}
	if err := e.MapRegions(regions); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Assemble([]string{"inc eax", "inc eax", "inc eax"}, true); err != nil {
		t.Fatal(err)
	}
	if err := e.LoadText(); err != nil {
		t.Fatal(err)
	}
	if err := e.SeedRegisters(nil); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		if err := e.Step(); err != nil {
			t.Fatal(err)
		}
		if eax, _ := e.RegRead("eax"); eax != uint64(i) {
			t.Fatalf("eax = %d after %d steps", eax, i)
		}
	}
	if e.Status() != StatusFinished {
		t.Fatalf("state %s after stepping through, want finished", e.Status())
	}
}

func TestX86MemHooks(t *testing.T) {
	e, err := New("x86", nil)
	if err != nil {
		t.Fatal(err)
	}
	u := &testUI{}
	e.SetUI(u)

	regions := []*models.Region{
		{Name: ".text", Addr: 0x1000, Size: 0x1000, Prot: cpu.PROT_ALL},
		{Name: ".stack", Addr: 0x2000, Size: 0x1000, Prot: cpu.PROT_READ | cpu.PROT_WRITE},
	}
	if err := e.MapRegions(regions); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Assemble([]string{"mov dword ptr [0x2000], 0x1234", "mov ecx, dword ptr [0x2000]"}, true); err != nil {
		t.Fatal(err)
	}
	if err := e.LoadText(); err != nil {
		t.Fatal(err)
	}
	if err := e.SeedRegisters(nil); err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}

	var sawWrite, sawRead bool
	for _, line := range u.log {
		if strings.Contains(line, "MEM_WRITE") && strings.Contains(line, "0x1234") {
			sawWrite = true
		}
		if strings.Contains(line, "MEM_READ") {
			sawRead = true
		}
	}
	if !sawWrite || !sawRead {
		t.Fatalf("missing memory access notices in log: %v", u.log)
	}
	if ecx, _ := e.RegRead("ecx"); ecx != 0x1234 {
		t.Fatalf("ecx = 0x%x, want 0x1234", ecx)
	}
}

func TestX86RegionMapError(t *testing.T) {
	e, err := New("x86", nil)
	if err != nil {
		t.Fatal(err)
	}
	e.SetUI(&testUI{})
	// unicorn rejects unaligned mappings
	regions := []*models.Region{
		{Name: ".text", Addr: 0x1234, Size: 0x10, Prot: cpu.PROT_ALL},
	}
	if err := e.MapRegions(regions); !errors.Is(err, models.ErrRegionMap) {
		t.Fatalf("expected ErrRegionMap, got %v", err)
	}
}

func TestX86Fault(t *testing.T) {
	e, err := New("x86", nil)
	if err != nil {
		t.Fatal(err)
	}
	e.SetUI(&testUI{})
	regions := []*models.Region{
		{Name: ".text", Addr: 0x1000, Size: 0x1000, Prot: cpu.PROT_ALL},
		{Name: ".stack", Addr: 0x2000, Size: 0x1000, Prot: cpu.PROT_READ | cpu.PROT_WRITE},
	}
	if err := e.MapRegions(regions); err != nil {
		t.Fatal(err)
	}
	// read from an unmapped page
	if _, err := e.Assemble([]string{"mov eax, dword ptr [0x900000]"}, true); err != nil {
		t.Fatal(err)
	}
	if err := e.LoadText(); err != nil {
		t.Fatal(err)
	}
	if err := e.SeedRegisters(nil); err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); !errors.Is(err, models.ErrFault) {
		t.Fatalf("expected ErrFault, got %v", err)
	}
	if e.Status() != StatusFaulted {
		t.Fatalf("state %s, want faulted", e.Status())
	}
}
