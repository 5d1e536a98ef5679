package models

import (
	"strings"
	"testing"
)

type fakeDumper struct {
	regs []RegVal
}

func (f *fakeDumper) RegDump() ([]RegVal, error) { return f.regs, nil }
func (f *fakeDumper) Bits() int                  { return 32 }

func TestStatusDiffChanges(t *testing.T) {
	f := &fakeDumper{regs: []RegVal{
		{Reg{1, "r0"}, 0, true},
		{Reg{2, "r1"}, 5, true},
		{Reg{3, "flags"}, 1, false},
	}}
	s := StatusDiff{U: f}
	// first dump: r1 differs from the zero baseline, r0 doesn't, and
	// flags is outside the display subset
	first := s.Changes(true)
	if first.Count() != 1 {
		t.Fatalf("first diff counted %d changes, want 1", first.Count())
	}

	f.regs[1].Val = 7
	second := s.Changes(true)
	if second.Count() != 1 {
		t.Fatalf("second diff counted %d changes, want 1", second.Count())
	}
	if c := second.Find(2); c == nil || c.Old != 5 || c.New != 7 {
		t.Fatalf("bad change for r1: %+v", c)
	}
	out := second.String(false)
	if !strings.Contains(out, "r1") || !strings.Contains(out, "0000007") {
		t.Fatalf("unexpected diff rendering %q", out)
	}
}

func TestChangeMask(t *testing.T) {
	c := NewChange("r0", 0x1234, 0x1230)
	masks := c.Mask(8)
	if len(masks) != 2 {
		t.Fatalf("got %d mask runs, want 2: %+v", len(masks), masks)
	}
	if masks[0].Changed || masks[0].New != "0000123" {
		t.Fatalf("bad matching run %+v", masks[0])
	}
	if !masks[1].Changed || masks[1].New != "4" || masks[1].Old != "0" {
		t.Fatalf("bad differing run %+v", masks[1])
	}
}
