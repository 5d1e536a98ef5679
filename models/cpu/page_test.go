package cpu

import (
	"testing"
)

func page_eq(a Pages, b Pages) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPageFind(t *testing.T) {
	mem := Pages{
		&Page{Addr: 0x1000, Size: 0x1000},
		&Page{Addr: 0x2000, Size: 0x1000},
		&Page{Addr: 0x4000, Size: 0x2000},
		&Page{Addr: 0x6000, Size: 0x2000},
	}
	if mem.Find(0x1000) != mem[0] ||
		mem.Find(0x1001) != mem[0] ||
		mem.Find(0x1fff) != mem[0] {
		t.Error("Find() failed")
	}
	if mem.Find(0x3000) != nil ||
		mem.Find(0x1) != nil ||
		mem.Find(0x10000) != nil {
		t.Error("Find() negative failed")
	}
	if !page_eq(mem.FindRange(0x0, 0x10000), mem) ||
		!page_eq(mem.FindRange(0x0, 0x1000), nil) ||
		!page_eq(mem.FindRange(0x1000, 0x1000), mem[:1]) ||
		!page_eq(mem.FindRange(0x1000, 0x2000), mem[:2]) ||
		!page_eq(mem.FindRange(0x2000, 0x2000), mem[1:2]) ||
		!page_eq(mem.FindRange(0x2000, 0x4000), mem[1:3]) ||
		!page_eq(mem.FindRange(0x2000, 0x10000), mem[1:]) {
		t.Error("FindRange() failed")
	}
}

func TestPageSplit(t *testing.T) {
	p := &Page{Addr: 0x1000, Size: 0x1000, Data: make([]byte, 0x1000)}
	p.Data[0] = 1
	p.Data[0x800] = 2
	p.Data[0xfff] = 3

	left, right := p.Split(0x1400, 0x400)
	if left == nil || left.Addr != 0x1000 || left.Size != 0x400 {
		t.Fatalf("bad left page: %v", left)
	}
	if right == nil || right.Addr != 0x1800 || right.Size != 0x800 {
		t.Fatalf("bad right page: %v", right)
	}
	if p.Addr != 0x1400 || p.Size != 0x400 {
		t.Fatalf("bad middle page: %v", p)
	}
	if left.Data[0] != 1 || right.Data[0] != 2 || right.Data[0x7ff] != 3 {
		t.Fatal("Split() lost data")
	}
}
