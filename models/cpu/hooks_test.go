package cpu

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func callAll(h *Hooks) {
	h.OnBlock(0x1000, 1)
	h.OnCode(0x1001, 2)
	h.OnIntr(3)
	h.OnMem(MEM_WRITE, 0x1002, 4, -1)
	h.OnFault(MEM_WRITE_UNMAPPED, 0x1003, 8, -2)
}

func makeHooks() (*Mem, *Hooks) {
	mem := NewMem(64, binary.LittleEndian)
	return mem, NewHooks(nil, mem)
}

// this test ensures it's safe to dispatch all hooks while empty
func TestHooksEmpty(t *testing.T) {
	_, h := makeHooks()
	callAll(h)
}

// checks if two lists of strings are equal
func strseq(a []string, b []string) error {
	if len(a) != len(b) {
		return errors.Errorf("output list length mismatch")
	}
	for i, v := range a {
		if v != b[i] {
			return errors.Errorf("output list value mismatch: %s != %s", v, b[i])
		}
	}
	return nil
}

func TestHooks(t *testing.T) {
	_, h := makeHooks()
	compare := []string{
		"block(0x1000, 0x1)", "code(0x1001, 0x2)", "intr(3)",
		"mem(16, 0x1002, 4, -0x1)", "fault(20, 0x1003, 8, -0x2)",
	}
	var results []string
	blockCb := func(_ Cpu, addr uint64, size uint32) {
		results = append(results, fmt.Sprintf("block(%#x, %#x)", addr, size))
	}
	codeCb := func(_ Cpu, addr uint64, size uint32) {
		results = append(results, fmt.Sprintf("code(%#x, %#x)", addr, size))
	}
	intrCb := func(_ Cpu, intno uint32) {
		results = append(results, fmt.Sprintf("intr(%d)", intno))
	}
	writeCb := func(_ Cpu, access int, addr uint64, size int, val int64) {
		results = append(results, fmt.Sprintf("mem(%d, %#x, %d, %#x)", access, addr, size, val))
	}
	faultCb := func(_ Cpu, access int, addr uint64, size int, val int64) bool {
		results = append(results, fmt.Sprintf("fault(%d, %#x, %d, %#x)", access, addr, size, val))
		return val == 42
	}
	var hooks []Hook
	addHooks := func(h *Hooks) {
		for _, v := range []struct {
			htype int
			cb    interface{}
		}{
			{HOOK_BLOCK, blockCb},
			{HOOK_CODE, codeCb},
			{HOOK_INTR, intrCb},
			{HOOK_MEM_WRITE, writeCb},
			{HOOK_MEM_ERR, faultCb},
		} {
			hh, err := h.HookAdd(v.htype, v.cb, 1, 0)
			if err != nil {
				t.Fatal(err)
			}
			hooks = append(hooks, hh)
		}
	}
	removeHooks := func(h *Hooks) {
		for _, v := range hooks {
			if err := h.HookDel(v); err != nil {
				t.Fatal(err)
			}
		}
		hooks = nil
	}

	// test add, call
	addHooks(h)
	callAll(h)
	if err := strseq(results, compare); err != nil {
		t.Fatal(err)
	}

	// test remove: no further callbacks fire
	removeHooks(h)
	results = nil
	callAll(h)
	if len(results) != 0 {
		t.Fatalf("callbacks fired after HookDel: %v", results)
	}
}

// hooks with a bounded range only fire inside that range
func TestHooksRange(t *testing.T) {
	_, h := makeHooks()
	var hits []uint64
	cb := func(_ Cpu, addr uint64, size uint32) {
		hits = append(hits, addr)
	}
	if _, err := h.HookAdd(HOOK_CODE, cb, 0x1000, 0x1fff); err != nil {
		t.Fatal(err)
	}
	h.OnCode(0x500, 1)
	h.OnCode(0x1000, 1)
	h.OnCode(0x1fff, 1)
	h.OnCode(0x2000, 1)
	if len(hits) != 2 || hits[0] != 0x1000 || hits[1] != 0x1fff {
		t.Fatalf("range filtering failed: %v", hits)
	}
}

// memory IO through Mem should fire mem hooks
func TestHooksMemIO(t *testing.T) {
	mem, h := makeHooks()
	if err := mem.MemMapProt(0x1000, 0x1000, PROT_ALL); err != nil {
		t.Fatal(err)
	}
	var results []string
	cb := func(_ Cpu, access int, addr uint64, size int, val int64) {
		results = append(results, fmt.Sprintf("%d %#x %d %d", access, addr, size, val))
	}
	if _, err := h.HookAdd(HOOK_MEM_READ|HOOK_MEM_WRITE, cb, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := mem.WriteUint(0x1000, 4, PROT_WRITE, 7); err != nil {
		t.Fatal(err)
	}
	if _, err := mem.ReadUint(0x1000, 4, PROT_READ); err != nil {
		t.Fatal(err)
	}
	compare := []string{
		fmt.Sprintf("%d 0x1000 4 7", MEM_WRITE),
		fmt.Sprintf("%d 0x1000 4 0", MEM_READ),
	}
	if err := strseq(results, compare); err != nil {
		t.Fatal(err)
	}
}
