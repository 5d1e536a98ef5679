package cpu

import (
	"bytes"
	"sync"

	"github.com/emustep/emustep/models"
)

type discacheEntry struct {
	addr uint64
	mem  []byte
	dis  []models.Ins
}

// discache memoizes decoded instructions keyed by address, invalidated
// when the bytes at that address change.
type discache struct {
	sync.RWMutex
	cache map[uint64]*discacheEntry
}

func (d *discache) Get(addr uint64, mem []byte) *discacheEntry {
	d.RLock()
	defer d.RUnlock()

	if ent, ok := d.cache[addr]; ok {
		if bytes.Equal(mem, ent.mem) {
			return ent
		}
	}
	return nil
}

func (d *discache) Put(addr uint64, mem []byte, dis []models.Ins) {
	d.Lock()
	defer d.Unlock()

	d.cache[addr] = &discacheEntry{
		addr: addr,
		mem:  mem,
		dis:  dis,
	}
}
