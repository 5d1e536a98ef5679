package emustep

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/emustep/emustep/models"
)

// MapRegions maps each region in order with its declared permissions,
// seeding content from the region's file when one is given and
// readable. A missing or unreadable file is logged and tolerated. When
// a .text region is among them, its base becomes the start address.
func (e *Emulator) MapRegions(regions []*models.Region) error {
	if e.cpu == nil {
		return models.ErrNotMapped
	}
	for _, r := range regions {
		if err := e.cpu.MemMapProt(r.Addr, r.Size, r.Prot); err != nil {
			e.ui.Log(fmt.Sprintf("failed to map %s: %v", r.Name, err))
			return errors.Wrapf(models.ErrRegionMap, "%s: %v", r.Name, err)
		}
		e.regions = append(e.regions, r)
		e.regionMap[r.Name] = r

		msg := fmt.Sprintf(">>> map %s @0x%x (size=%d, perm=%s)",
			r.Name, r.Addr, r.Size, models.ProtString(r.Prot))
		if r.File != "" {
			if data, err := os.ReadFile(r.File); err == nil {
				if uint64(len(data)) > r.Size {
					data = data[:r.Size]
				}
				if err := e.cpu.MemWrite(r.Addr, data); err != nil {
					return errors.Wrapf(err, "writing %s content", r.Name)
				}
				msg += fmt.Sprintf(" and content from %q", r.File)
			} else {
				msg += fmt.Sprintf(" (%q unreadable, left empty)", r.File)
			}
		}
		e.ui.Log(msg)
	}
	if text, ok := e.regionMap[".text"]; ok {
		e.start = text.Addr
		e.end = EndUnbounded
	}
	if len(e.regions) > 0 {
		e.status = StatusMapped
	}
	return nil
}

// Region looks a mapped region up by name.
func (e *Emulator) Region(name string) (*models.Region, bool) {
	r, ok := e.regionMap[name]
	return r, ok
}

// Regions returns the mapped regions in mapping order.
func (e *Emulator) Regions() []*models.Region {
	out := make([]*models.Region, len(e.regions))
	copy(out, e.regions)
	return out
}

// MemRead reads size bytes of emulated memory.
func (e *Emulator) MemRead(addr, size uint64) ([]byte, error) {
	if e.cpu == nil {
		return nil, models.ErrNotMapped
	}
	return e.cpu.MemRead(addr, size)
}

// MemWrite writes bytes into emulated memory.
func (e *Emulator) MemWrite(addr uint64, p []byte) error {
	if e.cpu == nil {
		return models.ErrNotMapped
	}
	return e.cpu.MemWrite(addr, p)
}

// unmapAll releases every tracked region. It tolerates a partially
// initialized session and never fails; the backend is being torn down
// anyway.
func (e *Emulator) unmapAll() {
	if e.cpu != nil {
		for _, r := range e.regions {
			e.cpu.MemUnmap(r.Addr, r.Size)
		}
	}
	e.regions = nil
	e.regionMap = make(map[string]*models.Region)
}
