package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/emustep/emustep/models/cpu"
)

// Region is a named, permissioned span of the emulated address space,
// optionally seeded from a backing file. Regions must not overlap; the
// caller supplies the layout and the backend rejects what it can't map.
type Region struct {
	Name string
	Addr uint64
	Size uint64
	Prot int

	// File optionally names a file whose bytes seed the region,
	// truncated to Size. A missing or unreadable file is tolerated.
	File string
}

func (r *Region) Contains(addr uint64) bool {
	return r.Addr <= addr && addr < r.Addr+r.Size
}

func (r *Region) String() string {
	desc := fmt.Sprintf("0x%x-0x%x %s [%s]", r.Addr, r.Addr+r.Size, ProtString(r.Prot), r.Name)
	if r.File != "" {
		desc += fmt.Sprintf(" %s", r.File)
	}
	return desc
}

// ProtString renders a protection mask as "rwx" flags.
func ProtString(prot int) string {
	prots := []int{cpu.PROT_READ, cpu.PROT_WRITE, cpu.PROT_EXEC}
	chars := []string{"r", "w", "x"}
	s := ""
	for i := range prots {
		if prot&prots[i] != 0 {
			s += chars[i]
		} else {
			s += "-"
		}
	}
	return s
}

// ParseProt accepts "read|write|exec" permission strings (any case,
// "|" or "," separated) as well as the short "rwx" form.
func ParseProt(s string) (int, error) {
	prot := cpu.PROT_NONE
	for _, word := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == ','
	}) {
		switch word {
		case "read", "r":
			prot |= cpu.PROT_READ
		case "write", "w":
			prot |= cpu.PROT_WRITE
		case "exec", "x":
			prot |= cpu.PROT_EXEC
		case "all", "rwx":
			prot |= cpu.PROT_ALL
		case "none", "---":
			// explicit no access
		default:
			// short form: each rune is a flag
			for _, c := range word {
				switch c {
				case 'r':
					prot |= cpu.PROT_READ
				case 'w':
					prot |= cpu.PROT_WRITE
				case 'x':
					prot |= cpu.PROT_EXEC
				case '-':
				default:
					return 0, errors.Errorf("bad permission %q", s)
				}
			}
		}
	}
	return prot, nil
}

// ParseRegion parses the CLI form "name:addr:size:prot[:file]".
func ParseRegion(s string) (*Region, error) {
	parts := strings.SplitN(s, ":", 5)
	if len(parts) < 4 {
		return nil, errors.Errorf("bad region %q (want name:addr:size:prot[:file])", s)
	}
	addr, err := strconv.ParseUint(parts[1], 0, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad region address %q", parts[1])
	}
	size, err := strconv.ParseUint(parts[2], 0, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad region size %q", parts[2])
	}
	prot, err := ParseProt(parts[3])
	if err != nil {
		return nil, err
	}
	r := &Region{Name: parts[0], Addr: addr, Size: size, Prot: prot}
	if len(parts) == 5 {
		r.File = parts[4]
	}
	return r, nil
}
