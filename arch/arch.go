// Package arch is the registry of every machine emustep can emulate.
// Each sub-package describes one architecture flavor and is looked up
// here by name.
package arch

import (
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"
	"github.com/pkg/errors"

	"github.com/emustep/emustep/arch/arm"
	"github.com/emustep/emustep/arch/arm64"
	"github.com/emustep/emustep/arch/mips"
	"github.com/emustep/emustep/arch/mips64"
	"github.com/emustep/emustep/arch/ppc"
	"github.com/emustep/emustep/arch/ppc64"
	"github.com/emustep/emustep/arch/sparc"
	"github.com/emustep/emustep/arch/sparc64"
	"github.com/emustep/emustep/arch/x86"
	"github.com/emustep/emustep/arch/x86_16"
	"github.com/emustep/emustep/arch/x86_64"
	"github.com/emustep/emustep/models"
)

var archMap = map[string]*models.Arch{
	"x86_16":     x86_16.Arch,
	"x86_16:att": x86_16.ArchATT,
	"x86":        x86.Arch,
	"x86:att":    x86.ArchATT,
	"x86_64":     x86_64.Arch,
	"x86_64:att": x86_64.ArchATT,

	"arm":     arm.Arch,
	"armbe":   arm.ArchBE,
	"thumb":   arm.ArchThumb,
	"thumbbe": arm.ArchThumbBE,
	"arm64":   arm64.Arch,

	"mips":     mips.Arch,
	"mipsbe":   mips.ArchBE,
	"mips64":   mips64.Arch,
	"mips64be": mips64.ArchBE,

	"ppc":   ppc.Arch,
	"ppc64": ppc64.Arch,

	"sparc":   sparc.Arch,
	"sparc64": sparc64.Arch,
}

// Get looks an architecture up by name ("x86_64", "thumbbe",
// "x86:att", ...).
func Get(name string) (*models.Arch, error) {
	if a, ok := archMap[name]; ok {
		return a, nil
	}
	return nil, errors.Wrapf(models.ErrUnsupportedArch, "arch %q", name)
}

// Names returns every registered architecture name in natural order.
func Names() []string {
	names := make([]string, 0, len(archMap))
	for name := range archMap {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return sortorder.NaturalLess(names[i], names[j]) })
	return names
}
