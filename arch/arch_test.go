package arch

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/emustep/emustep/models"
)

func TestGet(t *testing.T) {
	for _, name := range Names() {
		a, err := Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if a.Name != name {
			t.Fatalf("arch %q registered under %q", a.Name, name)
		}
		if a.Cpu == nil || a.Dis == nil || a.Asm == nil {
			t.Fatalf("arch %q is missing a backend", name)
		}
		if a.Bits == 0 || a.PC == 0 || a.SP == 0 {
			t.Fatalf("arch %q has an incomplete description", name)
		}
		if len(a.Regs) == 0 {
			t.Fatalf("arch %q has no register table", name)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("pdp11"); !errors.Is(err, models.ErrUnsupportedArch) {
		t.Fatalf("expected ErrUnsupportedArch, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(archMap) {
		t.Fatal("Names() dropped an arch")
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	// natural order: x86_16 sorts before x86_64
	if index["x86_16"] > index["x86_64"] {
		t.Fatalf("unexpected order: %v", names)
	}
	if index["mips"] > index["mipsbe"] || index["mips64"] > index["mips64be"] {
		t.Fatalf("unexpected order: %v", names)
	}
}
