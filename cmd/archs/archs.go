package archs

import (
	"fmt"

	"github.com/emustep/emustep/arch"
	"github.com/emustep/emustep/cmd"
)

func Main(args []string) {
	for _, name := range arch.Names() {
		a, _ := arch.Get(name)
		fmt.Printf("%-10s %d-bit\n", name, a.Bits)
	}
}

func init() { cmd.Register("archs", "list supported architectures", Main) }
