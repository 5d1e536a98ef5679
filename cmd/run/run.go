package run

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/emustep/emustep"
	"github.com/emustep/emustep/cmd"
	"github.com/emustep/emustep/models"
)

type strslice []string

func (s *strslice) String() string {
	return fmt.Sprintf("%v", *s)
}

func (s *strslice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// the default layout matches the assembly scratchpad convention: code
// at 0x1000, stack right above it
var defaultMaps = []string{
	".text:0x1000:0x1000:rwx",
	".stack:0x2000:0x1000:rw",
}

func readLines(path string) ([]string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseRegs(specs []string) (map[string]uint64, error) {
	regs := make(map[string]uint64, len(specs))
	for _, spec := range specs {
		name, val, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("bad register %q (want name=value)", spec)
		}
		n, err := strconv.ParseUint(val, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("bad register value %q: %v", val, err)
		}
		regs[name] = n
	}
	return regs, nil
}

func run(args []string) int {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	archName := fs.String("arch", "x86", "architecture to emulate (list with the archs command)")
	step := fs.Bool("step", false, "single-step, showing register changes per instruction")
	color := fs.Bool("color", false, "colorize output")
	verbose := fs.Bool("v", false, "verbose output")
	var maps strslice
	var regs strslice
	fs.Var(&maps, "map", "map a region as name:addr:size:prot[:file] (repeatable)")
	fs.Var(&regs, "reg", "seed a register as name=value (repeatable)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file.asm]\n\nOptions:\n", args[0])
		fs.PrintDefaults()
	}
	fs.Parse(args[1:])

	fail := func(err error) int {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	path := ""
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	lines, err := readLines(path)
	if err != nil {
		return fail(err)
	}
	if len(lines) == 0 {
		return fail(fmt.Errorf("no instructions to assemble"))
	}

	if len(maps) == 0 {
		maps = defaultMaps
	}
	var regions []*models.Region
	for _, spec := range maps {
		r, err := models.ParseRegion(spec)
		if err != nil {
			return fail(err)
		}
		regions = append(regions, r)
	}
	seed, err := parseRegs(regs)
	if err != nil {
		return fail(err)
	}

	conf := &models.Config{Color: *color, Verbose: *verbose}
	e, err := emustep.New(*archName, conf)
	if err != nil {
		return fail(err)
	}
	defer e.Stop()
	if err := e.MapRegions(regions); err != nil {
		return fail(err)
	}
	if _, err := e.Assemble(lines, true); err != nil {
		return fail(err)
	}
	if err := e.LoadText(); err != nil {
		return fail(err)
	}
	if err := e.SeedRegisters(seed); err != nil {
		return fail(err)
	}

	status := models.StatusDiff{U: e}
	status.Changes(false)
	if *step {
		for e.Status() == emustep.StatusMapped {
			if err := e.Step(); err != nil {
				return fail(err)
			}
			fmt.Printf("%s", status.Changes(true).String(*color))
		}
	} else if err := e.Run(); err != nil {
		return fail(err)
	}
	fmt.Printf("%s", status.Changes(false).String(*color))
	return 0
}

func Main(args []string) {
	os.Exit(run(args))
}

func init() { cmd.Register("run", "assemble and emulate a program", Main) }
