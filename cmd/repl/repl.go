package repl

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/shibukawa/configdir"

	"github.com/emustep/emustep"
	"github.com/emustep/emustep/cmd"
	"github.com/emustep/emustep/models"
	"github.com/emustep/emustep/models/cpu"
)

var replMaps = []*models.Region{
	{Name: ".text", Addr: 0x1000, Size: 0x10000, Prot: cpu.PROT_ALL},
	{Name: ".stack", Addr: 0x80000, Size: 0x10000, Prot: cpu.PROT_READ | cpu.PROT_WRITE},
}

// historyPath finds a per-user cache location for repl history.
func historyPath() string {
	configDirs := configdir.New("emustep", "repl")
	cacheDir := configDirs.QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cacheDir.Path, "history")
}

func repl(args []string) int {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	archName := fs.String("arch", "x86", "architecture to emulate")
	color := fs.Bool("color", true, "colorize register changes")
	fs.Parse(args[1:])

	fail := func(err error) int {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// repl traffic goes to the log stream only; the register diff
	// replaces the instruction trace
	conf := &models.Config{Trace: io.Discard, Color: *color}
	e, err := emustep.New(*archName, conf)
	if err != nil {
		return fail(err)
	}
	defer e.Stop()
	if err := e.MapRegions(replMaps); err != nil {
		return fail(err)
	}
	if err := e.SeedRegisters(nil); err != nil {
		return fail(err)
	}

	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "\n",
		HistoryFile:     historyPath(),
	})
	if err != nil {
		return fail(err)
	}
	defer rl.Close()

	status := models.StatusDiff{U: e}
	fmt.Printf("%s", status.Changes(false).String(*color))

	addr := e.Start()
	for {
		rl.SetPrompt(fmt.Sprintf("0x%x> ", addr))
		line, err := rl.Readline()
		if err != nil {
			// interrupt or EOF ends the session
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".regs" {
			fmt.Printf("%s", status.Changes(false).String(*color))
			continue
		}
		if line == ".maps" {
			for _, r := range e.Regions() {
				fmt.Println(r)
			}
			continue
		}

		e.SetStart(addr)
		if _, err := e.Assemble([]string{line}, true); err != nil {
			fmt.Fprintf(os.Stderr, "asm err: %v\n", err)
			continue
		}
		code := e.Code()
		if err := e.MemWrite(addr, code); err != nil {
			fmt.Fprintf(os.Stderr, "write err: %v\n", err)
			continue
		}
		if err := e.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "exec err: %v\n", err)
		} else {
			addr += uint64(len(code))
		}
		fmt.Printf("%s", status.Changes(true).String(*color))
	}
	fmt.Printf("\n%s", status.Changes(false).String(*color))
	return 0
}

func Main(args []string) {
	os.Exit(repl(args))
}

func init() { cmd.Register("repl", "interactive assembly console", Main) }
