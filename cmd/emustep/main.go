package main

import (
	"github.com/emustep/emustep/cmd"

	_ "github.com/emustep/emustep/cmd/archs"
	_ "github.com/emustep/emustep/cmd/repl"
	_ "github.com/emustep/emustep/cmd/run"
)

func main() { cmd.Main() }
