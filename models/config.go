package models

import (
	"io"
	"os"
)

// Config controls output routing for an emulator session.
type Config struct {
	// Trace receives per-instruction disassembly and end-of-run notices.
	Trace io.Writer
	// Log receives mapping, register and hook event notices.
	Log io.Writer

	Color   bool
	Verbose bool
}

// Init fills unset outputs so a zero Config writes to the process
// streams, matching the headless fallback behavior.
func (c *Config) Init() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Trace == nil {
		c.Trace = os.Stdout
	}
	if c.Log == nil {
		c.Log = os.Stderr
	}
	return c
}
