package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emustep/emustep/models"
)

func TestStreamRouting(t *testing.T) {
	var trace, log bytes.Buffer
	s := NewStream(&models.Config{Trace: &trace, Log: &log})
	s.Trace("0x1000: nop")
	s.Log("mapped .text")
	s.OnFinished()

	if trace.String() != "0x1000: nop\n" {
		t.Fatalf("trace stream got %q", trace.String())
	}
	if log.String() != "mapped .text\n" {
		t.Fatalf("log stream got %q", log.String())
	}
}

func TestStreamNoColorOnBuffers(t *testing.T) {
	var trace, log bytes.Buffer
	// color requested, but a bytes.Buffer is not a terminal
	s := NewStream(&models.Config{Trace: &trace, Log: &log, Color: true})
	s.Trace("line")
	if strings.Contains(trace.String(), "\x1b[") {
		t.Fatalf("unexpected escape codes in %q", trace.String())
	}
}
