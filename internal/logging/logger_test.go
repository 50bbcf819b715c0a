// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestSetDebug_TogglesDebugOutput verifies that Debugf output is filtered at
// the default level and emitted once SetDebug(true) raises the logger level.
// The test swaps `L` with a buffer-backed logger and restores it afterwards.
func TestSetDebug_TogglesDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	defer func() {
		L = prev
		SetDebug(false)
	}()

	Debugf("quiet %s", "one")
	if buf.Len() != 0 {
		t.Fatalf("debug output emitted at default level: %s", buf.String())
	}

	SetDebug(true)
	Debugf("loud %s", "two")
	if !strings.Contains(buf.String(), "loud two") {
		t.Fatalf("missing debug output after SetDebug(true); got: %s", buf.String())
	}

	SetDebug(false)
	buf.Reset()
	Debugf("quiet %s", "three")
	if buf.Len() != 0 {
		t.Fatalf("debug output emitted after SetDebug(false): %s", buf.String())
	}
}

// TestLoggingHelpers_WriteToBuffer verifies the package helper functions write
// formatted messages to the package-level logger `L`.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %s", want, out)
		}
	}
}
