package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestEntryFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Disable()

	EnableDebugModules(ModCli.Mask())
	defer DisableDebugModules(ModCli.Mask())

	ModCli.WithFields(Fields{"path": "dmg.toml"}).Debug("building bus")
	ModCli.WithField("hz", 60).Debug("running")

	out := buf.String()
	for _, want := range []string{"building bus", "dmg.toml", "running", "_mod=cli"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q misses %q", out, want)
		}
	}
}

func TestEntryModuleMask(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Disable()

	// Debug entries of a module outside the mask are dropped; errors
	// always pass.
	ModBus.Debugf("not me")
	ModBus.Errorf("but me")

	out := buf.String()
	if strings.Contains(out, "not me") {
		t.Fatalf("masked debug entry emitted: %q", out)
	}
	if !strings.Contains(out, "but me") {
		t.Fatalf("error entry dropped: %q", out)
	}
}

func TestEntryZFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Disable()

	ModBus.ErrorZ("bad access").
		String("bus", "main").
		Hex16("addr", 0xBEEF).
		End()

	out := buf.String()
	for _, want := range []string{"bad access", "main", "beef"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q misses %q", out, want)
		}
	}
}

func TestEntryZDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Disable()

	// A disabled module/level yields a nil entry; the whole chain must
	// stay a no-op.
	ModBus.DebugZ("nope").Hex16("addr", 0x1234).End()

	if out := buf.String(); out != "" {
		t.Fatalf("disabled entry emitted: %q", out)
	}
}
