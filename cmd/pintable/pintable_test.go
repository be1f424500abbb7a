package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"eeprombus-go/errcode"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLookup(t *testing.T) {
	out, err := run(t, "lookup", "address", "13")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if strings.TrimSpace(out) != "address13 pin=11 ic=IC1 addr=0x24" {
		t.Fatalf("lookup output %q", out)
	}
	out, err = run(t, "lookup", "data", "2")
	if err != nil || strings.TrimSpace(out) != "data2 pin=14 ic=IC2 addr=0x26" {
		t.Fatalf("lookup data 2: %q, %v", out, err)
	}
}

func TestLookupErrors(t *testing.T) {
	if _, err := run(t, "lookup", "address", "19"); !errors.Is(err, errcode.OutOfRange) {
		t.Fatalf("address 19: %v", err)
	}
	if _, err := run(t, "lookup", "data", "--", "-1"); !errors.Is(err, errcode.OutOfRange) {
		t.Fatalf("data -1: %v", err)
	}
	if _, err := run(t, "lookup", "bogus", "1"); !errors.Is(err, errcode.UnknownRole) {
		t.Fatalf("bogus role: %v", err)
	}
	if _, err := run(t, "lookup", "data", "x"); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("bad index: %v", err)
	}
}

func TestDumpJSON(t *testing.T) {
	out, err := run(t, "dump", "--json")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	var rows []entry
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 19+8+3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0] != (entry{"address", 0, 11, "IC2"}) {
		t.Fatalf("first row %+v", rows[0])
	}
	if rows[19] != (entry{"data", 0, 12, "IC2"}) {
		t.Fatalf("first data row %+v", rows[19])
	}
	if last := rows[len(rows)-1]; last != (entry{"we", 2, 14, "none"}) {
		t.Fatalf("last row %+v", last)
	}
}

func TestDumpRoleFilter(t *testing.T) {
	out, err := run(t, "dump", "--role", "control")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[0], "ROLE") {
		t.Fatalf("control table:\n%s", out)
	}
	if _, err := run(t, "dump", "--role", "clock"); !errors.Is(err, errcode.UnknownRole) {
		t.Fatalf("unknown role: %v", err)
	}
}

func TestFrame(t *testing.T) {
	out, err := run(t, "frame", "0x100")
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	want := "IC1 value=0x0400 mask=0x3f40\nIC2 value=0x0000 mask=0x0fff\n"
	if out != want {
		t.Fatalf("frame output %q want %q", out, want)
	}
	if _, err := run(t, "frame", "524288"); !errors.Is(err, errcode.OutOfRange) {
		t.Fatalf("frame 1<<19: %v", err)
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "-v", "check")
	if err != nil || strings.TrimSpace(out) != "ok" {
		t.Fatalf("check: %q, %v", out, err)
	}
}

func TestDumpRoleAliases(t *testing.T) {
	for role, rows := range map[string]int{"addr": 19, "Address": 19, "d": 8, "DATA": 8, "control": 3} {
		out, err := run(t, "dump", "--json", "--role", role)
		if err != nil {
			t.Fatalf("dump --role %s: %v", role, err)
		}
		var got []entry
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != rows {
			t.Fatalf("dump --role %s: %d rows want %d", role, len(got), rows)
		}
	}
}

func TestLookupErrorKeepsCause(t *testing.T) {
	_, err := run(t, "lookup", "data", "x")
	if err == nil || !strings.Contains(err.Error(), "invalid syntax") {
		t.Fatalf("lookup data x: %v", err)
	}
}

func TestVerboseDoesNotLeak(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	if _, err := run(t, "-v", "check"); err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("level after -v: %v", log.GetLevel())
	}
	if _, err := run(t, "check"); err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != log.InfoLevel {
		t.Fatalf("level after plain run: %v", log.GetLevel())
	}
}
