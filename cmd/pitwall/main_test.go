package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-dir", dataDir}, args...))
	if err := root.Execute(); err != nil {
		t.Fatalf("pitwall %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestSessionCommandsKeepDataApart(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	run(t, dir, "session", "create", "Monaco GP", "--load")
	run(t, dir, "note", "add", "monaco", "Tunnel exit braking", "--type", "strategy")
	run(t, dir, "session", "create", "Spa", "--load")

	if out := run(t, dir, "note", "list"); !strings.Contains(out, "no notes") {
		t.Fatalf("fresh session should have no notes, got %q", out)
	}

	list := run(t, dir, "session", "list")
	var monacoID string
	for _, line := range strings.Split(list, "\n") {
		if strings.Contains(line, "Monaco GP") {
			monacoID = strings.Fields(strings.TrimPrefix(line, "*"))[0]
		}
	}
	if monacoID == "" {
		t.Fatalf("monaco session missing from list:\n%s", list)
	}
	run(t, dir, "session", "load", monacoID)
	if out := run(t, dir, "note", "list"); !strings.Contains(out, "Tunnel exit braking") {
		t.Fatalf("monaco note lost after switching back: %q", out)
	}
}

func TestExportImportThroughCLI(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "export.json")

	run(t, dir, "session", "create", "Silverstone", "--load")
	run(t, dir, "fav", "add", "silverstone")
	if out := run(t, dir, "session", "export", file); !strings.Contains(out, file) {
		t.Fatalf("export should report the written path: %q", out)
	}
	out := run(t, dir, "session", "import", file)
	if !strings.Contains(out, "Imported from") {
		t.Fatalf("unexpected import output %q", out)
	}
}

func TestDemoSessionCannotBeDeleted(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--data-dir", dir, "session", "delete", "demo-session"})
	if err := root.Execute(); err == nil {
		t.Fatalf("deleting the demo session should fail")
	}
}

func TestTeamSessionSwitch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if out := run(t, dir, "team", "list"); !strings.Contains(out, "demo-team") {
		t.Fatalf("demo team missing: %q", out)
	}
	run(t, dir, "team", "session", "switch", "demo-team", "demo-team-session-1")
	if out := run(t, dir, "session", "active"); !strings.Contains(out, "team demo-team session demo-team-session-1") {
		t.Fatalf("unexpected active output %q", out)
	}
	if out := run(t, dir, "note", "list"); !strings.Contains(out, "Qualifying Prep briefing") {
		t.Fatalf("team seed note missing: %q", out)
	}
}
