package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/idelchi/slackspace/internal/slackspace"
	"github.com/idelchi/slackspace/internal/walk"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	err = New("v1.2.3").Run(args, &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestNormalizeArgs(t *testing.T) {
	got := normalizeArgs([]string{"/s", "/S", "/home", "-s", "*.go"})
	want := []string{"-s", "-s", "/home", "-s", "*.go"}

	if !slices.Equal(got, want) {
		t.Fatalf("normalizeArgs = %v, want %v", got, want)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too many positionals", []string{"a", "b", "c"}},
		{"unknown flag", []string{"--bogus"}},
		{"unknown shorthand", []string{"-x"}},
		{"bad output", []string{"-o", "xml"}},
		{"bad engine", []string{"--engine", "nope"}},
		{"negative workers", []string{"-j", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}

			if !strings.Contains(stderr, "Usage:") {
				t.Fatalf("expected usage on stderr, got %q", stderr)
			}
		})
	}
}

func TestRun_ScanFailureHasNoUsage(t *testing.T) {
	_, stderr, err := run(t, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected an error")
	}

	if strings.Contains(stderr, "Usage:") {
		t.Fatalf("did not expect usage for a scan failure, got %q", stderr)
	}
}

func TestRun_Version(t *testing.T) {
	stdout, _, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}

	if strings.TrimSpace(stdout) != "v1.2.3" {
		t.Fatalf("unexpected version output %q", stdout)
	}
}

func TestRun_JSON(t *testing.T) {
	root := t.TempDir()

	for name, size := range map[string]int{"a.txt": 100, "b.txt": 5000, "c.bin": 7} {
		if err := os.WriteFile(filepath.Join(root, name), make([]byte, size), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for _, args := range [][]string{
		{"-o", "json", root, "*.txt"},
		{"/s", "-o", "json", root, "*.txt"},
		{"-o", "JSON", root, "*.txt"},
		{"-o", "json", "-e", walk.FastWalkEngine, "-j", "2", root, "*.txt"},
	} {
		stdout, stderr, err := run(t, args...)
		if err != nil {
			t.Fatalf("%v: %v (stderr: %s)", args, err, stderr)
		}

		var stats slackspace.Stats
		if err := json.Unmarshal([]byte(stdout), &stats); err != nil {
			t.Fatalf("%v: decoding output: %v\n%s", args, err, stdout)
		}

		if stats.Files != 2 || stats.Used != 5100 {
			t.Fatalf("%v: files=%d used=%d, want 2 and 5100", args, stats.Files, stats.Used)
		}

		if stats.ClusterSize == 0 {
			t.Fatalf("%v: expected a cluster size", args)
		}

		want := slackspace.Waste(100, stats.ClusterSize) + slackspace.Waste(5000, stats.ClusterSize)
		if stats.Wasted != want {
			t.Fatalf("%v: wasted=%d, want %d", args, stats.Wasted, want)
		}
	}
}

func TestPrintTable(t *testing.T) {
	pct := 62.75

	stats := &slackspace.Stats{
		Root:          "/data",
		Pattern:       "*",
		Engine:        walk.ForkJoinEngine,
		Mode:          walk.Sequential,
		ClusterSize:   4096,
		Capacity:      1 << 30,
		Counts:        slackspace.Counts{Files: 3, Used: 15100, Wasted: 9476},
		WastedPercent: &pct,
		Skipped:       2,
		Elapsed:       time.Second,
	}

	var buf bytes.Buffer
	if err := PrintTable(stats, &buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"forkjoin, sequential",
		"4.0 KiB (4096 bytes)",
		"1.0 GiB (1073741824 bytes)",
		"Files examined:",
		"15 KiB (15100 bytes)",
		"9.3 KiB (9476 bytes)",
		"62.75% of space in use",
		"Skipped entries:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	stats.WastedPercent = nil
	stats.Skipped = 0
	buf.Reset()

	if err := PrintTable(stats, &buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "n/a") {
		t.Errorf("expected n/a without a percentage:\n%s", buf.String())
	}

	if strings.Contains(buf.String(), "Skipped entries:") {
		t.Errorf("did not expect skipped entries:\n%s", buf.String())
	}
}
