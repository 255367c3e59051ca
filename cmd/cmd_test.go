package cmd

import (
	"bytes"
	"context"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Ernest1338/randlib"
	"github.com/google/uuid"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	// Flag sets keep the positional args of a previous Execute when parsed
	// with none.
	for _, c := range rootCmd.Commands() {
		if err := c.Flags().Parse([]string{"--"}); err != nil {
			t.Fatal(err)
		}
	}
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValues(t *testing.T) {
	out, err := run(t, "values", "--rounds=2")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if want := 2 * (len(valueRows) + 1); len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, out)
	}
	if !strings.HasPrefix(lines[0], "uint MAX:") || !strings.HasPrefix(lines[len(valueRows)], "bool RNG:") {
		t.Errorf("unexpected layout:\n%s", out)
	}
}

func TestValuesTerminal(t *testing.T) {
	saved := isTerminal
	isTerminal = func(int) bool { return true }
	defer func() { isTerminal = saved }()

	f, err := os.CreateTemp(t.TempDir(), "values")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := printValues(f, randlib.MustNew(), 1); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "\t") {
		t.Errorf("terminal output was not aligned:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(valueRows)+1 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for _, l := range lines[1:] {
		if len(l) != len(lines[0]) {
			t.Errorf("columns not aligned:\n%s", out)
			break
		}
	}
}

func TestRange(t *testing.T) {
	out, err := run(t, "range", "3", "9", "--count=200")
	if err != nil {
		t.Fatal(err)
	}
	fields := strings.Fields(out)
	if len(fields) != 200 {
		t.Fatalf("got %d values", len(fields))
	}
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 3 || v > 9 {
			t.Errorf("value %q outside [3, 9]", f)
		}
	}
}

func TestRangeInvalid(t *testing.T) {
	if _, err := run(t, "range", "5", "3", "--count=1"); err == nil {
		t.Error("range 5 3 succeeded")
	}
	if _, err := run(t, "range", "-1", "3", "--count=1"); err == nil {
		t.Error("range -1 3 succeeded")
	}
}

func TestShuffle(t *testing.T) {
	items := []string{"alice", "bob", "carol", "dave"}
	out, err := run(t, append([]string{"shuffle"}, items...)...)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Fields(out)
	slices.Sort(got)
	want := slices.Clone(items)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("shuffle printed %v", got)
	}
}

func TestPick(t *testing.T) {
	out, err := run(t, "pick", "heads", "tails")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "heads" && got != "tails" {
		t.Errorf("pick printed %q", got)
	}
}

func TestPickEmpty(t *testing.T) {
	if _, err := run(t, "pick"); err == nil {
		t.Error("pick with no items succeeded")
	}
}

func TestPickEmptyAfterPick(t *testing.T) {
	if _, err := run(t, "pick", "heads", "tails"); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "pick")
	if err == nil {
		t.Errorf("pick with no items printed %q", out)
	}
	if err := pickCmd.RunE(pickCmd, nil); err == nil {
		t.Error("pick RunE with no items succeeded")
	}
}

func TestUUID(t *testing.T) {
	out, err := run(t, "uuid", "--count=3")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Fields(out)
	if len(lines) != 3 {
		t.Fatalf("got %d UUIDs", len(lines))
	}
	for _, l := range lines {
		id, err := uuid.Parse(l)
		if err != nil {
			t.Fatal(err)
		}
		if id.Version() != 4 || id.Variant() != uuid.RFC4122 {
			t.Errorf("%s: version %d variant %s", id, id.Version(), id.Variant())
		}
	}
}

func TestBenchInvalid(t *testing.T) {
	if _, err := run(t, "bench", "--workers=0", "--duration=10ms"); err == nil {
		t.Error("bench with zero workers succeeded")
	}
	if _, err := run(t, "bench", "--workers=1", "--duration=0s"); err == nil {
		t.Error("bench with zero duration succeeded")
	}
	if _, err := run(t, "bench", "--workers=1", "--duration=20ms"); err != nil {
		t.Errorf("bench: %v", err)
	}
}

func TestRunBench(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	buf := &bytes.Buffer{}
	if err := runBench(ctx, buf, 3); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"worker 0:", "worker 1:", "worker 2:", "total:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}
