package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseArgs(t *testing.T) {
	got, err := execute(t, newParseCmd(), "", "-f", "segments", "STEVE M ASH", "Ash, Steve M.")
	if err != nil {
		t.Fatal(err)
	}
	want := "STEVE M ASH||STEVE||M|ASH|||\n" +
		"Ash, Steve M.||Steve||M.|Ash|||\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStdin(t *testing.T) {
	got, err := execute(t, newParseCmd(), "STEVE M ASH\n\nMadonna\n")
	if err != nil {
		t.Fatal(err)
	}
	want := "STEVE M ASH\nFirst\tSTEVE\nMiddleInitial\tM\nLast\tASH\n\n" +
		"Madonna\nFirst\tMadonna\n\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnknownFormat(t *testing.T) {
	if _, err := execute(t, newParseCmd(), "", "-f", "xml", "Steve Ash"); err == nil {
		t.Error("parse -f xml succeeded")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.txt")
	corpus := "STEVE M ASH||STEVE||M|ASH|||\n" +
		"Madonna||Cher||||||\n"
	if err := os.WriteFile(path, []byte(corpus), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := execute(t, newCheckCmd(), "", path)
	if err == nil {
		t.Fatal("check succeeded with a failing name")
	}
	if !strings.Contains(got, `first: want "Cher", got "Madonna"`) {
		t.Errorf("missing mismatch in output:\n%s", got)
	}
	if !strings.HasSuffix(got, "1/2 names passed\n") {
		t.Errorf("missing summary in output:\n%s", got)
	}
}

func TestConfigOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hnp.yaml")
	if err := os.WriteFile(path, []byte("salutations: [sir]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	configFile = path
	t.Cleanup(func() { configFile = "" })

	got, err := execute(t, newConfigCmd(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "- sir") || strings.Contains(got, "- prof") {
		t.Errorf("config output does not reflect override:\n%s", got)
	}

	got, err = execute(t, newParseCmd(), "", "-f", "segments", "Sir Paul Smith")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Sir Paul Smith||Paul|||Smith||Sir|\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
