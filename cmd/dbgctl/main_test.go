package main

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alienth/dbgctl/config"
	"github.com/alienth/dbgctl/dbg"
	"github.com/urfave/cli"
)

func TestWordHelpers(t *testing.T) {
	words := normalize([]string{"The", "cat,", "the", "!", "Hat."})
	if want := []string{"the", "cat", "the", "hat"}; !reflect.DeepEqual(words, want) {
		t.Fatalf("normalize = %v, want %v", words, want)
	}

	if n := sortWords(words); n != 4 {
		t.Errorf("sortWords = %d", n)
	}
	if want := []string{"cat", "hat", "the", "the"}; !reflect.DeepEqual(words, want) {
		t.Errorf("sorted = %v, want %v", words, want)
	}

	counts := countWords(words...)
	if want := map[string]int{"cat": 1, "hat": 1, "the": 2}; !reflect.DeepEqual(counts, want) {
		t.Errorf("countWords = %v, want %v", counts, want)
	}
}

func TestTracedKeepsBehaviour(t *testing.T) {
	for _, now := range []bool{false, true} {
		count := traced(now, "countWords", countWords)
		if got := count("a", "a"); got["a"] != 2 {
			t.Errorf("now=%t: count = %v", now, got)
		}
	}
}

func TestLoadProfile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "dbgctl.toml")

	p, err := loadProfile(missing, config.DefaultProfile, false)
	if err != nil || p != (config.Profile{}) {
		t.Errorf("implicit missing config: %+v, %v", p, err)
	}
	if _, err := loadProfile(missing, config.DefaultProfile, true); err == nil {
		t.Error("explicit missing config: no error")
	}
	if _, err := loadProfile(missing, "verbose", false); !errors.Is(err, config.ErrUnknownProfile) {
		t.Errorf("unknown profile: err = %v", err)
	}

	file := filepath.Join(t.TempDir(), "dbgctl.toml")
	if err := os.WriteFile(file, []byte("[verbose]\ndiff_args = true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err = loadProfile(file, "verbose", true)
	if err != nil || !p.DiffArgs {
		t.Errorf("verbose: %+v, %v", p, err)
	}
}

// runApp runs dbgctl with args and returns what it wrote to stdout and the
// exit code it asked for, if any.
func runApp(t *testing.T, args ...string) (string, int) {
	t.Helper()

	savedExiter, savedErrWriter, savedStd := cli.OsExiter, cli.ErrWriter, *dbg.Std
	code := 0
	cli.OsExiter = func(c int) { code = c }
	cli.ErrWriter = ioutil.Discard
	defer func() {
		cli.OsExiter, cli.ErrWriter, *dbg.Std = savedExiter, savedErrWriter, savedStd
	}()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	savedStdout := os.Stdout
	os.Stdout = w
	runErr := newApp().Run(append([]string{"dbgctl"}, args...))
	os.Stdout = savedStdout
	w.Close()

	out, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if runErr != nil && code == 0 {
		code = -1
	}
	return string(out), code
}

func writeProfiles(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "p.toml")
	body := "[_default_]\nstrip_package_names = true\n\n[verbose]\ndiff_args = true\n"
	if err := os.WriteFile(file, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestProfilesWithUndefinedProfile(t *testing.T) {
	file := writeProfiles(t)

	out, code := runApp(t, "-c", file, "-p", "nosuch", "profiles")
	if code != 0 {
		t.Fatalf("exit code %d, output %q", code, out)
	}
	for _, want := range []string{"_default_", "verbose", "Profile nosuch is not defined."} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestPrintRejectsUndefinedProfile(t *testing.T) {
	file := writeProfiles(t)

	out, code := runApp(t, "-c", file, "-p", "nosuch", "print", "hello")
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if strings.Contains(out, "hello") {
		t.Errorf("printed with an undefined profile: %q", out)
	}

	out, code = runApp(t, "-c", file, "-p", "verbose", "print", "hello")
	if code != 0 || out != "hello\n" {
		t.Errorf("verbose profile: exit %d, output %q", code, out)
	}
}

func TestOutputSettings(t *testing.T) {
	tests := []struct {
		interactive, expand bool
		compact             bool
	}{
		{true, false, false},
		{false, false, true},
		{false, true, false},
		{true, true, false},
	}
	for _, tt := range tests {
		got := outputSettings(dbg.Settings{DiffArgs: true}, tt.interactive, tt.expand)
		if got.Compact != tt.compact || !got.DiffArgs {
			t.Errorf("interactive=%t expand=%t: %+v", tt.interactive, tt.expand, got)
		}
	}

	if !outputSettings(dbg.Settings{Compact: true}, false, true).Compact {
		t.Error("expand cleared a compact profile")
	}
}
