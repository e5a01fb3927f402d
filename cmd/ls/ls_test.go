// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ls

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/platinasystems/coreutils/internal/listing"
	"github.com/platinasystems/coreutils/recovered"
)

func mkfixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"),
		[]byte("0123456789"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), nil,
		0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func (c Command) testMain(t *testing.T, expected error,
	args ...string) string {
	t.Helper()
	buf := new(strings.Builder)
	c.Output = buf
	err := c.Main(args...)
	if !errors.Is(err, expected) {
		r := "success"
		if err != nil {
			r = err.Error()
		}
		x := "success"
		if expected != nil {
			x = expected.Error()
		}
		t.Errorf("%s Main(%v) failed: returned %s [expected %s]",
			c.String(), args, r, x)
	}
	return buf.String()
}

func fields(s string) map[string]bool {
	m := make(map[string]bool)
	for _, name := range strings.Fields(s) {
		m[name] = true
	}
	return m
}

func TestUsage(t *testing.T) {
	if got := New().testMain(t, ErrUsage); got != "Enter directory name\n" {
		t.Errorf("%q", got)
	}
}

func TestNotDirectory(t *testing.T) {
	dir := mkfixture(t)
	for _, dn := range []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "missing"),
	} {
		got := New().testMain(t, ErrNotDirectory, dn, "-l")
		if want := dn + " is not a directory\n"; got != want {
			t.Errorf("%q != %q", got, want)
		}
	}
}

func TestHorizontal(t *testing.T) {
	dir := mkfixture(t)
	got := New().testMain(t, nil, dir)
	if strings.HasSuffix(got, "\n") {
		t.Errorf("trailing newline: %q", got)
	}
	if m := fields(got); len(m) != 2 || !m["a.txt"] || !m["sub"] {
		t.Errorf("%q", got)
	}
	got = New().testMain(t, nil, dir, "-h")
	if m := fields(got); len(m) != 3 || !m[".hidden"] {
		t.Errorf("%q", got)
	}
	if n := strings.Count(got, " "); n != 2 {
		t.Errorf("%d spaces: %q", n, got)
	}
}

func TestLong(t *testing.T) {
	dir := mkfixture(t)
	got := New().testMain(t, nil, dir, "-l")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("%d lines: %q", len(lines), got)
	}
	want := fmt.Sprintf("%10s %10d %20s", "", 10, "a.txt")
	found := false
	for _, line := range lines {
		if line == want {
			found = true
		}
		if strings.Contains(line, ".hidden") {
			t.Error("hidden listed:", line)
		}
	}
	if !found {
		t.Errorf("missing %q in %q", want, got)
	}
}

func TestFlagOrder(t *testing.T) {
	dir := mkfixture(t)
	lh := New().testMain(t, nil, dir, "-l", "-h")
	hl := New().testMain(t, nil, dir, "-h", "-l")
	if lh != hl {
		t.Errorf("%q != %q", lh, hl)
	}
	if n := strings.Count(lh, "\n"); n != 3 {
		t.Errorf("%d lines: %q", n, lh)
	}
}

func TestIgnoredFlags(t *testing.T) {
	dir := mkfixture(t)
	want := New().testMain(t, nil, dir)
	if got := New().testMain(t, nil, dir, "-x", "--all", "-lh", "-color"); got != want {
		t.Errorf("%q != %q", got, want)
	}
}

func TestColorAlways(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	got := New().testMain(t, nil, dir, "-color=always")
	if want := "\033[35msub\033[0m"; got != want {
		t.Errorf("%q != %q", got, want)
	}
}

func TestReadDirFailure(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions not enforced")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0755)
	buf := new(strings.Builder)
	err := recovered.New(Command{Output: buf}).Main(dir)
	var ee *listing.EntryError
	if !errors.As(err, &ee) || ee.Op != "readdir" {
		t.Fatalf("%T: %v", err, err)
	}
	if recovered.IsPanic(err) {
		t.Error("readdir failure panicked:", err)
	}
	if got, want := buf.String(), err.Error()+"\n"; got != want {
		t.Errorf("%q != %q", got, want)
	}
}

func TestEntryInfoFailure(t *testing.T) {
	dir := mkfixture(t)
	errInfo := errors.New("info failure")
	defer func(f func(fs.DirEntry) (fs.FileInfo, error)) {
		listing.EntryInfo = f
	}(listing.EntryInfo)
	listing.EntryInfo = func(de fs.DirEntry) (fs.FileInfo, error) {
		if de.Name() == "a.txt" {
			return nil, errInfo
		}
		return de.Info()
	}
	for _, args := range [][]string{
		{dir},
		{dir, "-l", "-h"},
	} {
		buf := new(strings.Builder)
		err := recovered.New(Command{Output: buf}).Main(args...)
		if !recovered.IsPanic(err) {
			t.Fatalf("%v: not a panic: %v", args, err)
		}
		var ee *listing.EntryError
		if !errors.As(err, &ee) || ee.Op != "stat" {
			t.Fatalf("%v: %T: %v", args, err, err)
		}
		if !errors.Is(err, errInfo) {
			t.Errorf("%v: %v", args, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%v: partial output %q", args, buf.String())
		}
	}
}

func ExampleCommand() {
	c := New()
	fmt.Println(c)
	fmt.Println(c.Usage())
	fmt.Println(c.Apropos())
	// Output:
	// ls
	// ls DIRECTORY [OPTION]...
	// list directory contents
}
