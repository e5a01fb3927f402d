// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package ls

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/platinasystems/coreutils/internal/listing"
	"github.com/platinasystems/coreutils/internal/style"
	"github.com/platinasystems/coreutils/lang"
)

var (
	ErrUsage        = errors.New("missing directory")
	ErrNotDirectory = errors.New("not a directory")
)

func New() Command { return Command{} }

// Command lists a directory to Output, or os.Stdout if nil.
type Command struct {
	Output io.Writer
}

func (Command) String() string { return "ls" }

func (Command) Usage() string {
	return "ls DIRECTORY [OPTION]..."
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "list directory contents",
		lang.FrFR: "lister le contenu d'un répertoire",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	List the entries of DIRECTORY in the order given by the filesystem.
	Names are colored by kind: directories magenta, regular files green,
	and anything else red.

	Options are only recognized after DIRECTORY.

OPTIONS
	-l	long listing of read-only mark, size, and name
	-h	include hidden entries
	-color=WHEN
		auto (default), always, or never`,
	}
}

func (c Command) Main(args ...string) error {
	w := c.Output
	if w == nil {
		w = os.Stdout
	}
	if len(args) == 0 {
		fmt.Fprintln(w, "Enter directory name")
		return ErrUsage
	}
	flags := listing.Parse(append([]string{c.String()}, args...))
	dn := args[0]
	if !listing.IsDir(dn) {
		fmt.Fprintln(w, dn, "is not a directory")
		return fmt.Errorf("%s: %w", dn, ErrNotDirectory)
	}
	entries, err := listing.Read(dn)
	if err != nil {
		var ee *listing.EntryError
		if errors.As(err, &ee) && ee.Op == "stat" {
			panic(err)
		}
		fmt.Fprintln(w, err)
		return err
	}
	return listing.Render(w, entries, flags, style.New(w, flags.Color))
}
