// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package cat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/platinasystems/coreutils/lang"
	"github.com/platinasystems/url"
)

var (
	ErrUsage    = errors.New("missing file")
	ErrNotFound = errors.New("not found")
)

// InvalidTextError is the panic value for content that isn't UTF-8.
type InvalidTextError struct {
	Path string
}

func (err *InvalidTextError) Error() string {
	return err.Path + ": stream did not contain valid UTF-8"
}

func New() Command { return Command{} }

// Command prints a file to Output, or os.Stdout if nil.
type Command struct {
	Output io.Writer
}

func (Command) String() string { return "cat" }

func (Command) Usage() string {
	return "cat FILE"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "print a file",
		lang.FrFR: "afficher un fichier",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Print the text of FILE followed by a newline.

	FILE may also be a file:// or http(s):// URL.

EXAMPLES
	cat /etc/hostname
	cat http://example.com/index.html`,
	}
}

func (c Command) Main(args ...string) error {
	w := c.Output
	if w == nil {
		w = os.Stdout
	}
	if len(args) == 0 {
		fmt.Fprintln(w, "Enter file name")
		return ErrUsage
	}
	fn := args[0]
	r, err := url.Open(fn)
	if err != nil {
		fmt.Fprint(w, "File ", fn, " not found\n")
		return fmt.Errorf("%s: %w: %v", fn, ErrNotFound, err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		panic(fmt.Errorf("%s: %w", fn, err))
	}
	if !utf8.Valid(b) {
		panic(&InvalidTextError{fn})
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
