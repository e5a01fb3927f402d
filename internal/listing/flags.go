// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package listing

import (
	"strings"

	"github.com/platinasystems/coreutils/internal/style"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
)

// Flags is the listing configuration of a single invocation.
type Flags struct {
	Format     Format
	ShowHidden bool
	Color      style.Mode
}

// DefaultFlags lists horizontally, without hidden entries, and colors
// only on a terminal.
func DefaultFlags() Flags {
	return Flags{
		Format:     Horizontal,
		ShowHidden: false,
		Color:      style.Auto,
	}
}

// Parse returns the Flags of a full argument list, where argv[0] is the
// program name and argv[1] the target directory. Options are only
// recognized if there is at least one argument beyond the target.
//
//	-l	long format
//	-h	show hidden entries
//	-color=auto|always|never
//
// Options must be whole tokens; "-lh" and "-color never" are ignored like
// anything else unrecognized. The given slice is not modified.
func Parse(argv []string) Flags {
	f := DefaultFlags()
	if len(argv) <= 2 {
		return f
	}
	var opts, assigns []string
	for _, arg := range argv[1:] {
		switch {
		case strings.HasPrefix(arg, "-color="):
			assigns = append(assigns, arg)
		case len(arg) > 2 && strings.HasPrefix(arg, "-"):
			// the flags parser would split these into clusters
		default:
			opts = append(opts, arg)
		}
	}
	parm, _ := parms.New(assigns, "-color")
	flag, _ := flags.New(opts, "-l", "-h")
	if flag.ByName["-l"] {
		f.Format = Long
	}
	if flag.ByName["-h"] {
		f.ShowHidden = true
	}
	if m, ok := style.ParseMode(parm.ByName["-color"]); ok {
		f.Color = m
	}
	return f
}
