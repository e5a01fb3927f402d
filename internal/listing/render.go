// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package listing

import (
	"fmt"
	"io"

	"github.com/platinasystems/coreutils/internal/style"
)

const ReadOnlyMark = "Read-Only"

// Include reports whether e should be listed with the given flags.
func Include(e Entry, f Flags) bool {
	return !e.Hidden || f.ShowHidden
}

func Classify(e Entry) style.Tag {
	switch e.Kind {
	case KindDir:
		return style.Directory
	case KindFile:
		return style.File
	}
	return style.Other
}

// Render writes the included entries to w in the selected format.
// Formats without a renderer panic with *NotImplementedError.
func Render(w io.Writer, entries []Entry, f Flags, s *style.Styler) error {
	switch f.Format {
	case Long:
		return long(w, entries, f, s)
	case Horizontal:
		return horizontal(w, entries, f, s)
	}
	panic(&NotImplementedError{f.Format})
}

// One line per entry of right aligned read-only mark, size, and name.
func long(w io.Writer, entries []Entry, f Flags, s *style.Styler) error {
	for _, e := range entries {
		if !Include(e, f) {
			continue
		}
		ro := ""
		if e.ReadOnly {
			ro = ReadOnlyMark
		}
		name := s.Apply(Classify(e), fmt.Sprintf("%20s", e.Name))
		if _, err := fmt.Fprintf(w, "%10s %10d %s\n", ro, e.Size,
			name); err != nil {
			return err
		}
	}
	return nil
}

// Space separated names without a trailing newline.
func horizontal(w io.Writer, entries []Entry, f Flags, s *style.Styler) error {
	count := 0
	for _, e := range entries {
		if !Include(e, f) {
			continue
		}
		if count != 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w,
			s.Apply(Classify(e), e.Name)); err != nil {
			return err
		}
		count++
	}
	return nil
}
