// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package style colors entry names by their classification tag.
package style

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/colorstring"
)

type Tag uint8

const (
	Other Tag = iota
	File
	Directory
)

func (tag Tag) String() string {
	switch tag {
	case File:
		return "file"
	case Directory:
		return "directory"
	}
	return "other"
}

// Mode selects when color escapes are emitted.
type Mode uint8

const (
	Auto Mode = iota
	Always
	Never
)

var ModeByName = map[string]Mode{
	"auto":   Auto,
	"always": Always,
	"never":  Never,
}

func (m Mode) String() string {
	for k, v := range ModeByName {
		if v == m {
			return k
		}
	}
	return "unknown"
}

// ParseMode returns Auto and false for unknown names.
func ParseMode(s string) (Mode, bool) {
	m, found := ModeByName[s]
	return m, found
}

var colorByTag = map[Tag]string{
	Directory: "[magenta]",
	File:      "[green]",
	Other:     "[red]",
}

type Styler struct {
	c colorstring.Colorize
}

// New returns a Styler for output to w. In Auto mode, color is enabled only
// if w is a terminal.
func New(w io.Writer, m Mode) *Styler {
	disable := true
	switch m {
	case Always:
		disable = false
	case Auto:
		if f, ok := w.(*os.File); ok {
			fd := f.Fd()
			disable = !isatty.IsTerminal(fd) &&
				!isatty.IsCygwinTerminal(fd)
		}
	}
	return &Styler{
		c: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: disable,
		},
	}
}

// Apply wraps text with the tag's color. The text itself is never parsed
// for color markup.
func (s *Styler) Apply(tag Tag, text string) string {
	if s == nil || s.c.Disable {
		return text
	}
	code, found := colorByTag[tag]
	if !found {
		code = colorByTag[Other]
	}
	return s.c.Color(code) + text + s.c.Color("[reset]")
}
