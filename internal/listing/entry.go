// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package listing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Kind uint8

const (
	KindOther Kind = iota
	KindFile
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	}
	return "other"
}

// Entry is the metadata of one directory item as read from the filesystem.
type Entry struct {
	Path     string
	Name     string
	Kind     Kind
	Size     int64
	Hidden   bool
	ReadOnly bool
}

// EntryError records the first failure of Read.
type EntryError struct {
	Op   string
	Path string
	Err  error
}

func (err *EntryError) Error() string {
	return fmt.Sprintf("%s %s: %v", err.Op, err.Path, err.Err)
}

func (err *EntryError) Unwrap() error { return err.Err }

// EntryInfo reads the unfollowed metadata of each directory entry.
var EntryInfo = fs.DirEntry.Info

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Read returns the immediate entries of dir in the order given by the
// filesystem. It stops at the first directory or metadata read failure.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &EntryError{"readdir", dir, err}
	}
	defer f.Close()
	des, err := f.ReadDir(-1)
	if err != nil {
		return nil, &EntryError{"readdir", dir, err}
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		path := filepath.Join(dir, de.Name())
		fi, err := EntryInfo(de)
		if err != nil {
			return nil, &EntryError{"stat", path, err}
		}
		entries = append(entries, NewEntry(path, fi))
	}
	return entries, nil
}

// NewEntry derives an Entry from unfollowed (lstat) file info.
func NewEntry(path string, fi fs.FileInfo) Entry {
	e := Entry{
		Path:     path,
		Name:     fi.Name(),
		Size:     fi.Size(),
		Hidden:   IsHidden(fi.Name(), fi),
		ReadOnly: fi.Mode().Perm()&0222 == 0,
	}
	switch {
	case fi.Mode().IsDir():
		e.Kind = KindDir
	case fi.Mode().IsRegular():
		e.Kind = KindFile
	}
	return e
}
