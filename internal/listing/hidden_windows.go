// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package listing

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsHidden tests the native hidden attribute; the name is unused.
func IsHidden(name string, fi fs.FileInfo) bool {
	if fi == nil {
		return false
	}
	sys, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok || sys == nil {
		return false
	}
	return sys.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
