// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

//go:build !windows

package listing

import (
	"io/fs"
	"strings"
)

// IsHidden follows the dotfile convention where there's no native hidden
// attribute.
func IsHidden(name string, _ fs.FileInfo) bool {
	return strings.HasPrefix(name, ".")
}
