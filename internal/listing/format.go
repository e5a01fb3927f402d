// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package listing

import "fmt"

type Format uint8

const (
	Long Format = iota
	Commas
	Horizontal
	Vertical
)

func (f Format) String() string {
	switch f {
	case Long:
		return "long"
	case Commas:
		return "commas"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprint("format(", uint8(f), ")")
}

// NotImplementedError is the panic value for a format without a renderer.
type NotImplementedError struct {
	Format Format
}

func (err *NotImplementedError) Error() string {
	return fmt.Sprint(err.Format, " format: not implemented")
}
