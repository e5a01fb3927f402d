// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is a file printing program.
package main

import (
	"os"

	"github.com/platinasystems/coreutils/cmd/cat"
	"github.com/platinasystems/log"
)

func main() {
	if err := cat.New().Main(os.Args[1:]...); err != nil {
		log.Print("err", err)
		os.Exit(1)
	}
}
