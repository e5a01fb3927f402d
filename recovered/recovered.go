// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package recovered provides a command wrapper that returns recovered
// panics as errors prefaced by the command name.
package recovered

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

type Recovered struct{ V }

type V interface {
	Main(...string) error
	String() string
}

func New(v V) Recovered { return Recovered{v} }

// Error is a recovered panic. The panic value is available through
// errors.As and errors.Is if it was an error.
type Error struct {
	Name  string
	Value interface{}
	Stack string
}

func (err *Error) Error() string {
	s := fmt.Sprint(err.Name, ": ", err.Value)
	if len(err.Stack) > 0 {
		s += err.Stack
	}
	return s
}

func (err *Error) Unwrap() error {
	if e, ok := err.Value.(error); ok {
		return e
	}
	return nil
}

// IsPanic reports whether err is a recovered panic.
func IsPanic(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

func (recovered Recovered) Main(args ...string) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e := &Error{Name: recovered.V.String(), Value: r}
		if _, ok := r.(runtime.Error); ok {
			e.Stack = stack()
		}
		err = e
	}()
	return recovered.V.Main(args...)
}

func stack() string {
	buf := new(strings.Builder)
	pc := make([]uintptr, 64)
	n := runtime.Callers(1, pc)
	start := 0
	for i := start; i < n; i++ {
		f := runtime.FuncForPC(pc[i])
		if f.Name() == "runtime.gopanic" ||
			strings.HasSuffix(f.Name(), "runtime.sigpanic") {
			start = i + 1
			break
		}
	}
	for i := start; i < n; i++ {
		f := runtime.FuncForPC(pc[i])
		if f == nil {
			continue
		}
		file, line := f.FileLine(pc[i])
		if i := strings.LastIndex(file, "src/"); i > 0 {
			file = file[i+len("src/"):]
		}
		fmt.Fprint(buf, "\n    ",
			filepath.Base(f.Name()), "()",
			"\n        ", file, ":", line)
	}
	return buf.String()
}
