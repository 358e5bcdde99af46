// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !windows

package conio

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// errNoUnitIO guards the UTF-16 primitives, which no posix-ish platform has.
var errNoUnitIO = fmt.Errorf("conio: no utf-16 console on this platform: %w", errors.ErrUnsupported)

// unixSystem implements System over plain byte syscalls. Posix-ish terminals
// are byte-oriented, so nothing here ever classifies as a UTF-16 console and
// the transcoding path stays dormant.
type unixSystem struct{}

// DefaultSystem returns the native primitive surface for this platform.
func DefaultSystem() System { return unixSystem{} }

func (unixSystem) Lookup(stream Stream) (Grip, error) {
	switch stream {
	case StreamInput:
		return Grip(0), nil
	case StreamOutput:
		return Grip(1), nil
	case StreamError:
		return Grip(2), nil
	default:
		return 0, errUnknownStream
	}
}

func (unixSystem) IsConsole(Grip) bool { return false }

func (unixSystem) ReadUnits(Grip, []uint16, uint32) (int, error) {
	return 0, errNoUnitIO
}

func (unixSystem) WriteUnits(Grip, []uint16) (int, error) {
	return 0, errNoUnitIO
}

func (unixSystem) ReadBytes(g Grip, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(int(g), p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, EOF
		}
		return n, nil
	}
}

func (unixSystem) WriteBytes(g Grip, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Write(int(g), p)
		if err == unix.EINTR {
			continue
		}
		if n < 0 {
			n = 0
		}
		return n, err
	}
}
