// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package conio

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsSystem implements System over the Win32 console and file APIs.
type windowsSystem struct{}

// DefaultSystem returns the native primitive surface for this platform.
func DefaultSystem() System { return windowsSystem{} }

func (windowsSystem) Lookup(stream Stream) (Grip, error) {
	var id uint32
	switch stream {
	case StreamInput:
		id = windows.STD_INPUT_HANDLE
	case StreamOutput:
		id = windows.STD_OUTPUT_HANDLE
	case StreamError:
		id = windows.STD_ERROR_HANDLE
	default:
		return 0, errUnknownStream
	}
	h, err := windows.GetStdHandle(id)
	if err != nil {
		return 0, err
	}
	if h == windows.InvalidHandle || h == 0 {
		return 0, windows.ERROR_INVALID_HANDLE
	}
	return Grip(h), nil
}

func (windowsSystem) IsConsole(g Grip) bool {
	// GetConsoleMode fails on anything that is not a Windows Console (the
	// reported mode itself is irrelevant). Pipes, files and MSYS-style
	// terminals all fail here, which is exactly right: only the Windows
	// Console needs UTF-16 transcoding.
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(g), &mode) == nil
}

// readConsoleControl mirrors CONSOLE_READCONSOLE_CONTROL. The wakeup mask
// makes ReadConsoleW return not only on \r\n but also on masked control
// characters such as Ctrl-Z.
type readConsoleControl struct {
	length          uint32
	initialChars    uint32
	ctrlWakeupMask  uint32
	controlKeyState uint32
}

func (windowsSystem) ReadUnits(g Grip, buf []uint16, wakeupMask uint32) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	ctl := readConsoleControl{
		length:         uint32(unsafe.Sizeof(readConsoleControl{})),
		ctrlWakeupMask: wakeupMask,
	}
	var read uint32
	err := windows.ReadConsole(windows.Handle(g), &buf[0], uint32(len(buf)),
		&read, (*byte)(unsafe.Pointer(&ctl)))
	if err != nil {
		return 0, err
	}
	n := int(read)
	// A trailing Ctrl-Z is the end-of-stream marker, not data.
	if n > 0 && buf[n-1] == EndOfInputUnit {
		n--
	}
	return n, nil
}

func (windowsSystem) WriteUnits(g Grip, units []uint16) (int, error) {
	if len(units) == 0 {
		return 0, nil
	}
	var written uint32
	err := windows.WriteConsole(windows.Handle(g), &units[0], uint32(len(units)),
		&written, nil)
	if err != nil {
		return 0, err
	}
	return int(written), nil
}

func (windowsSystem) ReadBytes(g Grip, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var done uint32
	err := windows.ReadFile(windows.Handle(g), p, &done, nil)
	if err != nil {
		// The writing end of a pipe going away is an ordinary end of input.
		if errors.Is(err, windows.ERROR_BROKEN_PIPE) {
			return 0, EOF
		}
		return 0, err
	}
	if done == 0 {
		return 0, EOF
	}
	return int(done), nil
}

func (windowsSystem) WriteBytes(g Grip, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var done uint32
	if err := windows.WriteFile(windows.Handle(g), p, &done, nil); err != nil {
		return int(done), err
	}
	return int(done), nil
}
