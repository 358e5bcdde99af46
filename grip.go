// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

// Grip is a non-owning native resource identifier: a file descriptor on
// posix-ish platforms, a HANDLE on Windows. "Handle" would be the obvious
// name, but that has a more specific meaning on Windows.
//
// A Grip is a plain value. Holding one confers no ownership: conio never
// closes a grip, and a stored grip may be invalidated at any time by whoever
// does own the resource.
type Grip uintptr

// Gripper is implemented by resources that expose their native identifier.
type Gripper interface {
	Grip() Grip
}

// ReadWriteGripper is implemented by duplex resources (typically sockets)
// that may expose distinct identifiers for the two directions. For most
// platforms both methods return the same value.
type ReadWriteGripper interface {
	// ReadGrip returns the grip used for reading.
	ReadGrip() Grip
	// WriteGrip returns the grip used for writing.
	WriteGrip() Grip
}

// Stream identifies one of the three standard streams. The native handle
// behind a Stream is re-resolved on every operation rather than captured,
// because the hosting process can reassign it between calls.
type Stream uint8

const (
	StreamInput Stream = iota
	StreamOutput
	StreamError
)

func (s Stream) String() string {
	switch s {
	case StreamInput:
		return "Input"
	case StreamOutput:
		return "Output"
	case StreamError:
		return "Error"
	default:
		return "Stream(unknown)"
	}
}

// RawReadable adapts a bare grip to Reader over the raw byte syscall,
// bypassing console transcoding entirely. This is the redirected-mode path;
// use Stdio for streams that may be attached to a console.
type RawReadable Grip

func (r RawReadable) Read(p []byte) (int, error) {
	return DefaultSystem().ReadBytes(Grip(r), p)
}

// Grip returns the underlying native identifier.
func (r RawReadable) Grip() Grip { return Grip(r) }

// RawWriteable adapts a bare grip to Writer over the raw byte syscall,
// bypassing console transcoding entirely.
type RawWriteable Grip

func (w RawWriteable) Write(p []byte) (int, error) {
	return DefaultSystem().WriteBytes(Grip(w), p)
}

// Flush does nothing: raw writes are not buffered by this adapter.
func (w RawWriteable) Flush() error { return nil }

// Grip returns the underlying native identifier.
func (w RawWriteable) Grip() Grip { return Grip(w) }
