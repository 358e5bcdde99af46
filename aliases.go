// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

import (
	"io"
)

// conio re-exports (aliases) the io interfaces and sentinels its API surfaces
// so that users can stay in the "conio" namespace while reading documentation
// and navigating types. The contracts mirror the standard io expectations,
// with conio-specific behavior documented at the implementations (Stdio,
// RawReadable, RawWriteable).

// Reader is implemented by types that can read bytes into p.
//
// Callers should treat a return of (0, nil) as "no progress", not
// end-of-stream. Console reads return (0, nil) when input was terminated by
// the end-of-stream wakeup character before any data arrived.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is implemented by types that can write bytes from p.
//
// Console writers deliberately relax the usual "n < len(p) implies non-nil
// error" expectation: a partial console write returns the byte count of the
// transmitted prefix with a nil error, and the caller resumes from there
// (see Stdio.Write and WriteAll).
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// ReadWriter groups the basic Read and Write methods.
//
// ReadWriter is an alias of io.ReadWriter.
type ReadWriter = io.ReadWriter

// StringWriter writes the contents of s more efficiently than Write([]byte(s))
// for implementations that can avoid an allocation/copy.
//
// StringWriter is an alias of io.StringWriter.
type StringWriter = io.StringWriter

// Common sentinel errors re-exported for convenience.
//
// Note: conio also defines its own transcoding sentinels (ErrInvalidUTF8,
// ErrUnpairedSurrogate, ErrBufferTooSmall); those are not part of the
// standard io set.
var (
	// EOF is returned by Read when no more input is available.
	// Functions should return EOF only to signal a graceful end of input.
	EOF = io.EOF

	// ErrNoProgress reports that repeated calls produced no data and no error.
	// WriteAll returns it when a writer keeps accepting zero bytes.
	ErrNoProgress = io.ErrNoProgress

	// ErrShortWrite means a write accepted fewer bytes than requested and
	// returned no explicit error (or equivalently, could not complete the
	// full write).
	ErrShortWrite = io.ErrShortWrite
)
