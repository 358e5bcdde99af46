// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conio provides cross-platform stdio portability shims: a non-owning
// "grip" abstraction over native resource identifiers (file descriptors,
// Windows handles) and byte-stream adapters over them, including the console
// transcoding path needed on platforms whose console devices speak UTF-16.
//
// Mental model
//   - Callers only ever see UTF-8 bytes through io.Reader / io.Writer.
//   - Per operation, the current native handle for a stream is re-resolved and
//     classified: attached to a UTF-16 console, or redirected to a file/pipe.
//   - Redirected: bytes pass straight through to the raw read/write syscall.
//   - Console: bytes are transcoded UTF-8⇄UTF-16, with byte counts that always
//     equal the UTF-8 length of the exactly-transmitted prefix, so callers can
//     resume after partial writes without losing or double-counting a byte.
//
// Nothing in this package owns a handle: conio neither opens nor closes
// anything, and it caches neither handle values nor classification answers, so
// host-process reassignment of the standard handles is picked up on the very
// next call.
package conio
