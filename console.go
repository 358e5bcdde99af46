// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

import (
	"sync/atomic"
	"unicode/utf16"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MaxBufferSize caps, in bytes, how much data one native console call may
// carry. The native console API allocates its buffer from a shared 64 KB
// process heap with an undocumented practical ceiling; 8 KiB is the commonly
// adopted safe limit.
const MaxBufferSize = 8192

// capacityUnits is the fixed UTF-16 transcoding buffer size in code units.
const capacityUnits = MaxBufferSize / 2

// EndOfInputUnit is the code unit (Ctrl-Z / SUB) that terminates console
// input, the traditional DOS end-of-stream marker. System.ReadUnits treats a
// trailing EndOfInputUnit as an EOF marker, not data, and trims it.
const EndOfInputUnit uint16 = 0x1A

// endOfInputMask is the wakeup mask that makes a native console read return
// on EndOfInputUnit in addition to the usual line terminators.
const endOfInputMask uint32 = 1 << EndOfInputUnit

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u <= 0xDFFF }

// System is the native primitive surface the stdio adapters run on.
//
// The package supplies the real per-platform implementation via
// DefaultSystem. The indirection exists so that partial writes, surrogate
// splits and end-of-input trimming can be exercised deterministically without
// a real console device.
type System interface {
	// Lookup resolves the current native handle for a stream. It is called
	// fresh on every operation; implementations must not cache, because the
	// hosting process can reassign standard handles at any time.
	Lookup(stream Stream) (Grip, error)

	// IsConsole reports whether g is attached to a UTF-16 console device.
	// Any query failure means "not console" (the raw byte path is the safe
	// fallback). Pure query, no side effects.
	IsConsole(g Grip) bool

	// ReadUnits reads up to len(buf) UTF-16 code units. wakeupMask selects
	// additional code units that complete the read (see EndOfInputUnit); a
	// trailing EndOfInputUnit is trimmed and excluded from the count.
	ReadUnits(g Grip, buf []uint16, wakeupMask uint32) (int, error)

	// WriteUnits writes UTF-16 code units and returns how many the device
	// actually accepted, which may be fewer than submitted.
	WriteUnits(g Grip, units []uint16) (int, error)

	// ReadBytes and WriteBytes are the raw byte syscalls used for
	// redirected (non-console) handles.
	ReadBytes(g Grip, p []byte) (int, error)
	WriteBytes(g Grip, p []byte) (int, error)
}

// Stdio adapts one standard stream to byte-oriented Read/Write.
//
// Every call re-resolves the native handle and re-classifies it; a stream
// redirected mid-run switches paths on the next call. The only state carried
// across calls is the pending-surrogate slot, which is scoped to this Stdio
// (one slot per logical stream), so reads on different streams never
// interfere. Concurrent reads on the same Stdio contend for the slot and are
// not independently supported.
type Stdio struct {
	stream  Stream
	sys     System
	pending atomic.Uint32 // pending high surrogate; zero means empty
}

// NewStdio returns an adapter for stream on the given system. A nil sys
// selects DefaultSystem.
func NewStdio(stream Stream, sys System) *Stdio {
	if sys == nil {
		sys = DefaultSystem()
	}
	return &Stdio{stream: stream, sys: sys}
}

var (
	stdin  = NewStdio(StreamInput, nil)
	stdout = NewStdio(StreamOutput, nil)
	stderr = NewStdio(StreamError, nil)
)

// Stdin returns the process-wide adapter for standard input.
func Stdin() *Stdio { return stdin }

// Stdout returns the process-wide adapter for standard output.
func Stdout() *Stdio { return stdout }

// Stderr returns the process-wide adapter for standard error.
func Stderr() *Stdio { return stderr }

// Stream returns the stream identity this adapter serves.
func (s *Stdio) Stream() Stream { return s.stream }

// Write writes UTF-8 bytes to the stream and returns how many input bytes
// were durably transmitted.
//
// Console path semantics:
//   - At most MaxBufferSize/2 bytes are considered per call.
//   - If the considered bytes are not entirely valid UTF-8, the valid prefix
//     is written and counted; ErrInvalidUTF8 is returned only when not even
//     one leading byte is valid.
//   - The device may accept fewer code units than submitted. The returned
//     count is then the UTF-8 length of exactly the accepted prefix, so a
//     caller that resumes at p[n:] never loses or repeats a byte.
func (s *Stdio) Write(p []byte) (int, error) {
	g, err := s.sys.Lookup(s.stream)
	if err != nil {
		return 0, err
	}
	if !s.sys.IsConsole(g) {
		return s.sys.WriteBytes(g, p)
	}
	return writeConsole(s.sys, g, p)
}

// Flush does nothing: console writes are not buffered by this adapter.
func (s *Stdio) Flush() error { return nil }

// Read reads from the stream into p and returns the number of UTF-8 bytes
// produced.
//
// Console path semantics:
//   - len(p) == 0 returns 0 immediately; len(p) < 4 fails with
//     ErrBufferTooSmall before any native call.
//   - A read whose unit budget slices a surrogate pair holds the high half
//     in the pending slot and delivers it with the next read.
//   - Input containing an unpaired surrogate (beyond the held case above)
//     fails with ErrUnpairedSurrogate; the call delivers no data.
func (s *Stdio) Read(p []byte) (int, error) {
	g, err := s.sys.Lookup(s.stream)
	if err != nil {
		return 0, err
	}
	if !s.sys.IsConsole(g) {
		return s.sys.ReadBytes(g, p)
	}
	return s.readConsole(g, p)
}

func writeConsole(sys System, g Grip, p []byte) (int, error) {
	n := min(len(p), MaxBufferSize/2)
	valid := p[:utf8Prefix(p[:n])]
	if len(valid) == 0 {
		if n == 0 {
			return 0, nil
		}
		return 0, ErrInvalidUTF8
	}

	// The UTF-16 unit count of a UTF-8 string never exceeds its byte count,
	// so the capped prefix always fits the fixed buffer.
	var buf [capacityUnits]uint16
	units := buf[:encodeUnits(buf[:], valid)]

	written, err := sys.WriteUnits(g, units)
	if err != nil {
		return 0, err
	}
	if written >= len(units) {
		return len(valid), nil
	}

	// The device split a surrogate pair. The caller cannot re-slice its
	// input to resubmit half a pair, so write the missing low surrogate now,
	// best effort: a failure is tolerated and simply not counted.
	if isLowSurrogate(units[written]) {
		if m, err := sys.WriteUnits(g, units[written:written+1]); err == nil && m == 1 {
			written++
		} else {
			Logger().Debug("conio: could not complete split surrogate pair",
				zap.Uint16("unit", units[written]), zap.Error(err))
		}
	}
	return utf8LengthOfUnits(units[:written]), nil
}

func (s *Stdio) readConsole(g Grip, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) < utf8.UTFMax {
		return 0, ErrBufferTooSmall
	}

	var buf [capacityUnits]uint16
	// Worst case a unit decodes to 3 UTF-8 bytes; an astral pair is 2 units
	// for 4 bytes, a better ratio. Dividing by 3 therefore bounds both.
	amount := min(len(p)/3, capacityUnits)

	// Consume the high surrogate left over from the previous read, if any.
	// Whether the next unit actually completes the pair is decided by the
	// decode below.
	start := 0
	if u := uint16(s.pending.Swap(0)); u != 0 {
		buf[0] = u
		start = 1
		if amount == 1 {
			// p is at least 4 bytes, so one extra unit can always be
			// combined with the pending surrogate.
			amount = 2
		}
	}

	n, err := s.sys.ReadUnits(g, buf[start:amount], endOfInputMask)
	if err != nil {
		return 0, err
	}
	total := start + n

	// A trailing high surrogate was sliced from its partner by the unit
	// budget. Hold it for the next read instead of failing the decode.
	if total > 0 && isHighSurrogate(buf[total-1]) {
		s.pending.Store(uint32(buf[total-1]))
		total--
	}
	return decodeUnits(buf[:total], p)
}

// utf8Prefix returns the length of the longest prefix of p that is valid
// UTF-8. An incomplete trailing sequence is excluded; the caller is expected
// to resubmit it with its continuation bytes on the next call.
func utf8Prefix(p []byte) int {
	n := 0
	for n < len(p) {
		r, size := utf8.DecodeRune(p[n:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		n += size
	}
	return n
}

// encodeUnits encodes the valid UTF-8 bytes s as UTF-16 into dst and returns
// the unit count. dst must hold at least len(s) units.
func encodeUnits(dst []uint16, s []byte) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRune(s)
		s = s[size:]
		if r <= 0xFFFF {
			dst[n] = uint16(r)
			n++
		} else {
			hi, lo := utf16.EncodeRune(r)
			dst[n] = uint16(hi)
			dst[n+1] = uint16(lo)
			n += 2
		}
	}
	return n
}

// utf8LengthOfUnits reports the UTF-8 byte length of the text encoded by
// units. A high surrogate is charged 3 bytes and its low partner 1, so the
// two halves of a pair sum to the 4 bytes of one astral codepoint.
func utf8LengthOfUnits(units []uint16) int {
	n := 0
	for _, u := range units {
		switch {
		case u <= 0x7F:
			n++
		case u <= 0x7FF:
			n += 2
		case isLowSurrogate(u):
			n++
		default:
			n += 3
		}
	}
	return n
}

// decodeUnits decodes UTF-16 units as UTF-8 into dst. Any unpaired surrogate
// fails the whole call with ErrUnpairedSurrogate: no partial output is
// committed, because the byte count could not be made consistent with it.
func decodeUnits(units []uint16, dst []byte) (int, error) {
	n := 0
	for i := 0; i < len(units); i++ {
		u := units[i]
		var r rune
		switch {
		case isHighSurrogate(u):
			if i+1 >= len(units) || !isLowSurrogate(units[i+1]) {
				return 0, ErrUnpairedSurrogate
			}
			r = utf16.DecodeRune(rune(u), rune(units[i+1]))
			i++
		case isLowSurrogate(u):
			return 0, ErrUnpairedSurrogate
		default:
			r = rune(u)
		}
		n += utf8.EncodeRune(dst[n:], r)
	}
	return n, nil
}
