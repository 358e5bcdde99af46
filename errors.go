// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

import (
	"errors"
)

// conio introduces three sentinel errors for the console transcoding path.
//
// Mental model:
//   - ErrInvalidUTF8: the write input starts with bytes that are not UTF-8;
//     nothing can be transmitted this call. Seen at most once per bad spot,
//     because a previous call already consumed the valid prefix.
//   - ErrUnpairedSurrogate: console input decoded to a lone surrogate half;
//     the whole read fails and none of its data is delivered.
//   - ErrBufferTooSmall: the read destination cannot hold even one UTF-8
//     character (4 bytes); no native call is made.
//
// Notes:
//   - Native platform errors are propagated verbatim, never translated into
//     one of the sentinels above.
//   - All of these are ordinary returned errors; nothing here is fatal.

// ErrInvalidUTF8 is returned by console writes whose input has zero valid
// leading UTF-8 bytes. A console device only accepts text, so there is
// nothing this call could transmit.
var ErrInvalidUTF8 = errors.New("conio: console write requires a valid utf-8 prefix")

// ErrUnpairedSurrogate is returned by console reads whose UTF-16 input
// contains a surrogate half with no partner (an unpaired low surrogate, or a
// high surrogate not followed by a low one). The call delivers no data.
var ErrUnpairedSurrogate = errors.New("conio: console input contains an unpaired surrogate")

// ErrBufferTooSmall is returned by console reads into a destination shorter
// than 4 bytes: the longest UTF-8 encoding of a single character would not
// fit, so forward progress could not be guaranteed.
var ErrBufferTooSmall = errors.New("conio: destination buffer cannot hold one utf-8 character")

// errUnknownStream guards Stream values outside the declared identities.
var errUnknownStream = errors.New("conio: unknown stream identity")

// IsInvalidUTF8 reports whether err carries the invalid-input semantic of a
// console write. It returns true for ErrInvalidUTF8 and wrappers (via errors.Is).
func IsInvalidUTF8(err error) bool { return errors.Is(err, ErrInvalidUTF8) }

// IsUnpairedSurrogate reports whether err carries the malformed-console-input
// semantic of a read. It returns true for ErrUnpairedSurrogate and wrappers.
func IsUnpairedSurrogate(err error) bool { return errors.Is(err, ErrUnpairedSurrogate) }

// IsBufferTooSmall reports whether err is the undersized-destination rejection
// of a console read, including wrapped forms.
func IsBufferTooSmall(err error) bool { return errors.Is(err, ErrBufferTooSmall) }

// Outcome classifies an operation result based on conio's error taxonomy.
//
// OutcomeOK:           success.
// OutcomeInvalidData:  the data itself was untranscodable (ErrInvalidUTF8 or
//                      ErrUnpairedSurrogate); retrying the same bytes cannot help.
// OutcomeShortBuffer:  the caller's destination was too small; retry with ≥4 bytes.
// OutcomeFailure:      any other error (typically a native platform error).
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeInvalidData
	OutcomeShortBuffer
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeInvalidData:
		return "InvalidData"
	case OutcomeShortBuffer:
		return "ShortBuffer"
	default:
		return "Failure"
	}
}

// Classify maps err to an Outcome. Use when a compact switch is preferred.
//
// Note: classification depends solely on the error value the caller passes;
// native platform errors all map to OutcomeFailure.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if IsInvalidUTF8(err) || IsUnpairedSurrogate(err) {
		return OutcomeInvalidData
	}
	if IsBufferTooSmall(err) {
		return OutcomeShortBuffer
	}
	return OutcomeFailure
}
