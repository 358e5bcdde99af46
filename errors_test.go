// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/conio"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want conio.Outcome
	}{
		{"nil", nil, conio.OutcomeOK},
		{"invalid utf-8", conio.ErrInvalidUTF8, conio.OutcomeInvalidData},
		{"unpaired surrogate", conio.ErrUnpairedSurrogate, conio.OutcomeInvalidData},
		{"short buffer", conio.ErrBufferTooSmall, conio.OutcomeShortBuffer},
		{"wrapped invalid", fmt.Errorf("write stdout: %w", conio.ErrInvalidUTF8), conio.OutcomeInvalidData},
		{"wrapped short", fmt.Errorf("read stdin: %w", conio.ErrBufferTooSmall), conio.OutcomeShortBuffer},
		{"native", errors.New("access denied"), conio.OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := conio.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestOutcome_String(t *testing.T) {
	pairs := map[conio.Outcome]string{
		conio.OutcomeOK:          "OK",
		conio.OutcomeInvalidData: "InvalidData",
		conio.OutcomeShortBuffer: "ShortBuffer",
		conio.OutcomeFailure:     "Failure",
	}
	for o, want := range pairs {
		if got := o.String(); got != want {
			t.Errorf("Outcome.String() = %q, want %q", got, want)
		}
	}
}

func TestSentinelHelpers_MatchWrappedForms(t *testing.T) {
	if !conio.IsInvalidUTF8(fmt.Errorf("x: %w", conio.ErrInvalidUTF8)) {
		t.Error("IsInvalidUTF8 should match wrapped ErrInvalidUTF8")
	}
	if !conio.IsUnpairedSurrogate(fmt.Errorf("x: %w", conio.ErrUnpairedSurrogate)) {
		t.Error("IsUnpairedSurrogate should match wrapped ErrUnpairedSurrogate")
	}
	if !conio.IsBufferTooSmall(fmt.Errorf("x: %w", conio.ErrBufferTooSmall)) {
		t.Error("IsBufferTooSmall should match wrapped ErrBufferTooSmall")
	}
	if conio.IsInvalidUTF8(conio.ErrUnpairedSurrogate) {
		t.Error("sentinels must not match each other")
	}
}
