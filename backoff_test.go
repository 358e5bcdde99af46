// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio_test

import (
	"testing"
	"time"

	"code.hybscloud.com/conio"
)

func TestBackoff_ZeroValue(t *testing.T) {
	// Zero-value Backoff should be ready to use with defaults
	var b conio.Backoff

	if got := b.Block(); got != 1 {
		t.Errorf("Block() = %d, want 1", got)
	}
	if got := b.Duration(); got != conio.DefaultBackoffBase {
		t.Errorf("Duration() = %v, want %v", got, conio.DefaultBackoffBase)
	}
}

func TestBackoff_ZeroValueWait(t *testing.T) {
	var b conio.Backoff

	start := time.Now()
	b.Wait()
	elapsed := time.Since(start)

	// Should have waited approximately DefaultBackoffBase (500µs) ± jitter.
	// Allow generous tolerance for test stability (OS scheduling adds latency)
	minWait := conio.DefaultBackoffBase * 7 / 8 // -12.5% jitter
	maxWait := conio.DefaultBackoffBase * 10    // generous upper bound for CI/slow systems

	if elapsed < minWait || elapsed > maxWait {
		t.Errorf("Wait() elapsed = %v, expected between %v and %v", elapsed, minWait, maxWait)
	}
	if got := b.Block(); got != 2 {
		t.Errorf("After Wait(), Block() = %d, want 2", got)
	}
}

func TestBackoff_Duration(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*conio.Backoff)
		wantDur time.Duration
		wantBlk int
	}{
		{
			name:    "zero-value",
			setup:   func(b *conio.Backoff) {},
			wantDur: conio.DefaultBackoffBase,
			wantBlk: 1,
		},
		{
			name: "custom base",
			setup: func(b *conio.Backoff) {
				b.SetBase(1 * time.Millisecond)
			},
			wantDur: 1 * time.Millisecond,
			wantBlk: 1,
		},
		{
			name: "non-positive base uses default",
			setup: func(b *conio.Backoff) {
				b.SetBase(-1 * time.Second)
			},
			wantDur: conio.DefaultBackoffBase,
			wantBlk: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b conio.Backoff
			tt.setup(&b)

			if got := b.Duration(); got != tt.wantDur {
				t.Errorf("Duration() = %v, want %v", got, tt.wantDur)
			}
			if got := b.Block(); got != tt.wantBlk {
				t.Errorf("Block() = %d, want %d", got, tt.wantBlk)
			}
		})
	}
}

func TestBackoff_LinearCurve(t *testing.T) {
	var b conio.Backoff
	base := 100 * time.Microsecond
	b.SetBase(base)

	// Block 1: 1 iteration at 100µs
	if b.Duration() != base {
		t.Errorf("Block 1 duration mismatch")
	}
	b.Wait()

	// Block 2: 2 iterations at 200µs
	if b.Block() != 2 || b.Duration() != 2*base {
		t.Errorf("Block 2 transition failed: got block %d, duration %v", b.Block(), b.Duration())
	}
	b.Wait()
	b.Wait()

	// Block 3: 3 iterations at 300µs
	if b.Block() != 3 || b.Duration() != 3*base {
		t.Errorf("Block 3 transition failed")
	}
}

func TestBackoff_MaxCap(t *testing.T) {
	var b conio.Backoff
	b.SetBase(10 * time.Millisecond)
	b.SetMax(15 * time.Millisecond)

	b.Wait() // Ends Block 1
	// Block 2 duration would be 20ms, should cap at 15ms
	if b.Duration() != 15*time.Millisecond {
		t.Errorf("Expected cap at 15ms, got %v", b.Duration())
	}
}

func TestBackoff_Reset(t *testing.T) {
	var b conio.Backoff
	b.Wait()
	b.Wait()
	if b.Block() == 1 {
		t.Errorf("Should have advanced")
	}
	b.Reset()
	if b.Block() != 1 || b.Duration() != conio.DefaultBackoffBase {
		t.Errorf("Reset failed")
	}
}
