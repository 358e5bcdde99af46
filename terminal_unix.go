// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !windows

package conio

import (
	"golang.org/x/term"
)

// IsTerminal reports whether g refers to an interactive terminal.
//
// This answers a different question than console-mode classification: a
// posix-ish tty is a terminal but is byte-oriented, so it never routes
// through the UTF-16 transcoder. Use this for presentation decisions
// (colors, prompts), not for I/O routing.
func IsTerminal(g Grip) bool {
	return term.IsTerminal(int(g))
}
