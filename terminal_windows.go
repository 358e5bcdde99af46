// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package conio

// IsTerminal reports whether g refers to an interactive terminal.
//
// On Windows this coincides with console-mode classification: the handles
// that answer GetConsoleMode are exactly the interactive console handles.
func IsTerminal(g Grip) bool {
	return DefaultSystem().IsConsole(g)
}
