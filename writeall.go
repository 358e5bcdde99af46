// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

// maxStallRounds bounds how many consecutive zero-progress writes WriteAll
// tolerates before giving up with ErrNoProgress.
const maxStallRounds = 64

// WriteAll writes all of p to w, resuming after partial writes until every
// byte has been accepted or an error occurs. It returns the bytes written so
// far alongside any error.
//
// Console writers report partial writes as (n, nil) with n equal to the
// UTF-8 length of the transmitted prefix, so resuming at p[written:] is
// always byte-exact: nothing is lost and nothing is written twice. Rounds
// that make no progress are paced with a Backoff; after maxStallRounds of
// them in a row, WriteAll returns ErrNoProgress.
func WriteAll(w Writer, p []byte) (written int, err error) {
	var bo Backoff
	stalls := 0
	for written < len(p) {
		n, err := w.Write(p[written:])
		if n > 0 {
			written += n
			stalls = 0
			bo.Reset()
			if err == nil {
				continue
			}
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			stalls++
			if stalls >= maxStallRounds {
				return written, ErrNoProgress
			}
			bo.Wait()
		}
	}
	return written, nil
}

// WriteAllString is WriteAll for a string. It uses WriteString when w
// implements StringWriter and the string is accepted in one call; otherwise
// it falls back to the byte-resuming loop.
func WriteAllString(w Writer, s string) (int, error) {
	if sw, ok := w.(StringWriter); ok {
		n, err := sw.WriteString(s)
		if err == nil && n == len(s) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		rest, err := WriteAll(w, []byte(s[n:]))
		return n + rest, err
	}
	return WriteAll(w, []byte(s))
}
