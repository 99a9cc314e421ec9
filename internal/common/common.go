package common

import "unsafe"

// MaxInt is the largest length representable as a signed offset on this
// platform. Requests beyond it are programmer errors, not recoverable
// conditions.
const MaxInt = int(^uint(0) >> 1)

// StringToBytes aliases s as a []byte without copying. The result must
// never be written to, and s must stay reachable for as long as the
// slice is used.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString aliases b as a string without copying. b must not be
// modified afterwards.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
