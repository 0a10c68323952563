package native

import (
	"strings"
	"unsafe"
)

// GoString copies the NUL-terminated string at p into Go memory.
// Invalid UTF-8 sequences are replaced with U+FFFD. A nil p yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	// string conversion copies, so the result never aliases native memory
	s := string(unsafe.Slice(p, n))
	return strings.ToValidUTF8(s, "\uFFFD")
}

// NulTerminated returns s as a byte buffer followed by a single 0 byte.
// The caller is responsible for rejecting strings with embedded 0 bytes.
func NulTerminated(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf
}

// BytePtr returns the address of the first byte of buf, or nil for a nil
// buffer.
func BytePtr(buf []byte) *byte {
	if buf == nil {
		return nil
	}
	return &buf[0]
}
