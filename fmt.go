package zbytes

import (
	"fmt"
	"io"
)

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)

// String returns the contents as a string, copying them.
func (b *Bytes) String() string {
	return string(b.view)
}

// Format implements fmt.Formatter: %x and %X render the bytes as hex,
// %q as a quoted string, %s and %v as raw bytes.
func (b *Bytes) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		writeHex(f, b.view, lowerHexDigits)
	case 'X':
		writeHex(f, b.view, upperHexDigits)
	case 'q':
		fmt.Fprintf(f, "%q", b.view)
	case 's', 'v':
		f.Write(b.view)
	default:
		fmt.Fprintf(f, "%%!%c(zbytes.Bytes=%q)", verb, b.view)
	}
}

func writeHex(w io.Writer, b []byte, digits string) {
	var out [2]byte
	for _, c := range b {
		out[0] = digits[c>>4]
		out[1] = digits[c&0xf]
		w.Write(out[:])
	}
}
