package diagnostics

import "fmt"

// Location identifies a position within a decoded byte stream: the source
// name the caller gave it (a file path, "-" for stdin, whatever), the
// address the instruction was decoded at, and its byte offset from the
// start of the stream. A value type, safe to copy and compare.
type Location struct {
	source  string
	address uint64
	offset  int64
}

// Loc builds a Location.
func Loc(source string, address uint64, offset int64) Location {
	return Location{source: source, address: address, offset: offset}
}

func (l Location) Source() string  { return l.source }
func (l Location) Address() uint64 { return l.address }
func (l Location) Offset() int64   { return l.offset }

// String renders "source@0xADDR+offset".
func (l Location) String() string {
	return fmt.Sprintf("%s@0x%x+%d", l.source, l.address, l.offset)
}
