// Package row implements the fixed-width binary layout of a table row.
//
// Layout (little-endian id, zero-padded text fields):
//
//	[0:4)     id        int32
//	[4:37)    username  32 bytes + terminator
//	[37:293)  email     255 bytes + terminator
//
// Every text field reserves one byte beyond its maximum length, so a value
// of maximum length is always followed by at least one zero byte and decodes
// unambiguously.
package row

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	UsernameMaxLength = 32
	EmailMaxLength    = 255

	IDSize       = 4
	UsernameSize = UsernameMaxLength + 1
	EmailSize    = EmailMaxLength + 1

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// Size is the encoded width of one row in bytes.
	Size = IDSize + UsernameSize + EmailSize
)

// Row is one logical record.
type Row struct {
	ID       int32
	Username string
	Email    string
}

// Encoded is the fixed-width binary form of a Row.
type Encoded [Size]byte

// Encode returns the fixed-width form of r. Text longer than its field's
// maximum length is truncated; callers validate lengths beforehand.
func (r Row) Encode() Encoded {
	var buf Encoded
	r.SerializeInto(buf[:])
	return buf
}

// SerializeInto writes r into dst, which must be at least Size bytes long.
// The whole Size-byte region is overwritten, padding included.
func (r Row) SerializeInto(dst []byte) {
	dst = dst[:Size]
	binary.LittleEndian.PutUint32(dst[IDOffset:], uint32(r.ID)) // #nosec G115
	putText(dst[UsernameOffset:UsernameOffset+UsernameSize], r.Username)
	putText(dst[EmailOffset:EmailOffset+EmailSize], r.Email)
}

// Decode reads a Row back from src, which must be at least Size bytes long.
func Decode(src []byte) Row {
	src = src[:Size]
	return Row{
		ID:       int32(binary.LittleEndian.Uint32(src[IDOffset:])), // #nosec G115
		Username: getText(src[UsernameOffset : UsernameOffset+UsernameSize]),
		Email:    getText(src[EmailOffset : EmailOffset+EmailSize]),
	}
}

// String renders the row the way select prints it.
func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}

// putText copies s into field and zero-fills the rest. At most len(field)-1
// bytes of s are kept so the terminator always fits.
func putText(field []byte, s string) {
	n := copy(field[:len(field)-1], s)
	clear(field[n:])
}

// getText treats field as a zero-terminated string.
func getText(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return string(field[:i])
	}
	return string(field)
}
