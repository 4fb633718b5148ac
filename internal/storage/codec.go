package storage

import (
	"bytes"
	"encoding/binary"

	log "github.com/sirupsen/logrus"
)

// Codec is responsible for converting rows to and from their fixed-width
// binary layout inside a page
type Codec struct{}

// Encoding row format (RowSize bytes):
// - id (uint32, little endian == 4 bytes)
// - username, zero padded to UsernameSize bytes
// - email, zero padded to EmailSize bytes

// Encode writes row into the first RowSize bytes of dst. Text columns longer
// than their width are truncated
func (c *Codec) Encode(row *Row, dst []byte) {
	if len(dst) < RowSize {
		log.Panicf("destination too small to encode row. len=%d, expected=%d", len(dst), RowSize)
	}

	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], row.ID)
	putColumn(dst[UsernameOffset:UsernameOffset+UsernameSize], row.Username)
	putColumn(dst[EmailOffset:EmailOffset+EmailSize], row.Email)
}

// Decode reads a row from the first RowSize bytes of src
func (c *Codec) Decode(src []byte) *Row {
	if len(src) < RowSize {
		log.Panicf("source too small to decode row. len=%d, expected=%d", len(src), RowSize)
	}

	return &Row{
		ID:       binary.LittleEndian.Uint32(src[IDOffset : IDOffset+IDSize]),
		Username: column(src[UsernameOffset : UsernameOffset+UsernameSize]),
		Email:    column(src[EmailOffset : EmailOffset+EmailSize]),
	}
}

func putColumn(dst []byte, value string) {
	n := copy(dst, value)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// column returns the column contents up to the first zero byte
func column(src []byte) string {
	if end := bytes.IndexByte(src, 0); end >= 0 {
		return string(src[:end])
	}

	return string(src)
}
