// Package shortvec implements the compact-u16 length encoding used by the
// Solana wire format.
package shortvec

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// EncodeLen encodes the specified len into the writer.
//
// If len > math.MaxUint16, an error is returned.
func EncodeLen(w io.Writer, len int) (n int, err error) {
	if len > math.MaxUint16 {
		return 0, errors.Errorf("len exceeds %d", math.MaxUint16)
	}

	buf := make([]byte, 1)
	for {
		buf[0] = byte(len & 0x7f)
		len >>= 7

		if len == 0 {
			written, err := w.Write(buf)
			return n + written, err
		}

		buf[0] |= 0x80
		written, err := w.Write(buf)
		n += written
		if err != nil {
			return n, err
		}
	}
}

// DecodeLen decodes a shortvec encoded len from the reader.
func DecodeLen(r io.Reader) (val int, err error) {
	buf := make([]byte, 1)

	var size int
	for {
		if _, err := r.Read(buf); err != nil {
			return 0, err
		}

		val |= int(buf[0]&0x7f) << (size * 7)
		size++

		if buf[0]&0x80 == 0 {
			break
		}
	}

	if size > 3 {
		return 0, errors.Errorf("invalid size: %d (max 3)", size)
	}

	return val, nil
}
