package shop

import (
	"crypto/ed25519"
	"encoding/binary"
	"unicode/utf8"

	"github.com/mr-tron/base58"
)

func putDiscriminator(dst []byte, v []byte, offset *int) {
	copy(dst[*offset:], v)
	*offset += 8
}
func getDiscriminator(src []byte, dst *[]byte, offset *int) {
	*dst = make([]byte, 8)
	copy(*dst, src[*offset:])
	*offset += 8
}

func putKey(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], src)
	*offset += ed25519.PublicKeySize
}
func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}
func getUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}
func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func putInt64(dst []byte, v int64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], uint64(v))
	*offset += 8
}
func getInt64(src []byte, dst *int64, offset *int) {
	*dst = int64(binary.LittleEndian.Uint64(src[*offset:]))
	*offset += 8
}

func putString(dst []byte, src string, offset *int) {
	putUint32(dst, uint32(len(src)), offset)
	copy(dst[*offset:], src)
	*offset += len(src)
}

// getString reads a u32 length prefixed utf-8 string. Unlike the fixed size
// getters, it validates the declared length against the remaining buffer
// before reading, since on-chain string data is attacker controlled.
func getString(src []byte, dst *string, offset *int) error {
	if len(src) < *offset+4 {
		return ErrTruncatedAccountData
	}

	var length uint32
	getUint32(src, &length, offset)

	if uint64(len(src)) < uint64(*offset)+uint64(length) {
		return ErrTruncatedAccountData
	}

	raw := src[*offset : *offset+int(length)]
	if !utf8.Valid(raw) {
		return ErrInvalidUtf8
	}

	*dst = string(raw)
	*offset += int(length)
	return nil
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
