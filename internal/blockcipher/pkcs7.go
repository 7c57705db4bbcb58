package blockcipher

import (
	"bytes"
	"errors"
)

// Pad returns a copy of buf with PKCS#7 padding added. At least one byte is
// always appended; a buffer already at a block boundary gains a full block
// of padding.
func Pad(buf []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 0xff {
		panic("blockcipher: invalid block size")
	}
	n := blockSize - len(buf)%blockSize
	out := make([]byte, 0, len(buf)+n)
	out = append(out, buf...)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad returns a copy of buf with PKCS#7 padding removed.
func Unpad(buf []byte, blockSize int) ([]byte, error) {
	if len(buf) < blockSize || len(buf)%blockSize != 0 {
		return nil, errors.New("blockcipher: invalid padding")
	}
	b := buf[len(buf)-1]
	if int(b) == 0 || int(b) > blockSize ||
		!bytes.Equal(bytes.Repeat([]byte{b}, int(b)), buf[len(buf)-int(b):]) {
		return nil, errors.New("blockcipher: invalid padding")
	}
	out := make([]byte, len(buf)-int(b))
	copy(out, buf)
	return out, nil
}
