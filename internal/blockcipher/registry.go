// Package blockcipher provides the generic block-cipher layer shared by the
// encryption oracles and their attackers: a registry of cipher primitives,
// ECB block modes, and PKCS#7 padding.
package blockcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	gohight "github.com/RyuaNerin/go-krypto/hight"
	"github.com/aead/camellia"
	"golang.org/x/crypto/cast5"
)

// Supported algorithm names.
const (
	AES      = "AES"      // 16-byte blocks
	Camellia = "CAMELLIA" // 16-byte blocks
	HIGHT    = "HIGHT"    // 8-byte blocks
	CAST5    = "CAST5"    // 8-byte blocks
	Wide     = "WIDE"     // 24-byte blocks, see NewWide
)

// KeySize returns the key length in bytes used for the given algorithm.
func KeySize(algorithm string) (int, error) {
	switch algorithm {
	case AES, Camellia, HIGHT, CAST5, Wide:
		return 16, nil
	}
	return 0, fmt.Errorf("unsupported algorithm %q", algorithm)
}

// New constructs a block cipher for the given algorithm name.
func New(algorithm string, key []byte) (cipher.Block, error) {
	switch algorithm {
	case AES:
		return aes.NewCipher(key)
	case Camellia:
		return camellia.NewCipher(key)
	case HIGHT:
		return gohight.NewCipher(key)
	case CAST5:
		return cast5.NewCipher(key)
	case Wide:
		return NewWide(key)
	}
	return nil, fmt.Errorf("unsupported algorithm %q", algorithm)
}

// NewRandom constructs a block cipher for the given algorithm with a fresh
// random key.
func NewRandom(algorithm string) (cipher.Block, error) {
	n, err := KeySize(algorithm)
	if err != nil {
		return nil, err
	}
	return New(algorithm, RandomBytes(n))
}

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err)
	}
	return b
}

// wide is a 24-byte block permutation built from two overlapping AES passes.
// It exists so the oracles can be run at a block size that no packaged
// cipher provides; it is a toy construction, not a vetted cipher.
type wide struct{ inner cipher.Block }

// NewWide returns a 24-byte block cipher keyed by a 16-byte AES key.
func NewWide(key []byte) (cipher.Block, error) {
	inner, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return wide{inner}, nil
}

func (w wide) BlockSize() int { return 24 }

func (w wide) Encrypt(dst, src []byte) {
	var buf [24]byte
	copy(buf[:], src[:24])
	w.inner.Encrypt(buf[0:16], buf[0:16])
	w.inner.Encrypt(buf[8:24], buf[8:24])
	copy(dst[:24], buf[:])
}

func (w wide) Decrypt(dst, src []byte) {
	var buf [24]byte
	copy(buf[:], src[:24])
	w.inner.Decrypt(buf[8:24], buf[8:24])
	w.inner.Decrypt(buf[0:16], buf[0:16])
	copy(dst[:24], buf[:])
}
