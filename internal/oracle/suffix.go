package oracle

import (
	"bytes"
	"crypto/cipher"

	"github.com/feadoor/cryptopals/internal/blockcipher"
)

// SuffixOracle appends a fixed secret suffix to every input and encrypts the
// result under ECB with a fixed random key.
type SuffixOracle struct {
	mode   cipher.BlockMode
	suffix []byte
}

// NewSuffix builds a suffix oracle for the given algorithm. The suffix is
// copied; the key is random and never exposed.
func NewSuffix(algorithm string, suffix []byte) (*SuffixOracle, error) {
	c, err := blockcipher.NewRandom(algorithm)
	if err != nil {
		return nil, err
	}
	return &SuffixOracle{
		mode:   blockcipher.NewECBEncrypter(c),
		suffix: bytes.Clone(suffix),
	}, nil
}

func (o *SuffixOracle) BlockSize() int {
	return o.mode.BlockSize()
}

// Encrypt returns ECB(input || suffix || padding).
func (o *SuffixOracle) Encrypt(input []byte) []byte {
	buf := make([]byte, 0, len(input)+len(o.suffix))
	buf = append(buf, input...)
	buf = append(buf, o.suffix...)
	buf = blockcipher.Pad(buf, o.mode.BlockSize())
	o.mode.CryptBlocks(buf, buf)
	return buf
}

// CheckAnswer reports whether the guess equals the secret suffix. Harness
// use only; the attack engine never calls it.
func (o *SuffixOracle) CheckAnswer(guess []byte) bool {
	return bytes.Equal(guess, o.suffix)
}
