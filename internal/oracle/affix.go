package oracle

import (
	"bytes"
	"crypto/cipher"

	"github.com/feadoor/cryptopals/internal/blockcipher"
)

// AffixOracle prepends a fixed random prefix and appends a fixed secret
// suffix to every input before encrypting under ECB with a fixed random key.
type AffixOracle struct {
	mode   cipher.BlockMode
	prefix []byte
	suffix []byte
}

// NewAffix builds an affix oracle with a random prefix of the given length.
func NewAffix(algorithm string, prefixLen int, suffix []byte) (*AffixOracle, error) {
	c, err := blockcipher.NewRandom(algorithm)
	if err != nil {
		return nil, err
	}
	return &AffixOracle{
		mode:   blockcipher.NewECBEncrypter(c),
		prefix: blockcipher.RandomBytes(prefixLen),
		suffix: bytes.Clone(suffix),
	}, nil
}

func (o *AffixOracle) BlockSize() int {
	return o.mode.BlockSize()
}

// Encrypt returns ECB(prefix || input || suffix || padding).
func (o *AffixOracle) Encrypt(input []byte) []byte {
	buf := make([]byte, 0, len(o.prefix)+len(input)+len(o.suffix))
	buf = append(buf, o.prefix...)
	buf = append(buf, input...)
	buf = append(buf, o.suffix...)
	buf = blockcipher.Pad(buf, o.mode.BlockSize())
	o.mode.CryptBlocks(buf, buf)
	return buf
}

// CheckAnswer reports whether the guess equals the secret suffix.
func (o *AffixOracle) CheckAnswer(guess []byte) bool {
	return bytes.Equal(guess, o.suffix)
}

// CheckPrefixLen reports whether n equals the hidden prefix length.
func (o *AffixOracle) CheckPrefixLen(n int) bool {
	return n == len(o.prefix)
}
