package oracle

import (
	"crypto/cipher"
	weak "math/rand"

	"github.com/feadoor/cryptopals/internal/blockcipher"
)

// ModeOracle encrypts each input under a freshly chosen key and a coin-flip
// between ECB and CBC, with 5-10 bytes of random noise on each side of the
// input. The re-randomization is owned state behind Encrypt; nothing leaks
// except through the ciphertext.
type ModeOracle struct {
	algorithm string
	blockSize int
	lastECB   bool
}

// NewMode builds a mode-flipping oracle over the given algorithm.
func NewMode(algorithm string) (*ModeOracle, error) {
	c, err := blockcipher.NewRandom(algorithm)
	if err != nil {
		return nil, err
	}
	return &ModeOracle{algorithm: algorithm, blockSize: c.BlockSize()}, nil
}

func (o *ModeOracle) BlockSize() int {
	return o.blockSize
}

// Encrypt re-keys, re-chooses the mode and noise, and encrypts.
func (o *ModeOracle) Encrypt(input []byte) []byte {
	c, err := blockcipher.NewRandom(o.algorithm)
	if err != nil {
		panic(err)
	}

	noisy := make([]byte, 0, len(input)+20)
	noisy = append(noisy, blockcipher.RandomBytes(5+weak.Intn(6))...)
	noisy = append(noisy, input...)
	noisy = append(noisy, blockcipher.RandomBytes(5+weak.Intn(6))...)
	noisy = blockcipher.Pad(noisy, c.BlockSize())

	var mode cipher.BlockMode
	if o.lastECB = weak.Intn(2) == 0; o.lastECB {
		mode = blockcipher.NewECBEncrypter(c)
	} else {
		mode = cipher.NewCBCEncrypter(c, blockcipher.RandomBytes(c.BlockSize()))
	}
	mode.CryptBlocks(noisy, noisy)
	return noisy
}

// CheckAnswer reports whether isECB names the mode used by the most recent
// Encrypt call. Harness use only.
func (o *ModeOracle) CheckAnswer(isECB bool) bool {
	return isECB == o.lastECB
}
