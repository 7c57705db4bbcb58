// Package attack recovers secret block-cipher parameters and forges
// privileged ciphertexts using nothing but chosen-plaintext queries against
// an encryption oracle. No component here ever sees a key, an IV, or the
// oracle's internals; everything is inferred from output bytes.
package attack

import (
	"bytes"
	"fmt"
)

// Oracle is the encryption capability under attack. It must stay consistent
// (fixed key and affixes) for the duration of one attack.
type Oracle func(plaintext []byte) []byte

// filler is the byte used for all alignment padding. Its value is
// irrelevant; it only has to be constant within an attack.
const filler = 'A'

// maxBlockSize bounds the probing loops so a misbehaving oracle cannot hang
// the attack.
const maxBlockSize = 128

// BlockSize discovers the oracle's block size by growing the input one byte
// at a time until the padded output jumps a block.
func BlockSize(encrypt Oracle) (int, error) {
	baseLen := len(encrypt(nil))
	probe := make([]byte, 0, 2*maxBlockSize+1)
	for i := 0; i < 2*maxBlockSize+1; i++ {
		probe = append(probe, filler)
		if n := len(encrypt(probe)); n > baseLen {
			return n - baseLen, nil
		}
	}
	return 0, fmt.Errorf("%w: no output growth within %d probes", ErrProbeExhausted, 2*maxBlockSize+1)
}

// IsECB reports whether the oracle encrypts in ECB mode, by feeding it ten
// blocks of identical bytes and looking for repeated ciphertext blocks.
// Chained modes never repeat for repeated plaintext; ECB always does.
func IsECB(encrypt Oracle, blockSize int) bool {
	return HasRepeatedBlock(encrypt(bytes.Repeat([]byte{filler}, 10*blockSize)), blockSize)
}

// HasRepeatedBlock reports whether any two block-aligned windows of buf are
// byte-identical.
func HasRepeatedBlock(buf []byte, blockSize int) bool {
	seen := make(map[string]bool)
	for i := 0; i+blockSize <= len(buf); i += blockSize {
		s := string(buf[i : i+blockSize])
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}
