package attack

import (
	"bytes"
	"fmt"
)

// Suffix recovers the secret suffix an ECB oracle appends to attacker
// input, one byte per iteration.
func Suffix(encrypt Oracle, blockSize int) ([]byte, error) {
	return SuffixWithPrefix(encrypt, blockSize, 0)
}

// SuffixWithPrefix recovers the secret suffix of an ECB oracle that also
// prepends prefixLen unknown bytes.
//
// Every iteration aligns the next unknown suffix byte to the end of a
// block-aligned window, captures that window as a reference, then replays
// the window's known first blockSize-1 bytes with each of the 256 candidate
// final bytes until one reproduces the reference. Recovered bytes are never
// revised. When the reference window would start at or beyond the end of
// the output, the whole suffix has been consumed.
func SuffixWithPrefix(encrypt Oracle, blockSize, prefixLen int) ([]byte, error) {
	// Aligning filler pushes the residual prefix bytes up to a block
	// boundary so they can no longer interfere; base is the aligned offset
	// where attacker-controlled data starts.
	align := (blockSize - prefixLen%blockSize) % blockSize
	base := prefixLen + align

	var recovered []byte
	for {
		padLen := blockSize - 1 - len(recovered)%blockSize
		target := base + padLen + len(recovered) + 1 - blockSize

		ct := encrypt(bytes.Repeat([]byte{filler}, align+padLen))
		if len(ct) <= target+blockSize {
			return recovered, nil
		}
		reference := ct[target : target+blockSize]

		// The probe block is the last blockSize-1 bytes of filler+recovered
		// followed by the candidate byte, aligned to start at base.
		window := make([]byte, 0, padLen+len(recovered))
		window = append(window, bytes.Repeat([]byte{filler}, padLen)...)
		window = append(window, recovered...)
		window = window[len(window)-(blockSize-1):]

		probe := make([]byte, 0, align+blockSize)
		probe = append(probe, bytes.Repeat([]byte{filler}, align)...)
		probe = append(probe, window...)

		found := false
		for b := 0; b <= 0xff; b++ {
			out := encrypt(append(probe, byte(b)))
			if bytes.Equal(out[base:base+blockSize], reference) {
				recovered = append(recovered, byte(b))
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: suffix offset %d", ErrByteRecovery, len(recovered))
		}
	}
}
