package attack

import (
	"bytes"
	"fmt"
)

// PrefixLen discovers the length of the prefix an ECB oracle silently
// prepends to attacker input.
//
// The block where outputs for empty and one-byte inputs first differ gives
// a floor: every earlier block is pure prefix. The residual length inside
// the boundary block comes from injecting 2*blockSize+k filler bytes and
// finding the smallest k at which two consecutive filler blocks collide at
// the boundary; the residual is then (blockSize-k) mod blockSize, so a
// prefix ending exactly on a block boundary resolves to residual 0 via the
// k=0 collision.
func PrefixLen(encrypt Oracle, blockSize int) (int, error) {
	boundary := firstDifferingBlock(encrypt(nil), encrypt([]byte{filler}), blockSize)
	floor := boundary * blockSize

	for k := 0; k < blockSize; k++ {
		ct := encrypt(bytes.Repeat([]byte{filler}, 2*blockSize+k))
		// The collision lands on the boundary block when the residual is
		// zero, and one block later otherwise.
		for b := boundary; b <= boundary+1; b++ {
			lo := b * blockSize
			if lo+2*blockSize > len(ct) {
				break
			}
			if bytes.Equal(ct[lo:lo+blockSize], ct[lo+blockSize:lo+2*blockSize]) {
				return floor + (blockSize-k)%blockSize, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: no filler collision within one block", ErrPrefixIndeterminate)
}

// firstDifferingBlock returns the index of the first block-aligned window
// at which a and b differ. The window exists in both outputs because the
// one-byte input shifts the suffix and padding inside the boundary block.
func firstDifferingBlock(a, b []byte, blockSize int) int {
	i := 0
	for ; i+blockSize <= len(a) && i+blockSize <= len(b); i += blockSize {
		if !bytes.Equal(a[i:i+blockSize], b[i:i+blockSize]) {
			break
		}
	}
	return i / blockSize
}
