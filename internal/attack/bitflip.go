package attack

import (
	"bytes"
	"fmt"
)

// Edit is a single byte substitution within the target plaintext block:
// the byte at Offset currently decrypts to Old and should decrypt to New.
type Edit struct {
	Offset int
	Old    byte
	New    byte
}

// FlipBlock returns a copy of ct in which the requested edits have been
// applied to plaintext block targetBlock by xoring the corresponding bytes
// of ciphertext block targetBlock-1.
//
// CBC decrypts block N as Decrypt(ct[N]) XOR ct[N-1], so xoring Old^New
// into ct[N-1] flips exactly the wanted plaintext bits of block N. Block
// N-1's own plaintext decrypts to garbage; that corruption is the accepted
// price and must land on bytes the caller sacrificed.
func FlipBlock(ct []byte, blockSize, targetBlock int, edits []Edit) ([]byte, error) {
	if targetBlock < 1 || (targetBlock+1)*blockSize > len(ct) {
		return nil, fmt.Errorf("target block %d out of range", targetBlock)
	}
	out := bytes.Clone(ct)
	prev := (targetBlock - 1) * blockSize
	for _, e := range edits {
		if e.Offset < 0 || e.Offset >= blockSize {
			return nil, fmt.Errorf("edit offset %d out of range", e.Offset)
		}
		out[prev+e.Offset] ^= e.Old ^ e.New
	}
	return out, nil
}

// CookieMint embeds attacker data in an encrypted cookie. The template head
// length is public (oracle.CookieHead); the key and IV are not.
type CookieMint func(userdata []byte) []byte

// ForgeAdminCookie defeats the cookie oracle's metacharacter stripping: it
// submits one sacrificial filler block followed by a block carrying
// stand-in characters one bit away from ';' and '=', then flips those bits
// through the preceding ciphertext block so the cookie decrypts with
// ";admin=true;" intact. headLen is the length of the fixed template ahead
// of the userdata.
func ForgeAdminCookie(mint CookieMint, blockSize, headLen int) ([]byte, error) {
	// Bit-flipping only reaches the next block in a chained mode; an ECB
	// oracle would betray itself with repeated blocks.
	if HasRepeatedBlock(mint(bytes.Repeat([]byte{filler}, 10*blockSize)), blockSize) {
		return nil, fmt.Errorf("%w: cookie oracle is not chained", ErrModeMismatch)
	}

	const want = ";admin=true;"
	if blockSize < len(want) {
		return nil, fmt.Errorf("block size %d too small for %q", blockSize, want)
	}

	// Stand-ins survive the sanitizer; each differs from the wanted
	// metacharacter in the lowest bit.
	payload := bytes.Repeat([]byte{filler}, blockSize)
	var edits []Edit
	for i := 0; i < len(want); i++ {
		if want[i] == ';' || want[i] == '=' {
			payload[i] = want[i] ^ 1
			edits = append(edits, Edit{Offset: i, Old: payload[i], New: want[i]})
		} else {
			payload[i] = want[i]
		}
	}

	align := (blockSize - headLen%blockSize) % blockSize
	userdata := make([]byte, 0, align+2*blockSize)
	userdata = append(userdata, bytes.Repeat([]byte{filler}, align+blockSize)...)
	userdata = append(userdata, payload...)

	// The sacrificial filler block precedes the payload block.
	targetBlock := (headLen+align)/blockSize + 1
	return FlipBlock(mint(userdata), blockSize, targetBlock, edits)
}
