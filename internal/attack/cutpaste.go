package attack

import (
	"fmt"
	"strings"

	"github.com/feadoor/cryptopals/internal/oracle"
)

// TokenMint turns an attacker-chosen email address into an encrypted
// profile token. The template shape (oracle.ProfileHead, oracle.ProfileTail)
// is public; the key is not.
type TokenMint func(email string) []byte

// ForgeAdminToken splices blocks from three honestly minted tokens into a
// ciphertext that decrypts to a profile with role=admin.
//
// The three addresses are sized so that block boundaries fall exactly on:
// the end of "email=<addr>&uid=10&role=" in the first token, the start of
// an "admin..."-bearing block in the second, and the start of the trailing
// "=user" in the third. ECB encrypts blocks independently, so concatenating
// those aligned ciphertext blocks yields a ciphertext whose decryption is
// the corresponding plaintext concatenation, padding intact.
func ForgeAdminToken(mint TokenMint, blockSize int) ([]byte, error) {
	// Splicing only works if identical plaintext blocks encrypt
	// identically, so confirm ECB before paying for the forgery.
	if !HasRepeatedBlock(mint(strings.Repeat("a", 10*blockSize)), blockSize) {
		return nil, fmt.Errorf("%w: token oracle is not ECB", ErrModeMismatch)
	}

	head, tail := len(oracle.ProfileHead), len(oracle.ProfileTail)
	roleAt := tail - len("user") // offset of the role value within the tail

	// First token: "email=<addr>&uid=10&role=" fills whole blocks, "user"
	// and padding spill into the next.
	addr1 := strings.Repeat("a", pad(head+roleAt, blockSize))
	cut := head + roleAt + len(addr1)

	// Second token: the address pushes "admin" to the start of its own
	// block, followed by the rest of the template.
	addr2 := strings.Repeat("a", pad(head, blockSize)) + "admin"
	adminAt := head + pad(head, blockSize)

	// Third token: the address pushes "=user" to the start of a fresh
	// block, so that block closes the forged record with valid padding.
	addr3 := strings.Repeat("a", pad(head+roleAt-1, blockSize))
	userAt := head + roleAt - 1 + len(addr3)

	token1 := mint(addr1)
	token2 := mint(addr2)
	token3 := mint(addr3)

	forged := make([]byte, 0, cut+blockSize+(len(token3)-userAt))
	forged = append(forged, token1[:cut]...)
	forged = append(forged, token2[adminAt:adminAt+blockSize]...)
	forged = append(forged, token3[userAt:]...)
	return forged, nil
}

// pad returns the number of filler bytes that round n up to a block
// boundary.
func pad(n, blockSize int) int {
	return (blockSize - n%blockSize) % blockSize
}
