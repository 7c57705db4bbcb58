// Package oracle implements the encryption oracles the attack engine is run
// against. Each oracle owns its key and affixes for its whole lifetime; the
// only capability handed to an attacker is an encrypt function, and the
// CheckAnswer / IsAdmin methods exist for harness-side verification only.
package oracle

// EncryptFunc is the sole capability an attacker receives: attacker-chosen
// plaintext in, ciphertext out.
type EncryptFunc func(plaintext []byte) []byte

// Counting wraps an encrypt function and counts queries. It is the adapter
// the engine is wired through, and it feeds per-run statistics.
type Counting struct {
	fn EncryptFunc
	n  int
}

func NewCounting(fn EncryptFunc) *Counting {
	return &Counting{fn: fn}
}

func (c *Counting) Encrypt(plaintext []byte) []byte {
	c.n++
	return c.fn(plaintext)
}

// Queries returns the number of encryptions issued so far.
func (c *Counting) Queries() int {
	return c.n
}
