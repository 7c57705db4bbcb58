package oracle

import (
	"crypto/cipher"
	"strings"

	"github.com/feadoor/cryptopals/internal/blockcipher"
)

// Cookie template pieces. The template shape is public knowledge.
const (
	CookieHead = "comment1=cooking%20MCs;userdata="
	CookieTail = ";comment2=%20like%20a%20pound%20of%20bacon"
)

// CookieOracle embeds attacker data in a fixed cookie template and encrypts
// it under CBC with a fixed random key and IV, after stripping the
// metacharacters ';' and '='.
type CookieOracle struct {
	c  cipher.Block
	iv []byte
}

// NewCookie builds a cookie oracle over AES.
func NewCookie() *CookieOracle {
	c, err := blockcipher.NewRandom(blockcipher.AES)
	if err != nil {
		panic(err)
	}
	return &CookieOracle{c: c, iv: blockcipher.RandomBytes(c.BlockSize())}
}

func (o *CookieOracle) BlockSize() int {
	return o.c.BlockSize()
}

// Encrypt returns CBC(head || sanitized userdata || tail || padding).
func (o *CookieOracle) Encrypt(userdata []byte) []byte {
	sanitized := strings.NewReplacer(";", "", "=", "").Replace(string(userdata))
	buf := blockcipher.Pad([]byte(CookieHead+sanitized+CookieTail), o.c.BlockSize())
	cipher.NewCBCEncrypter(o.c, o.iv).CryptBlocks(buf, buf)
	return buf
}

// IsAdmin reports whether the cookie decrypts to a semicolon-separated
// string containing the field "admin=true". Harness use only.
func (o *CookieOracle) IsAdmin(cookie []byte) bool {
	if len(cookie) == 0 || len(cookie)%o.c.BlockSize() != 0 {
		return false
	}
	buf := make([]byte, len(cookie))
	cipher.NewCBCDecrypter(o.c, o.iv).CryptBlocks(buf, cookie)
	buf, err := blockcipher.Unpad(buf, o.c.BlockSize())
	if err != nil {
		return false
	}
	for _, field := range strings.Split(string(buf), ";") {
		if field == "admin=true" {
			return true
		}
	}
	return false
}
