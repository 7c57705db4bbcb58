package oracle

import (
	"crypto/cipher"
	"strings"

	"github.com/feadoor/cryptopals/internal/blockcipher"
)

// Token template pieces. The template shape is public knowledge; only the
// key is secret.
const (
	ProfileHead = "email="
	ProfileTail = "&uid=10&role=user"
)

// ProfileOracle mints encrypted user-profile tokens of the form
// email=<addr>&uid=10&role=user under ECB with a fixed random key, and
// parses tokens handed back to it.
type ProfileOracle struct {
	enc cipher.BlockMode
	dec cipher.BlockMode
}

// NewProfile builds a profile oracle over AES.
func NewProfile() *ProfileOracle {
	c, err := blockcipher.NewRandom(blockcipher.AES)
	if err != nil {
		panic(err)
	}
	return &ProfileOracle{
		enc: blockcipher.NewECBEncrypter(c),
		dec: blockcipher.NewECBDecrypter(c),
	}
}

func (o *ProfileOracle) BlockSize() int {
	return o.enc.BlockSize()
}

// MakeToken strips the metacharacters '&' and '=' from the address, embeds
// it in the template, and returns the encrypted token.
func (o *ProfileOracle) MakeToken(email string) []byte {
	sanitized := strings.NewReplacer("&", "", "=", "").Replace(email)
	buf := blockcipher.Pad([]byte(ProfileHead+sanitized+ProfileTail), o.enc.BlockSize())
	o.enc.CryptBlocks(buf, buf)
	return buf
}

// parseToken decrypts a token and reads its k=v pairs. The last occurrence
// of a repeated key wins; a malformed pair invalidates the whole token.
func (o *ProfileOracle) parseToken(token []byte) (map[string]string, bool) {
	if len(token) == 0 || len(token)%o.dec.BlockSize() != 0 {
		return nil, false
	}
	buf := make([]byte, len(token))
	o.dec.CryptBlocks(buf, token)
	buf, err := blockcipher.Unpad(buf, o.dec.BlockSize())
	if err != nil {
		return nil, false
	}
	pairs := make(map[string]string)
	for _, pair := range strings.Split(string(buf), "&") {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 {
			return nil, false
		}
		pairs[kv[0]] = kv[1]
	}
	return pairs, true
}

// IsAdmin reports whether a token decrypts to a well-formed profile whose
// role field is "admin". Harness use only.
func (o *ProfileOracle) IsAdmin(token []byte) bool {
	pairs, ok := o.parseToken(token)
	return ok && pairs["role"] == "admin"
}
