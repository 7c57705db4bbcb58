package util

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

func IsLikelyHex(s string) bool {
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
	if len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// DecodeSecret accepts either hex or standard base64 and returns the raw
// bytes. Hex wins when the input is valid under both encodings.
func DecodeSecret(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if IsLikelyHex(s) {
		return hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	}
	return base64.StdEncoding.DecodeString(s)
}

func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}
