package blockcipher

import "crypto/cipher"

// ecb is the state shared by the ECB encrypter and decrypter.
type ecb struct{ c cipher.Block }

func (x ecb) BlockSize() int {
	return x.c.BlockSize()
}

// cryptBlocks applies crypt to each block of src independently. The src
// length must be a multiple of the block size, and dst must be at least as
// long as src.
func (x ecb) cryptBlocks(dst, src []byte, crypt func(dst, src []byte)) {
	for n := x.BlockSize(); len(src) > 0; {
		crypt(dst[:n], src[:n])
		dst = dst[n:]
		src = src[n:]
	}
}

type ecbEncrypter struct{ ecb }

// NewECBEncrypter returns a block mode for ECB encryption.
func NewECBEncrypter(c cipher.Block) cipher.BlockMode {
	return ecbEncrypter{ecb{c}}
}

func (mode ecbEncrypter) CryptBlocks(dst, src []byte) {
	mode.cryptBlocks(dst, src, mode.c.Encrypt)
}

type ecbDecrypter struct{ ecb }

// NewECBDecrypter returns a block mode for ECB decryption.
func NewECBDecrypter(c cipher.Block) cipher.BlockMode {
	return ecbDecrypter{ecb{c}}
}

func (mode ecbDecrypter) CryptBlocks(dst, src []byte) {
	mode.cryptBlocks(dst, src, mode.c.Decrypt)
}
