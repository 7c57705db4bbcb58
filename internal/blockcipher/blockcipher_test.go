package blockcipher

import (
	"bytes"
	"testing"
)

func TestRegistryBlockSizes(t *testing.T) {
	cases := []struct {
		algorithm string
		blockSize int
	}{
		{AES, 16},
		{Camellia, 16},
		{HIGHT, 8},
		{CAST5, 8},
		{Wide, 24},
	}
	for _, c := range cases {
		blk, err := NewRandom(c.algorithm)
		if err != nil {
			t.Fatalf("NewRandom(%s): %v", c.algorithm, err)
		}
		if got := blk.BlockSize(); got != c.blockSize {
			t.Errorf("%s block size: got %d, want %d", c.algorithm, got, c.blockSize)
		}
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	for _, algorithm := range []string{AES, Camellia, HIGHT, CAST5, Wide} {
		blk, err := NewRandom(algorithm)
		if err != nil {
			t.Fatalf("NewRandom(%s): %v", algorithm, err)
		}
		n := blk.BlockSize()
		src := RandomBytes(n)
		ct := make([]byte, n)
		pt := make([]byte, n)
		blk.Encrypt(ct, src)
		blk.Decrypt(pt, ct)
		if !bytes.Equal(pt, src) {
			t.Errorf("%s: decrypt(encrypt(x)) != x", algorithm)
		}
		if bytes.Equal(ct, src) {
			t.Errorf("%s: ciphertext equals plaintext", algorithm)
		}
	}
}

func TestRegistryUnknownAlgorithm(t *testing.T) {
	if _, err := New("ROT13", make([]byte, 16)); err == nil {
		t.Error("expected error for unknown algorithm")
	}
	if _, err := KeySize("ROT13"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestWideIsDeterministicPermutation(t *testing.T) {
	blk, err := New(Wide, RandomBytes(16))
	if err != nil {
		t.Fatal(err)
	}
	src := RandomBytes(24)
	a := make([]byte, 24)
	b := make([]byte, 24)
	blk.Encrypt(a, src)
	blk.Encrypt(b, src)
	if !bytes.Equal(a, b) {
		t.Error("encryption is not deterministic")
	}

	// A change in any byte must change the output: both AES passes cover
	// the full 24-byte window between them.
	for _, i := range []int{0, 7, 8, 15, 16, 23} {
		mutated := bytes.Clone(src)
		mutated[i] ^= 1
		out := make([]byte, 24)
		blk.Encrypt(out, mutated)
		if bytes.Equal(out, a) {
			t.Errorf("flipping byte %d left the ciphertext unchanged", i)
		}
	}
}

func TestECBModeEncryptsBlocksIndependently(t *testing.T) {
	blk, err := NewRandom(AES)
	if err != nil {
		t.Fatal(err)
	}
	enc := NewECBEncrypter(blk)
	src := append(bytes.Repeat([]byte{'x'}, 16), bytes.Repeat([]byte{'x'}, 16)...)
	dst := make([]byte, len(src))
	enc.CryptBlocks(dst, src)
	if !bytes.Equal(dst[:16], dst[16:]) {
		t.Error("identical plaintext blocks should produce identical ciphertext blocks")
	}

	dec := NewECBDecrypter(blk)
	out := make([]byte, len(dst))
	dec.CryptBlocks(out, dst)
	if !bytes.Equal(out, src) {
		t.Error("ECB decrypt did not invert encrypt")
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		buf       []byte
		blockSize int
		want      []byte
	}{
		{[]byte{0}, 3, []byte{0, 2, 2}},
		{[]byte{0, 0}, 3, []byte{0, 0, 1}},
		{[]byte{0, 0, 0}, 3, []byte{0, 0, 0, 3, 3, 3}},
		{nil, 4, []byte{4, 4, 4, 4}},
	}
	for _, c := range cases {
		if got := Pad(c.buf, c.blockSize); !bytes.Equal(got, c.want) {
			t.Errorf("Pad(%v, %d) = %v, want %v", c.buf, c.blockSize, got, c.want)
		}
	}
}

func TestUnpad(t *testing.T) {
	cases := []struct {
		buf       []byte
		blockSize int
		want      []byte
		ok        bool
	}{
		{[]byte{0, 2, 2}, 3, []byte{0}, true},
		{[]byte{0, 0, 1}, 3, []byte{0, 0}, true},
		{[]byte{0, 0, 0, 3, 3, 3}, 3, []byte{0, 0, 0}, true},
		{[]byte{1, 2, 3}, 3, nil, false},   // inconsistent padding bytes
		{[]byte{1, 2, 0}, 3, nil, false},   // zero padding value
		{[]byte{1, 2, 4}, 3, nil, false},   // padding longer than a block
		{[]byte{1, 2}, 3, nil, false},      // short buffer
		{[]byte{1, 2, 3, 1}, 3, nil, false}, // not a block multiple
	}
	for _, c := range cases {
		got, err := Unpad(c.buf, c.blockSize)
		if c.ok != (err == nil) {
			t.Errorf("Unpad(%v, %d) error = %v, want ok=%v", c.buf, c.blockSize, err, c.ok)
			continue
		}
		if c.ok && !bytes.Equal(got, c.want) {
			t.Errorf("Unpad(%v, %d) = %v, want %v", c.buf, c.blockSize, got, c.want)
		}
	}
}

func TestPadUnpadAtEveryOffset(t *testing.T) {
	for _, blockSize := range []int{8, 16, 24} {
		for n := 0; n <= 2*blockSize; n++ {
			buf := RandomBytes(n)
			padded := Pad(buf, blockSize)
			if len(padded)%blockSize != 0 || len(padded) <= n {
				t.Fatalf("Pad length %d for input %d, block size %d", len(padded), n, blockSize)
			}
			out, err := Unpad(padded, blockSize)
			if err != nil || !bytes.Equal(out, buf) {
				t.Fatalf("Unpad round trip failed for input %d, block size %d: %v", n, blockSize, err)
			}
		}
	}
}
