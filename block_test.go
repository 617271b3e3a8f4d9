// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package rijndael

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/SnellerInc/rijndael/internal/gf"
	"github.com/SnellerInc/rijndael/ints"
)

func unhex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func unhexBlock(t testing.TB, s string) Block {
	t.Helper()
	b := unhex(t, s)
	if len(b) != BlockSize {
		t.Fatalf("%q is %d bytes, not a block", s, len(b))
	}
	return Block(b)
}

func fill(n int, v byte) []byte {
	return bytes.Repeat([]byte{v}, n)
}

func TestKnownAnswer(t *testing.T) {
	testcases := []struct {
		name       string
		key        []byte
		plaintext  Block
		ciphertext string
	}{
		{
			name:       "ff-128",
			key:        fill(16, 0xff),
			ciphertext: "a1f6258c877d5fcd8964484538bfc92c",
		},
		{
			name:       "ff-192",
			key:        fill(24, 0xff),
			ciphertext: "dd8a493514231cbf56eccee4c40889fb",
		},
		{
			name:       "ff-256",
			key:        fill(32, 0xff),
			ciphertext: "4bf85f1b5d54adbc307b0a048389adcb",
		},
		{
			name:       "fips197-c1",
			key:        unhex(t, "000102030405060708090a0b0c0d0e0f"),
			plaintext:  unhexBlock(t, "00112233445566778899aabbccddeeff"),
			ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name:       "fips197-c2",
			key:        unhex(t, "000102030405060708090a0b0c0d0e0f1011121314151617"),
			plaintext:  unhexBlock(t, "00112233445566778899aabbccddeeff"),
			ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			name:       "fips197-c3",
			key:        unhex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
			plaintext:  unhexBlock(t, "00112233445566778899aabbccddeeff"),
			ciphertext: "8ea2b7ca516745bfeafc49904b496089",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			want := unhexBlock(t, tc.ciphertext)
			got, err := Encrypt(tc.plaintext, tc.key)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("encrypt mismatch:\nis:\n%x\nshould be:\n%x\n", got, want)
			}
			pt, err := Decrypt(want, tc.key)
			if err != nil {
				t.Fatal(err)
			}
			if pt != tc.plaintext {
				t.Fatalf("decrypt mismatch:\nis:\n%x\nshould be:\n%x\n", pt, tc.plaintext)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// fixed patterns
	for _, tc := range []struct {
		key   []byte
		block byte
	}{
		{fill(16, 0xaf), 0xbe},
		{fill(24, 0xda), 0xae},
		{fill(32, 0x1f), 0xa2},
	} {
		var b Block
		copy(b[:], fill(BlockSize, tc.block))
		ct, err := Encrypt(b, tc.key)
		if err != nil {
			t.Fatal(err)
		}
		pt, err := Decrypt(ct, tc.key)
		if err != nil {
			t.Fatal(err)
		}
		if pt != b {
			t.Fatalf("round trip with %d-byte key: got %x want %x", len(tc.key), pt, b)
		}
	}
	// random keys and blocks
	for _, size := range []KeySize{Key128, Key192, Key256} {
		for i := 0; i < 64; i++ {
			key := make([]byte, size)
			var b Block
			if err := ints.RandomFillSlice(key); err != nil {
				t.Fatal(err)
			}
			if err := ints.RandomFillSlice(b[:]); err != nil {
				t.Fatal(err)
			}
			ct, err := Encrypt(b, key)
			if err != nil {
				t.Fatal(err)
			}
			pt, err := Decrypt(ct, key)
			if err != nil {
				t.Fatal(err)
			}
			if pt != b {
				t.Fatalf("%s key %x: round trip %x -> %x -> %x", size, key, b, ct, pt)
			}
		}
	}
}

func TestInvalidKeySize(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 23, 25, 31, 33, 64} {
		key := make([]byte, n)
		var b Block
		ct, err := Encrypt(b, key)
		if !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("Encrypt with %d-byte key: err = %v", n, err)
		}
		if ct != (Block{}) {
			t.Errorf("Encrypt with %d-byte key produced output %x", n, ct)
		}
		_, err = Decrypt(b, key)
		if !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("Decrypt with %d-byte key: err = %v", n, err)
		}
		var kse KeySizeError
		if !errors.As(err, &kse) || int(kse) != n {
			t.Errorf("Decrypt with %d-byte key: KeySizeError = %d", n, kse)
		}
	}
}

// compare against the standard library implementation
func TestMatchesStdlib(t *testing.T) {
	for _, size := range []KeySize{Key128, Key192, Key256} {
		key := make([]byte, size)
		for i := 0; i < 32; i++ {
			var b, want Block
			if err := ints.RandomFillSlice(key); err != nil {
				t.Fatal(err)
			}
			if err := ints.RandomFillSlice(b[:]); err != nil {
				t.Fatal(err)
			}
			ref, err := aes.NewCipher(key)
			if err != nil {
				t.Fatal(err)
			}
			ref.Encrypt(want[:], b[:])
			got, err := Encrypt(b, key)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("%s key %x block %x: got %x want %x", size, key, b, got, want)
			}
		}
	}
}

// mixColumnsGeneric is mixColumns written with full field multiplication.
func mixColumnsGeneric(state *Block) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c] = gf.Mul(a0, 2) ^ gf.Mul(a1, 3) ^ a2 ^ a3
		state[c+1] = a0 ^ gf.Mul(a1, 2) ^ gf.Mul(a2, 3) ^ a3
		state[c+2] = a0 ^ a1 ^ gf.Mul(a2, 2) ^ gf.Mul(a3, 3)
		state[c+3] = gf.Mul(a0, 3) ^ a1 ^ a2 ^ gf.Mul(a3, 2)
	}
}

func TestMixColumns(t *testing.T) {
	// FIPS-197 round 1 of appendix B, and the usual test columns
	testcases := []struct{ in, out string }{
		{"d4bf5d30e0b452aeb84111f11e2798e5", "046681e5e0cb199a48f8d37a2806264c"},
		{"db135345f20a225c01010101c6c6c6c6", "8e4da1bc9fdc589d01010101c6c6c6c6"},
		{"d4d4d4d52d26314c00000000ffffffff", "d5d5d7d64d7ebdf800000000ffffffff"},
	}
	for _, tc := range testcases {
		b := unhexBlock(t, tc.in)
		mixColumns(&b)
		if want := unhexBlock(t, tc.out); b != want {
			t.Errorf("mixColumns(%s) = %x, want %x", tc.in, b, want)
		}
		invMixColumns(&b)
		if want := unhexBlock(t, tc.in); b != want {
			t.Errorf("invMixColumns undid to %x, want %x", b, want)
		}
	}
	for i := 0; i < 256; i++ {
		var b Block
		if err := ints.RandomFillSlice(b[:]); err != nil {
			t.Fatal(err)
		}
		fast, slow := b, b
		mixColumns(&fast)
		mixColumnsGeneric(&slow)
		if fast != slow {
			t.Fatalf("mixColumns(%x) = %x, generic gives %x", b, fast, slow)
		}
	}
}

func TestStepInverses(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = byte(i * 17)
	}
	steps := []struct {
		name     string
		fwd, inv func(*Block)
	}{
		{"subBytes", subBytes, invSubBytes},
		{"shiftRows", shiftRows, invShiftRows},
		{"mixColumns", mixColumns, invMixColumns},
	}
	for _, s := range steps {
		x := b
		s.fwd(&x)
		if x == b {
			t.Errorf("%s left the state unchanged", s.name)
		}
		s.inv(&x)
		if x != b {
			t.Errorf("%s: inverse gives %x, want %x", s.name, x, b)
		}
	}
}

func TestShiftRows(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = byte(i)
	}
	shiftRows(&b)
	// row r of column c comes from column (c+r)%4
	want := Block{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}
	if b != want {
		t.Fatalf("shiftRows = %v, want %v", b, want)
	}
}

func BenchmarkEncrypt(b *testing.B) {
	for _, size := range []KeySize{Key128, Key192, Key256} {
		b.Run(size.String(), func(b *testing.B) {
			c, err := NewCipher(make([]byte, size))
			if err != nil {
				b.Fatal(err)
			}
			var blk Block
			b.SetBytes(BlockSize)
			for i := 0; i < b.N; i++ {
				blk = c.EncryptBlock(blk)
			}
		})
	}
}
