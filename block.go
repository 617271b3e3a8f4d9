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
	"github.com/SnellerInc/rijndael/internal/gf"
	"github.com/SnellerInc/rijndael/internal/tables"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Block is the 4x4 byte state in column-major order:
// byte i sits in row i%4 and column i/4.
type Block [BlockSize]byte

// Encrypt encrypts a single block with key, which must be
// 16, 24 or 32 bytes long. An invalid key yields a KeySizeError
// before any work is done.
func Encrypt(plaintext Block, key []byte) (Block, error) {
	s, err := Expand(key)
	if err != nil {
		return Block{}, err
	}
	defer s.Wipe()
	return encryptBlock(plaintext, s), nil
}

// Decrypt is the inverse of Encrypt.
func Decrypt(ciphertext Block, key []byte) (Block, error) {
	s, err := Expand(key)
	if err != nil {
		return Block{}, err
	}
	defer s.Wipe()
	return decryptBlock(ciphertext, s), nil
}

func encryptBlock(state Block, s Schedule) Block {
	rounds := s.Rounds()
	addRoundKey(&state, s.RoundKey(0))
	for i := 1; i < rounds-1; i++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, s.RoundKey(i))
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, s.RoundKey(rounds-1))
	return state
}

func decryptBlock(state Block, s Schedule) Block {
	rounds := s.Rounds()
	addRoundKey(&state, s.RoundKey(rounds-1))
	for i := rounds - 2; i > 0; i-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, s.RoundKey(i))
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, s.RoundKey(0))
	return state
}

// addRoundKey is its own inverse.
func addRoundKey(state *Block, rk []byte) {
	_ = rk[BlockSize-1]
	for i := range state {
		state[i] ^= rk[i]
	}
}

func subBytes(state *Block) {
	for i := range state {
		state[i] = tables.SBox[state[i]]
	}
}

func invSubBytes(state *Block) {
	for i := range state {
		state[i] = tables.InvSBox[state[i]]
	}
}

func shiftRows(state *Block) {
	in := *state
	for i := range state {
		state[i] = in[tables.Shift[i]]
	}
}

func invShiftRows(state *Block) {
	in := *state
	for i := range state {
		state[i] = in[tables.InvShift[i]]
	}
}

// mixColumns multiplies each column by {03}x^3 + {01}x^2 + {01}x + {02}.
// 3*a is computed as 2*a ^ a, so only doublings are needed.
func mixColumns(state *Block) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := state[c], state[c+1], state[c+2], state[c+3]
		b0, b1, b2, b3 := gf.Xtime(a0), gf.Xtime(a1), gf.Xtime(a2), gf.Xtime(a3)
		state[c] = b0 ^ b1 ^ a1 ^ a2 ^ a3
		state[c+1] = a0 ^ b1 ^ b2 ^ a2 ^ a3
		state[c+2] = a0 ^ a1 ^ b2 ^ b3 ^ a3
		state[c+3] = b0 ^ a0 ^ a1 ^ a2 ^ b3
	}
}

// invMixColumns multiplies each column by {0b}x^3 + {0d}x^2 + {09}x + {0e}.
func invMixColumns(state *Block) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c] = gf.Mul(a0, 0x0e) ^ gf.Mul(a1, 0x0b) ^ gf.Mul(a2, 0x0d) ^ gf.Mul(a3, 0x09)
		state[c+1] = gf.Mul(a0, 0x09) ^ gf.Mul(a1, 0x0e) ^ gf.Mul(a2, 0x0b) ^ gf.Mul(a3, 0x0d)
		state[c+2] = gf.Mul(a0, 0x0d) ^ gf.Mul(a1, 0x09) ^ gf.Mul(a2, 0x0e) ^ gf.Mul(a3, 0x0b)
		state[c+3] = gf.Mul(a0, 0x0b) ^ gf.Mul(a1, 0x0d) ^ gf.Mul(a2, 0x09) ^ gf.Mul(a3, 0x0e)
	}
}
