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
	"crypto/cipher"
)

// Cipher holds an expanded key so that many blocks can be
// processed without repeating the key schedule.
// A Cipher is read-only after construction and safe for
// concurrent use.
type Cipher struct {
	size  KeySize
	sched Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher validates key and returns a Cipher for it.
// The key bytes are not retained.
func NewCipher(key []byte) (*Cipher, error) {
	s, err := Expand(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{size: KeySize(len(key)), sched: s}, nil
}

// NewCipherFromKey returns a Cipher for k.
// The zero Key is rejected with a KeySizeError.
func NewCipherFromKey(k Key) (*Cipher, error) {
	s, err := k.Expand()
	if err != nil {
		return nil, err
	}
	return &Cipher{size: k.Size(), sched: s}, nil
}

// KeySize returns the size of the key the cipher was created with.
func (c *Cipher) KeySize() KeySize { return c.size }

// BlockSize implements cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt implements cipher.Block. It encrypts the first
// block in src into dst; dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}
	out := encryptBlock(*(*Block)(src), c.sched)
	copy(dst, out[:])
}

// Decrypt implements cipher.Block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}
	out := decryptBlock(*(*Block)(src), c.sched)
	copy(dst, out[:])
}

// EncryptBlock encrypts a single Block.
func (c *Cipher) EncryptBlock(b Block) Block { return encryptBlock(b, c.sched) }

// DecryptBlock decrypts a single Block.
func (c *Cipher) DecryptBlock(b Block) Block { return decryptBlock(b, c.sched) }

// Wipe zeroes the cached schedule. The cipher must not be used afterwards.
func (c *Cipher) Wipe() {
	c.sched.Wipe()
	c.sched = nil
}
