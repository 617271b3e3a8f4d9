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
	"strconv"
)

// Mode names a block cipher mode of operation.
// This package implements none of them; a mode layer calls
// Cipher.Encrypt or Cipher.Decrypt once per block.
type Mode int

const (
	// CBC (cipher block chaining) XORs each plaintext block
	// with the previous ciphertext block. Needs an IV.
	CBC Mode = iota + 1
	// CFB (cipher feedback) turns the block cipher into a
	// self-synchronizing stream cipher.
	CFB
	// OFB (output feedback) generates a keystream by repeatedly
	// encrypting the IV; encryption and decryption are identical.
	OFB
	// CTR (counter) generates a keystream by encrypting
	// successive counter values.
	CTR
)

func (m Mode) String() string {
	switch m {
	case CBC:
		return "CBC"
	case CFB:
		return "CFB"
	case OFB:
		return "OFB"
	case CTR:
		return "CTR"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}
