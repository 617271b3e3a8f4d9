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

// Package rijndael is a from-scratch implementation of the AES block
// cipher (Rijndael with a 128-bit block) for 128-, 192- and 256-bit keys.
//
// The package exposes single-block encryption and decryption,
// the key expansion producing the per-round subkeys, and a Cipher
// type that caches an expanded key and satisfies crypto/cipher.Block
// so that mode-of-operation layers can drive it.
//
// The round function is written directly from its definition:
// SubBytes uses a lookup table, MixColumns uses the doubling identity
// and InvMixColumns uses full GF(2^8) multiplication. No attempt is
// made to run in constant time.
package rijndael
