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

// Package gf implements the GF(2^8) arithmetic used by Rijndael.
// Elements are bytes interpreted as polynomials over GF(2), reduced
// modulo x^8 + x^4 + x^3 + x + 1 (0x11b).
package gf

// Poly is the low byte of the reduction polynomial 0x11b.
const Poly = 0x1b

// Xtime multiplies a by x, folding the overflowing bit back into the field.
func Xtime(a byte) byte {
	hi := a & 0x80
	a <<= 1
	if hi != 0 {
		a ^= Poly
	}
	return a
}

// Mul computes the carry-less product of a and b modulo 0x11b.
func Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}
	return p
}

// Inv returns the multiplicative inverse of a, computed as a^254.
// Zero has no inverse; Inv(0) is 0 by convention.
func Inv(a byte) byte {
	// a^254 = a^(2+4+8+16+32+64+128)
	r := byte(1)
	sq := Mul(a, a)
	for i := 1; i < 8; i++ {
		r = Mul(r, sq)
		sq = Mul(sq, sq)
	}
	return r
}
