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

// Package tables holds the fixed lookup tables of the AES round
// function: the byte substitution box, its inverse, and the
// index permutations implementing ShiftRows.
//
// The S-box is derived from the field arithmetic in package gf
// when the package is initialized rather than embedded as data.
package tables

import (
	"math/bits"

	"github.com/SnellerInc/rijndael/internal/gf"
)

var (
	// SBox is the forward substitution box.
	SBox [256]byte
	// InvSBox is the inverse of SBox: InvSBox[SBox[x]] == x.
	InvSBox [256]byte
)

// Shift and InvShift are gather permutations over the
// column-major state: out[i] = in[Shift[i]].
// Shift rotates row r left by r positions; InvShift undoes it.
var (
	Shift    [16]byte
	InvShift [16]byte
)

// affine applies the Rijndael affine transformation over GF(2).
func affine(b byte) byte {
	return b ^
		bits.RotateLeft8(b, 1) ^
		bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^
		0x63
}

func init() {
	for i := 0; i < 256; i++ {
		s := affine(gf.Inv(byte(i)))
		SBox[i] = s
		InvSBox[s] = byte(i)
	}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			Shift[r+4*c] = byte(r + 4*((c+r)%4))
			InvShift[r+4*c] = byte(r + 4*((c-r+4)%4))
		}
	}
}
