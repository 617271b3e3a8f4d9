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

// Package ints provides generic helpers over slices of integers
// that hold key material.
package ints

import (
	"crypto/rand"
	"io"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func asBytes[T constraints.Integer](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}

// RandomFillSlice fills a slice of []T with content produced by a cryptographically strong random number generator
func RandomFillSlice[T constraints.Integer](out []T) error {
	_, err := io.ReadFull(rand.Reader, asBytes(out))
	return err
}

// Zero overwrites every element of s with zero.
// It is used to scrub expanded keys once they are no longer needed.
func Zero[T constraints.Integer](s []T) {
	for i := range s {
		s[i] = 0
	}
}

// Equal reports whether a and b hold identical elements without
// exiting early on the first mismatch.
func Equal[T constraints.Integer](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	var acc T
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}
