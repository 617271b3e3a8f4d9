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
	"github.com/SnellerInc/rijndael/ints"
)

// Schedule is an expanded key: one 16-byte round key
// per round, round 0 first.
type Schedule []byte

// Rounds returns the number of round keys in s.
func (s Schedule) Rounds() int { return len(s) / BlockSize }

// RoundKey returns round key i as a sub-slice of s.
func (s Schedule) RoundKey(i int) []byte {
	return s[i*BlockSize : (i+1)*BlockSize : (i+1)*BlockSize]
}

// Wipe zeroes the schedule in place.
func (s Schedule) Wipe() { ints.Zero(s) }

// Expand validates key and expands it into 176, 208 or 240 bytes
// of round keys for 16-, 24- or 32-byte keys respectively.
func Expand(key []byte) (Schedule, error) {
	size, err := checkKeySize(len(key))
	if err != nil {
		return nil, err
	}
	return expand(key, size), nil
}

// Expand expands the key. It fails only for the zero Key.
func (k Key) Expand() (Schedule, error) {
	size, err := checkKeySize(len(k.b))
	if err != nil {
		return nil, err
	}
	return expand(k.b, size), nil
}

// roundConstant returns x^(i-1) in GF(2^8), or 0 for i == 0.
func roundConstant(i int) byte {
	if i == 0 {
		return 0
	}
	rc := byte(1)
	for ; i > 1; i-- {
		rc = gf.Xtime(rc)
	}
	return rc
}

func subWord(w *[4]byte) {
	for i := range w {
		w[i] = tables.SBox[w[i]]
	}
}

// scheduleCore rotates the word left by one byte, substitutes
// every byte and adds round constant n to the first byte.
func scheduleCore(w *[4]byte, n int) {
	w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
	subWord(w)
	w[0] ^= roundConstant(n)
}

func expand(key []byte, size KeySize) Schedule {
	ks := int(size)
	total := size.ScheduleSize()
	s := make(Schedule, ks, total)
	copy(s, key)

	var t [4]byte
	n := 1
	for len(s) < total {
		copy(t[:], s[len(s)-4:])
		if len(s)%ks == 0 {
			scheduleCore(&t, n)
			n++
		}
		// 256-bit keys apply an extra SubWord halfway through each key block
		if size == Key256 && len(s)%ks == 16 {
			subWord(&t)
		}
		for i := range t {
			s = append(s, s[len(s)-ks]^t[i])
		}
	}
	return s
}
