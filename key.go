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
	"errors"
	"fmt"
	"strconv"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"

	"github.com/SnellerInc/rijndael/ints"
)

// KeySize is the length of an AES key in bytes.
type KeySize int

const (
	Key128 KeySize = 16
	Key192 KeySize = 24
	Key256 KeySize = 32
)

// ErrInvalidKeySize is matched (via errors.Is) by every
// KeySizeError returned from this package.
var ErrInvalidKeySize = errors.New("rijndael: invalid key size")

// KeySizeError is returned when a key is not 16, 24 or 32 bytes long.
// Its value is the rejected length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k))
}

// Is makes errors.Is(err, ErrInvalidKeySize) hold.
func (k KeySizeError) Is(target error) bool { return target == ErrInvalidKeySize }

// Valid reports whether k is one of Key128, Key192 or Key256.
func (k KeySize) Valid() bool {
	switch k {
	case Key128, Key192, Key256:
		return true
	}
	return false
}

// Rounds returns the number of round keys consumed by
// the transform, counting the initial key addition:
// 11, 13 or 15. It returns 0 for an invalid size.
func (k KeySize) Rounds() int {
	switch k {
	case Key128:
		return 11
	case Key192:
		return 13
	case Key256:
		return 15
	}
	return 0
}

// ScheduleSize returns the length in bytes of the expanded key.
func (k KeySize) ScheduleSize() int { return k.Rounds() * BlockSize }

func (k KeySize) String() string {
	if !k.Valid() {
		return "KeySize(" + strconv.Itoa(int(k)) + ")"
	}
	return "AES-" + strconv.Itoa(int(k)*8)
}

// Key is a validated AES key. The zero Key is not valid;
// use NewKey or RandomKey.
type Key struct {
	b []byte
}

// checkKeySize returns the KeySize for a key of length n.
func checkKeySize(n int) (KeySize, error) {
	k := KeySize(n)
	if !k.Valid() {
		return 0, KeySizeError(n)
	}
	return k, nil
}

// NewKey validates b and returns a Key holding a private copy of it.
func NewKey(b []byte) (Key, error) {
	if _, err := checkKeySize(len(b)); err != nil {
		return Key{}, err
	}
	return Key{b: slices.Clone(b)}, nil
}

// RandomKey creates a key of the given size with cryptographically strong RNG values
func RandomKey(size KeySize) (Key, error) {
	if !size.Valid() {
		return Key{}, KeySizeError(size)
	}
	b := make([]byte, size)
	if err := ints.RandomFillSlice(b); err != nil {
		return Key{}, err
	}
	return Key{b: b}, nil
}

// Size returns the key size; it is 0 for the zero Key.
func (k Key) Size() KeySize { return KeySize(len(k.b)) }

// Bytes returns a copy of the key bytes.
func (k Key) Bytes() []byte { return slices.Clone(k.b) }

// Equal reports whether k and o hold the same key bytes.
func (k Key) Equal(o Key) bool { return ints.Equal(k.b, o.b) }

const (
	fpk0 = 0x736e656c6c657221
	fpk1 = 0x72696a6e6461656c
)

// Fingerprint returns a SipHash-2-4 digest of the key bytes under
// a fixed key. It identifies a key in logs without revealing it.
func (k Key) Fingerprint() uint64 {
	return siphash.Hash(fpk0, fpk1, k.b)
}

// String prints the key size and fingerprint, never the key itself.
func (k Key) String() string {
	return fmt.Sprintf("%s:%016x", k.Size(), k.Fingerprint())
}

// GoString keeps %#v from dumping the key bytes.
func (k Key) GoString() string { return "rijndael.Key(" + k.String() + ")" }
