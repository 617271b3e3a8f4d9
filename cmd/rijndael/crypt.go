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

package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/SnellerInc/rijndael"
)

// crypt encrypts or decrypts every hex block in args
// and writes one hex block per line to w.
func crypt(w io.Writer, key []byte, args []string, decrypt bool) error {
	c, err := rijndael.NewCipher(key)
	if err != nil {
		return err
	}
	defer c.Wipe()
	if dashv {
		k, _ := rijndael.NewKey(key)
		logf("using key %s", k)
	}
	if len(args) == 0 {
		return fmt.Errorf("no blocks given")
	}
	for _, arg := range args {
		raw, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("block %q: %w", arg, err)
		}
		if len(raw) != rijndael.BlockSize {
			return fmt.Errorf("block %q: %d bytes, want %d", arg, len(raw), rijndael.BlockSize)
		}
		in := rijndael.Block(raw)
		var out rijndael.Block
		if decrypt {
			out = c.DecryptBlock(in)
		} else {
			out = c.EncryptBlock(in)
		}
		if _, err := fmt.Fprintf(w, "%x\n", out[:]); err != nil {
			return err
		}
	}
	return nil
}

// expand prints the round keys, one per line.
func expand(w io.Writer, key []byte) error {
	s, err := rijndael.Expand(key)
	if err != nil {
		return err
	}
	defer s.Wipe()
	for i := 0; i < s.Rounds(); i++ {
		if _, err := fmt.Fprintf(w, "%2d %x\n", i, s.RoundKey(i)); err != nil {
			return err
		}
	}
	return nil
}
