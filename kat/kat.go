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

// Package kat loads and runs known-answer test suites
// for the block transform.
//
// A suite is a YAML (or JSON) document listing vectors.
// Keys and blocks are hex strings; quote them in YAML so
// that all-digit values are not read as numbers.
// Suite files may be compressed with zstd (.zst) or s2 (.s2).
package kat

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/crypto/blake2b"
	"sigs.k8s.io/yaml"

	"github.com/SnellerInc/rijndael/compr"
)

// Vector is a single known-answer test.
type Vector struct {
	Name string `json:"name"`
	// Key is the hex-encoded key.
	Key string `json:"key"`
	// Plaintext is the hex-encoded input block.
	// It defaults to the all-zero block.
	Plaintext string `json:"plaintext,omitempty"`
	// Ciphertext is the expected hex-encoded output block.
	// When it is empty only the round trip is checked.
	Ciphertext string `json:"ciphertext,omitempty"`
	// Invalid means the key must be rejected
	// with rijndael.ErrInvalidKeySize.
	Invalid bool `json:"invalid,omitempty"`
}

// Suite is a named list of vectors.
type Suite struct {
	Name    string   `json:"name"`
	Vectors []Vector `json:"vectors"`

	// Digest is the hex BLAKE2b-256 digest of the
	// suite file as it was read, before decompression.
	Digest string `json:"-"`
}

// Decode decodes a suite from the raw contents of
// the file with the given name. The file name selects
// the decompression codec, if any, and names the suite
// when the document does not.
func Decode(name string, raw []byte) (*Suite, error) {
	sum := blake2b.Sum256(raw)
	buf := raw
	c := compr.ForFile(name)
	if c != nil {
		var err error
		buf, err = c.Decompress(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("kat: %s: %s decompression: %w", name, c.Name(), err)
		}
	}
	s := new(Suite)
	if err := yaml.Unmarshal(buf, s); err != nil {
		return nil, fmt.Errorf("kat: %s: %w", name, err)
	}
	if s.Name == "" {
		base := path.Base(compr.Trim(name, c))
		s.Name = strings.TrimSuffix(base, path.Ext(base))
	}
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("kat: %s: %w", name, err)
	}
	s.Digest = hex.EncodeToString(sum[:])
	return s, nil
}

// Load reads and decodes the suite stored at name in fsys.
func Load(fsys fs.FS, name string) (*Suite, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("kat: %w", err)
	}
	return Decode(name, raw)
}

// check rejects suites that cannot be run at all;
// malformed hex is reported per vector by Run instead.
func (s *Suite) check() error {
	if len(s.Vectors) == 0 {
		return fmt.Errorf("suite %q has no vectors", s.Name)
	}
	seen := make(map[string]struct{}, len(s.Vectors))
	for i := range s.Vectors {
		n := s.Vectors[i].Name
		if n == "" {
			return fmt.Errorf("vector %d has no name", i)
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("duplicate vector name %q", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}
