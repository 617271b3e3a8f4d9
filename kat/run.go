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

package kat

import (
	"crypto/aes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SnellerInc/rijndael"
)

// RunConfig controls (*Suite).Run.
type RunConfig struct {
	// Logf, if non-nil, receives one line per vector.
	Logf func(f string, args ...interface{})
	// Reference additionally checks every valid vector
	// against the crypto/aes implementation.
	Reference bool
}

func (c *RunConfig) logf(f string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(f, args...)
	}
}

// Result is the outcome of one vector.
type Result struct {
	Name string `json:"name"`
	// Key identifies the key by size and fingerprint.
	Key    string `json:"key"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

// Report is the outcome of running a suite.
type Report struct {
	// ID uniquely identifies this run.
	ID      string   `json:"id"`
	Suite   string   `json:"suite"`
	Digest  string   `json:"digest,omitempty"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

// OK reports whether every vector passed.
func (r *Report) OK() bool { return r.Failed == 0 }

// Run runs every vector in the suite.
func (s *Suite) Run(cfg *RunConfig) *Report {
	if cfg == nil {
		cfg = &RunConfig{}
	}
	r := &Report{
		ID:      uuid.New().String(),
		Suite:   s.Name,
		Digest:  s.Digest,
		Results: make([]Result, 0, len(s.Vectors)),
	}
	for i := range s.Vectors {
		v := &s.Vectors[i]
		res := Result{Name: v.Name}
		id, err := v.run(cfg.Reference)
		res.Key = id
		if err != nil {
			res.Error = err.Error()
			r.Failed++
			cfg.logf("FAIL %s (%s): %s", v.Name, id, err)
		} else {
			res.Passed = true
			r.Passed++
			cfg.logf("ok   %s (%s)", v.Name, id)
		}
		r.Results = append(r.Results, res)
	}
	return r
}

func unhexBlock(what, s string) (rijndael.Block, error) {
	var b rijndael.Block
	if s == "" {
		return b, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return b, fmt.Errorf("%s: %w", what, err)
	}
	if len(raw) != rijndael.BlockSize {
		return b, fmt.Errorf("%s: %d bytes, want %d", what, len(raw), rijndael.BlockSize)
	}
	copy(b[:], raw)
	return b, nil
}

// run checks the vector and returns a printable
// identifier for its key.
func (v *Vector) run(reference bool) (string, error) {
	key, err := hex.DecodeString(v.Key)
	if err != nil {
		return "?", fmt.Errorf("key: %w", err)
	}
	pt, err := unhexBlock("plaintext", v.Plaintext)
	if err != nil {
		return "?", err
	}
	k, kerr := rijndael.NewKey(key)
	if v.Invalid {
		id := fmt.Sprintf("invalid(%d)", len(key))
		if kerr == nil {
			return k.String(), fmt.Errorf("key of %d bytes was accepted", len(key))
		}
		if _, err := rijndael.Encrypt(pt, key); !errors.Is(err, rijndael.ErrInvalidKeySize) {
			return id, fmt.Errorf("encrypt: unexpected error %v", err)
		}
		if _, err := rijndael.Decrypt(pt, key); !errors.Is(err, rijndael.ErrInvalidKeySize) {
			return id, fmt.Errorf("decrypt: unexpected error %v", err)
		}
		return id, nil
	}
	if kerr != nil {
		return "?", kerr
	}
	id := k.String()

	got, err := rijndael.Encrypt(pt, key)
	if err != nil {
		return id, err
	}
	if v.Ciphertext != "" {
		want, err := unhexBlock("ciphertext", v.Ciphertext)
		if err != nil {
			return id, err
		}
		if got != want {
			return id, fmt.Errorf("encrypt: got %x, want %x", got, want)
		}
	}
	back, err := rijndael.Decrypt(got, key)
	if err != nil {
		return id, err
	}
	if back != pt {
		return id, fmt.Errorf("decrypt: got %x, want %x", back, pt)
	}
	if reference {
		ref, err := aes.NewCipher(key)
		if err != nil {
			return id, fmt.Errorf("reference: %w", err)
		}
		var want rijndael.Block
		ref.Encrypt(want[:], pt[:])
		if got != want {
			return id, fmt.Errorf("reference: crypto/aes gives %x, got %x", want, got)
		}
	}
	return id, nil
}
