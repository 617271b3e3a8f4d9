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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/cpu"

	"github.com/SnellerInc/rijndael/kat"
)

// hardwareAES reports whether crypto/aes, the reference
// used by -ref, runs on AES instructions on this machine.
func hardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}

func loadSuites(files []string) ([]*kat.Suite, error) {
	if len(files) == 0 {
		return []*kat.Suite{kat.Builtin()}, nil
	}
	suites := make([]*kat.Suite, 0, len(files))
	for _, name := range files {
		s, err := kat.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// runKAT runs the named suites (or the built-in one)
// and reports whether every vector passed.
func runKAT(w io.Writer, files []string) (bool, error) {
	suites, err := loadSuites(files)
	if err != nil {
		return false, err
	}
	cfg := &kat.RunConfig{Reference: dashref}
	if dashv {
		cfg.Logf = logf
		if dashref {
			logf("reference crypto/aes hardware acceleration: %v", hardwareAES())
		}
	}
	ok := true
	reports := make([]*kat.Report, 0, len(suites))
	for _, s := range suites {
		r := s.Run(cfg)
		ok = ok && r.OK()
		reports = append(reports, r)
		if !dashjson {
			fmt.Fprintf(w, "%s: %d passed, %d failed (run %s, digest %.16s)\n",
				r.Suite, r.Passed, r.Failed, r.ID, r.Digest)
			for _, res := range r.Results {
				if !res.Passed {
					fmt.Fprintf(w, "  FAIL %s (%s): %s\n", res.Name, res.Key, res.Error)
				}
			}
		}
	}
	if dashjson {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return false, err
		}
	}
	return ok, nil
}
