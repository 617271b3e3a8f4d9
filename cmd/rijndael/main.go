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

// Command rijndael encrypts and decrypts single AES blocks,
// prints key schedules and runs known-answer test suites.
//
// Usage:
//
//	rijndael [-v] [-k hexkey] encrypt <hexblock>...
//	rijndael [-v] [-k hexkey] decrypt <hexblock>...
//	rijndael [-k hexkey] expand
//	rijndael [-v] [-json] [-ref] kat [suite.yaml[.zst|.s2]]...
//
// When -k is not given the key is read from $RIJNDAEL_KEY.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

const keyEnvVar = "RIJNDAEL_KEY"

var (
	dashv    bool
	dashh    bool
	dashk    string
	dashjson bool
	dashref  bool
)

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.BoolVar(&dashh, "h", false, "show usage help")
	flag.StringVar(&dashk, "k", "", "hex-encoded 16, 24 or 32 byte key (default: $"+keyEnvVar+")")
	flag.BoolVar(&dashjson, "json", false, "print the kat report as JSON")
	flag.BoolVar(&dashref, "ref", false, "cross-check kat vectors against crypto/aes")
}

func exitf(f string, args ...interface{}) {
	if f[len(f)-1] != '\n' {
		f += "\n"
	}
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if f[len(f)-1] != '\n' {
		f += "\n"
	}
	fmt.Fprintf(os.Stderr, f, args...)
}

var errNoKey = errors.New("no key: use -k or set $" + keyEnvVar)

// parseKey decodes the key given on the command line,
// falling back to the environment.
func parseKey(flagval string, getenv func(string) string) ([]byte, error) {
	s := flagval
	if s == "" {
		s = getenv(keyEnvVar)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errNoKey
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}
	return key, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] encrypt|decrypt|expand|kat [args...]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if dashh || len(args) == 0 {
		usage()
		if dashh {
			os.Exit(0)
		}
		os.Exit(1)
	}

	switch cmd := args[0]; cmd {
	case "encrypt", "decrypt", "expand":
		key, err := parseKey(dashk, os.Getenv)
		if err != nil {
			exitf("%s", err)
		}
		if cmd == "expand" {
			err = expand(os.Stdout, key)
		} else {
			err = crypt(os.Stdout, key, args[1:], cmd == "decrypt")
		}
		if err != nil {
			exitf("%s: %s", cmd, err)
		}
	case "kat":
		ok, err := runKAT(os.Stdout, args[1:])
		if err != nil {
			exitf("kat: %s", err)
		}
		if !ok {
			os.Exit(1)
		}
	default:
		exitf("unknown command %q", cmd)
	}
}
