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
	_ "embed"
)

//go:embed builtin.yaml
var builtinYAML []byte

// BuiltinName is the file name the built-in suite is decoded under.
const BuiltinName = "builtin.yaml"

// Builtin returns the embedded suite: FIPS-197 appendix B and C
// vectors, all-ones keys of every size, round-trip-only vectors
// and rejected key sizes.
func Builtin() *Suite {
	s, err := Decode(BuiltinName, builtinYAML)
	if err != nil {
		panic(err)
	}
	return s
}
