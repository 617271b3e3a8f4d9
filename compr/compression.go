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

// Package compr wraps the third-party compression
// libraries used for whole-file codecs, such as
// compressed known-answer vector files.
package compr

import (
	"path"
	"runtime"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// Codec compresses and decompresses complete buffers.
type Codec interface {
	// Name is the name of the compression algorithm.
	Name() string
	// Ext is the file extension, including the dot,
	// used for files compressed with this codec.
	Ext() string
	// Compress appends the compressed contents
	// of src to dst and returns the result.
	Compress(src, dst []byte) []byte
	// Decompress appends the decompressed contents
	// of src to dst and returns the result.
	//
	// It must be safe to make multiple calls to
	// Decompress simultaneously from different goroutines.
	Decompress(src, dst []byte) ([]byte, error)
}

var (
	zstdDecoder *zstd.Decoder
	zstdEncoder *zstd.Encoder
)

func init() {
	// by default, concurrency is set to min(4, GOMAXPROCS);
	// we'd like it to *always* be GOMAXPROCS
	z, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	zstdDecoder = z
	e, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		panic(err)
	}
	zstdEncoder = e
}

type zstdCodec struct{}

func (zstdCodec) Name() string { return "zstd" }
func (zstdCodec) Ext() string  { return ".zst" }

func (zstdCodec) Compress(src, dst []byte) []byte {
	return zstdEncoder.EncodeAll(src, dst)
}

// Decompress calls DecodeAll on the global zstd decoder.
//
// See: (*zstd.Decoder).DecodeAll
func (zstdCodec) Decompress(src, dst []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(src, dst)
}

type s2Codec struct{}

func (s2Codec) Name() string { return "s2" }
func (s2Codec) Ext() string  { return ".s2" }

func (s2Codec) Compress(src, dst []byte) []byte {
	return append(dst, s2.Encode(nil, src)...)
}

func (s2Codec) Decompress(src, dst []byte) ([]byte, error) {
	got, err := s2.Decode(nil, src)
	if err != nil {
		return dst, err
	}
	return append(dst, got...), nil
}

var codecs = []Codec{zstdCodec{}, s2Codec{}}

// Compression selects a codec by name.
// The returned Codec will return the same value
// for Codec.Name as the specified name.
// It returns nil for an unknown name.
func Compression(name string) Codec {
	for _, c := range codecs {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// ForFile returns the codec implied by the extension
// of the file name, or nil if the file is not compressed
// with a known codec.
func ForFile(name string) Codec {
	ext := path.Ext(name)
	for _, c := range codecs {
		if c.Ext() == ext {
			return c
		}
	}
	return nil
}

// Trim returns name without the extension of codec c.
func Trim(name string, c Codec) string {
	if c == nil {
		return name
	}
	return name[:len(name)-len(c.Ext())]
}
