// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Unpack sniffs the stream's leading magic bytes and transparently
// decompresses gzip, zstd, xz, and lz4 input.  Anything else passes through
// untouched.
func Unpack(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	// A short read here is fine; the magic simply won't match and any real
	// failure resurfaces on the first Read.
	magic, _ := br.Peek(6)

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip input: %w", err)
		}

		return zr, nil

	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd input: %w", err)
		}

		return zr, nil

	case bytes.HasPrefix(magic, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("xz input: %w", err)
		}

		return xr, nil

	case bytes.HasPrefix(magic, lz4Magic):
		return lz4.NewReader(br), nil

	default:
		return br, nil
	}
}
