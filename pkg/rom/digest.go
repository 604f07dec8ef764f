// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rom

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// digestBlockSize is the number of bytes hashed per read when digesting a
// file.
const digestBlockSize = 64 * 1024

// HashFile computes the SHA-256 digest of a given file, returned as a lower
// case hex string.  The file is hashed in blocks, so images never need to fit
// in memory.
func HashFile(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	//
	defer file.Close()
	//
	hash := sha256.New()
	buf := make([]byte, digestBlockSize)
	//
	if _, err := io.CopyBuffer(hash, file, buf); err != nil {
		return "", err
	}
	//
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Identical reports whether two files hold byte-for-byte identical contents.
func Identical(filename1 string, filename2 string) (bool, error) {
	bytes1, err := os.ReadFile(filename1)
	if err != nil {
		return false, err
	}
	//
	bytes2, err := os.ReadFile(filename2)
	if err != nil {
		return false, err
	}
	//
	return bytes.Equal(bytes1, bytes2), nil
}
