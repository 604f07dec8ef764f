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
	"fmt"
	"io"
	"os"
)

// headerSize is the size of an iNES header in bytes.
const headerSize = 16

// inesMagic is the four byte tag opening every iNES image.
var inesMagic = []byte{'N', 'E', 'S', 0x1a}

// Mirroring distinguishes the nametable mirroring arrangements an iNES image
// can declare.
type Mirroring uint8

// HORIZONTAL nametable mirroring.
const HORIZONTAL Mirroring = 0

// VERTICAL nametable mirroring.
const VERTICAL Mirroring = 1

// FOUR_SCREEN means the cartridge provides all four nametables itself.
const FOUR_SCREEN Mirroring = 2

func (p Mirroring) String() string {
	switch p {
	case HORIZONTAL:
		return "horizontal"
	case VERTICAL:
		return "vertical"
	default:
		return "four-screen"
	}
}

// Header represents the decoded header of an iNES ROM image.
type Header struct {
	// Size of the PRG ROM in bytes.
	PrgRom uint
	// Size of the CHR ROM in bytes (zero means the board uses CHR RAM).
	ChrRom uint
	// Mapper number assigned by the iNES standard.
	Mapper uint8
	// Nametable mirroring arrangement.
	Mirroring Mirroring
	// Whether the cartridge carries battery backed RAM.
	Battery bool
}

// ParseHeader decodes an iNES header from the opening bytes of an image.
func ParseHeader(data []byte) (Header, error) {
	var header Header
	// Sanity check length before touching any offset
	if len(data) < headerSize {
		return header, fmt.Errorf("truncated iNES header (%d bytes)", len(data))
	}
	//
	if !bytes.Equal(data[0:4], inesMagic) {
		return header, fmt.Errorf("malformed iNES header (bad magic %q)", data[0:4])
	}
	// PRG ROM size is given in 16KiB units, CHR ROM in 8KiB units.
	header.PrgRom = uint(data[4]) * 16 * 1024
	header.ChrRom = uint(data[5]) * 8 * 1024
	header.Mapper = (data[7] & 0xf0) | (data[6] >> 4)
	header.Battery = data[6]&0x02 != 0
	//
	switch {
	case data[6]&0x08 != 0:
		header.Mirroring = FOUR_SCREEN
	case data[6]&0x01 != 0:
		header.Mirroring = VERTICAL
	default:
		header.Mirroring = HORIZONTAL
	}
	//
	return header, nil
}

// ReadHeader decodes the iNES header of a given image file.
func ReadHeader(filename string) (Header, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Header{}, err
	}
	//
	defer file.Close()
	//
	data := make([]byte, headerSize)
	//
	if _, err := io.ReadFull(file, data); err != nil {
		return Header{}, fmt.Errorf("%s: truncated iNES header", filename)
	}
	//
	return ParseHeader(data)
}
