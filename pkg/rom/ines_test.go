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
	"testing"
)

func TestHeader_01(t *testing.T) {
	header := CheckHeader(t, inesHeader(2, 1, 0x00, 0x00))
	//
	if header.PrgRom != 32*1024 {
		t.Errorf("PRG ROM was %d, expected 32768", header.PrgRom)
	}
	//
	if header.ChrRom != 8*1024 {
		t.Errorf("CHR ROM was %d, expected 8192", header.ChrRom)
	}
	//
	if header.Mapper != 0 {
		t.Errorf("mapper was %d, expected 0", header.Mapper)
	}
	//
	if header.Mirroring != HORIZONTAL {
		t.Errorf("mirroring was %s, expected horizontal", header.Mirroring)
	}
}

func TestHeader_02(t *testing.T) {
	// Mapper number is split across both flag bytes.
	header := CheckHeader(t, inesHeader(2, 0, 0x12, 0x40))
	//
	if header.Mapper != 0x41 {
		t.Errorf("mapper was %d, expected 65", header.Mapper)
	}
	//
	if header.Mirroring != HORIZONTAL {
		t.Errorf("mirroring was %s, expected horizontal", header.Mirroring)
	}
	//
	if !header.Battery {
		t.Errorf("battery flag not decoded")
	}
}

func TestHeader_03(t *testing.T) {
	header := CheckHeader(t, inesHeader(1, 1, 0x01, 0x00))
	//
	if header.Mirroring != VERTICAL {
		t.Errorf("mirroring was %s, expected vertical", header.Mirroring)
	}
}

func TestHeader_04(t *testing.T) {
	// Four-screen mirroring takes precedence over the mirroring bit.
	header := CheckHeader(t, inesHeader(1, 1, 0x09, 0x00))
	//
	if header.Mirroring != FOUR_SCREEN {
		t.Errorf("mirroring was %s, expected four-screen", header.Mirroring)
	}
}

func TestHeader_Err1(t *testing.T) {
	if _, err := ParseHeader([]byte{'N', 'E', 'S'}); err == nil {
		t.Errorf("truncated header should have failed")
	}
}

func TestHeader_Err2(t *testing.T) {
	data := inesHeader(1, 1, 0x00, 0x00)
	data[0] = 'X'
	//
	if _, err := ParseHeader(data); err == nil {
		t.Errorf("bad magic should have failed")
	}
}

// ============================================================================
// Helpers
// ============================================================================

// inesHeader constructs a well-formed iNES header with given size and flag
// bytes.
func inesHeader(prg byte, chr byte, flags6 byte, flags7 byte) []byte {
	data := make([]byte, headerSize)
	copy(data, inesMagic)
	data[4] = prg
	data[5] = chr
	data[6] = flags6
	data[7] = flags7
	//
	return data
}

// CheckHeader parses a given header, which must be well-formed.
func CheckHeader(t *testing.T, data []byte) Header {
	header, err := ParseHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	//
	return header
}
