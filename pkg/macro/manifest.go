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
package macro

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// manifestEntry is the serialised form of a single macro definition.
type manifestEntry struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
	Lines      uint     `json:"lines"`
	Usages     uint     `json:"usages"`
}

// MarshalManifest serialises a given set of definitions as a JSON document,
// with one entry per definition in the given (i.e. discovery) order.
func MarshalManifest(macros []Definition) ([]byte, error) {
	entries := make([]manifestEntry, len(macros))
	//
	for i := range macros {
		m := &macros[i]
		entries[i] = manifestEntry{m.name, m.parameters, m.LineCount(), m.usages}
	}
	//
	return json.MarshalIndent(entries, "", "  ")
}

// WriteManifest writes a manifest of the given definitions to a given file,
// creating any missing parent directories along the way.
func WriteManifest(macros []Definition, filename string) error {
	bytes, err := MarshalManifest(macros)
	if err != nil {
		return err
	}
	// Ensure enclosing directory exists
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	//
	return os.WriteFile(filename, bytes, 0644)
}
