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
package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Patch describes a literal source edit to be applied to a file within a
// checkout.  Patches are matched on exact text, not on line numbers, so they
// survive unrelated upstream drift.
type Patch struct {
	// File the patch applies to, relative to the checkout root.
	File string
	// Exact text to find.
	Find string
	// Text to replace every occurrence of Find with.
	Replace string
}

// Apply rewrites the patched file in place.  Applying a patch twice is
// harmless: a file which already contains the replacement text is left
// untouched.  However, a file containing neither the original nor the
// replacement text signals upstream drift and yields an error.
func (p *Patch) Apply(root string) error {
	filename := filepath.Join(root, p.File)
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	//
	contents := string(bytes)
	//
	if strings.Contains(contents, p.Replace) {
		log.Debugf("patch already applied to %s", p.File)
		return nil
	}
	//
	if !strings.Contains(contents, p.Find) {
		return fmt.Errorf("%s: cannot find %q to patch", p.File, p.Find)
	}
	//
	contents = strings.ReplaceAll(contents, p.Find, p.Replace)
	//
	return os.WriteFile(filename, []byte(contents), 0644)
}

// applyPatches applies each patch in turn, stopping at the first failure.
func applyPatches(root string, patches []Patch) error {
	for _, patch := range patches {
		if err := patch.Apply(root); err != nil {
			return err
		}
	}
	//
	return nil
}

// nesasmPatches are the fixes required for nesasm to build with a modern C
// toolchain, and to accept the long symbol names used by the ROM sources.
var nesasmPatches = []Patch{
	{"src/pcx.c",
		"\t\t\texpr_lablcnt = NULL;",
		"\t\t\texpr_lablcnt = 0;"},
	{"src/pcx.c",
		"\tif (strlen(name) && (strcasecmp(pcx_name, name) == NULL))",
		"\tif (strlen(name) && (strcasecmp(pcx_name, name) == 0))"},
	{"src/defs.h",
		"#define SBOLSZ\t32",
		"#define SBOLSZ\t128"},
}
