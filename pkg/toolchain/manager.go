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
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// nesasmRepository is the upstream home of the assembler the ROM sources are
// written for.
const nesasmRepository = "https://github.com/toastynerd/nesasm.git"

// Manager looks after a local checkout of the assembler toolchain, keeping
// everything it touches underneath a single directory.
type Manager struct {
	// Directory under which toolchain checkouts are kept.
	dir string
}

// NewManager constructs a manager which keeps its checkouts under a given
// directory.
func NewManager(dir string) *Manager {
	return &Manager{dir}
}

// EnsureNesasm ensures a patched nesasm binary is available, cloning and
// building the assembler when necessary, and returns the binary path.
// Passing force discards any existing checkout first.
func (p *Manager) EnsureNesasm(force bool) (string, error) {
	var (
		checkout = filepath.Join(p.dir, "nesasm")
		binary   = filepath.Join(checkout, "bin", "nesasm")
	)
	//
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return "", err
	}
	//
	if force {
		log.Debugf("discarding existing checkout at %s", checkout)
		//
		if err := os.RemoveAll(checkout); err != nil {
			return "", err
		}
	}
	// Clone upstream when absent
	if _, err := os.Stat(checkout); os.IsNotExist(err) {
		log.Infof("cloning %s", nesasmRepository)
		//
		if err := run(p.dir, "git", "clone", "--depth", "1", nesasmRepository, checkout); err != nil {
			return "", err
		}
	}
	// Patch the sources (idempotent)
	if err := applyPatches(checkout, nesasmPatches); err != nil {
		return "", err
	}
	// Build when the binary is missing
	if _, err := os.Stat(binary); force || os.IsNotExist(err) {
		log.Infof("building nesasm")
		//
		if err := run(checkout, "make"); err != nil {
			return "", err
		}
	}
	// Sanity check the build actually produced it
	if _, err := os.Stat(binary); err != nil {
		return "", fmt.Errorf("nesasm build completed but %s is missing", binary)
	}
	//
	return binary, nil
}

// FindRoot locates the root of the enclosing git repository, which anchors
// the default locations of the toolchain, ROM sources and dist directory.
func FindRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	//
	return strings.TrimSpace(string(out)), nil
}

// run executes a given command in a given directory, forwarding its output to
// the user.
func run(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	//
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	//
	return nil
}
