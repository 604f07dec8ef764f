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
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrVerificationFailed signals that a built image differs byte-for-byte from
// the reference image shipped alongside the ROM sources.
var ErrVerificationFailed = errors.New("built ROM differs from reference image")

// Config determines how a ROM build is staged, assembled, installed and
// verified.
type Config struct {
	// Directory containing the ROM sources.
	SourceDir string
	// Path of the assembler binary to invoke.
	Assembler string
	// Main source file, relative to SourceDir.
	MainFile string
	// Where to install the built image.  A path naming an existing directory
	// (or carrying no extension) is treated as a directory, and the image
	// keeps its own name inside it; anything else is taken as the target
	// filename itself.
	Output string
	// Retain the staging directory after the build, for inspection.
	KeepTemp bool
	// Skip byte-for-byte verification against the reference image.
	SkipVerify bool
}

// Result summarises a completed build.
type Result struct {
	// Path of the installed image.
	Image string
	// Hex-encoded SHA-256 digest of the installed image.
	Digest string
	// Decoded iNES header of the installed image.
	Header Header
	// Whether the image was verified against the reference.
	Verified bool
}

// Build runs the full build pipeline: stage the sources into a scratch
// directory, run the assembler, install the produced image, digest it and
// (unless disabled) verify it against the reference image kept with the
// sources.  On verification failure the returned result still describes the
// offending image, alongside ErrVerificationFailed.
func Build(cfg Config) (*Result, error) {
	var result Result
	// Stage sources into a scratch directory
	staging, err := os.MkdirTemp("", "accuracycoin-")
	if err != nil {
		return nil, err
	}
	//
	if cfg.KeepTemp {
		log.Infof("retaining staging directory %s", staging)
	} else {
		defer os.RemoveAll(staging)
	}
	//
	log.Debugf("staging %s into %s", cfg.SourceDir, staging)
	//
	if err := os.CopyFS(staging, os.DirFS(cfg.SourceDir)); err != nil {
		return nil, err
	}
	// Assemble
	if err := run(staging, cfg.Assembler, cfg.MainFile); err != nil {
		return nil, err
	}
	// Locate the produced image
	image := imageName(cfg.MainFile)
	built := filepath.Join(staging, image)
	//
	if _, err := os.Stat(built); err != nil {
		return nil, fmt.Errorf("assembler produced no image at %s", built)
	}
	// Install
	if result.Image, err = install(built, filepath.Base(image), cfg.Output); err != nil {
		return nil, err
	}
	//
	if result.Digest, err = HashFile(result.Image); err != nil {
		return nil, err
	}
	//
	if result.Header, err = ReadHeader(result.Image); err != nil {
		return nil, err
	}
	// Verify against the reference image
	if !cfg.SkipVerify {
		reference := filepath.Join(cfg.SourceDir, image)
		//
		if _, err := os.Stat(reference); os.IsNotExist(err) {
			log.Warnf("no reference image at %s, skipping verification", reference)
		} else if same, err := Identical(result.Image, reference); err != nil {
			return nil, err
		} else if !same {
			return &result, fmt.Errorf("%s: %w", image, ErrVerificationFailed)
		} else {
			result.Verified = true
		}
	}
	//
	return &result, nil
}

// imageName determines the name of the image an assembler run produces, which
// replaces the main file's extension with .nes.
func imageName(mainFile string) string {
	return strings.TrimSuffix(mainFile, filepath.Ext(mainFile)) + ".nes"
}

// install copies a built image to its output location, resolving whether the
// output names a directory or a file, and returns the installed path.
func install(built string, image string, output string) (string, error) {
	var target string
	//
	info, err := os.Stat(output)
	//
	switch {
	case err == nil && info.IsDir():
		target = filepath.Join(output, image)
	case filepath.Ext(output) == "":
		// No extension, so treat as a directory to be created.
		if err := os.MkdirAll(output, 0755); err != nil {
			return "", err
		}
		//
		target = filepath.Join(output, image)
	default:
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return "", err
		}
		//
		target = output
	}
	//
	return target, copyFile(built, target)
}

// copyFile copies the contents of one file over another.
func copyFile(from string, to string) error {
	bytes, err := os.ReadFile(from)
	if err != nil {
		return err
	}
	//
	return os.WriteFile(to, bytes, 0644)
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
