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
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/consensys/go-rambo/pkg/rom"
	"github.com/consensys/go-rambo/pkg/toolchain"
	"github.com/consensys/go-rambo/pkg/util"
	"github.com/consensys/go-rambo/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var buildAccuracyCoinCmd = &cobra.Command{
	Use:   "build-accuracycoin [flags]",
	Short: "assemble the AccuracyCoin ROM and verify it against the reference image.",
	Long: `Assemble the AccuracyCoin sources in a staging copy of the source tree,
	 install the resulting image, and verify it byte-for-byte against the
	 reference image shipped in the repository.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			root   = resolveRoot(cmd)
			output = GetString(cmd, "output")
		)
		//
		if output == "" {
			output = filepath.Join(root, "compiler", "dist", "accuracycoin")
		}
		// Ensure the assembler is available
		manager := toolchain.NewManager(filepath.Join(root, "compiler", ".toolchain"))
		//
		assembler, err := manager.EnsureNesasm(false)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		config := rom.Config{
			SourceDir:  filepath.Join(root, "AccuracyCoin"),
			Assembler:  assembler,
			MainFile:   "AccuracyCoin.asm",
			Output:     output,
			KeepTemp:   GetFlag(cmd, "keep-temp"),
			SkipVerify: GetFlag(cmd, "skip-verify"),
		}
		// Run the build
		stats := util.NewPerfStats()
		result, err := rom.Build(config)
		stats.Log("Building AccuracyCoin")
		// Report outcome
		if errors.Is(err, rom.ErrVerificationFailed) {
			reportBuild(result)
			fmt.Println(err)
			os.Exit(3)
		} else if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		reportBuild(result)
	},
}

var buildBasicCmd = &cobra.Command{
	Use:   "build-basic",
	Short: "assemble the Microsoft BASIC port (not yet supported).",
	Run: func(cmd *cobra.Command, args []string) {
		termio.NewPanel("BASIC").
			WithStyle(panelStyle()).
			Add("building the BASIC port is not yet supported").
			Render(os.Stdout)
		//
		os.Exit(2)
	},
}

// reportBuild prints a summary panel for a completed build.
func reportBuild(result *rom.Result) {
	var (
		header = result.Header
		panel  = termio.NewPanel("AccuracyCoin").WithStyle(panelStyle())
	)
	//
	panel.Add("image: %s", result.Image)
	panel.Add("sha-256: %s", result.Digest)
	panel.Add("prg-rom: %d bytes", header.PrgRom)
	panel.Add("chr-rom: %d bytes", header.ChrRom)
	panel.Add("mapper: %d (%s mirroring)", header.Mapper, header.Mirroring)
	//
	if result.Verified {
		panel.Add("verified: yes")
	} else {
		panel.Add("verified: no")
	}
	//
	panel.Render(os.Stdout)
}

func init() {
	rootCmd.AddCommand(buildAccuracyCoinCmd)
	rootCmd.AddCommand(buildBasicCmd)
	buildAccuracyCoinCmd.Flags().StringP("output", "o", "", "install the built image at the given path")
	buildAccuracyCoinCmd.Flags().Bool("keep-temp", false, "keep the staging directory for inspection")
	buildAccuracyCoinCmd.Flags().Bool("skip-verify", false, "skip verification against the reference image")
	buildAccuracyCoinCmd.Flags().String("root", "", "repository root (defaults to the enclosing git checkout)")
}
