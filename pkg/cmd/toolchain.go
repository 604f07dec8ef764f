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
	"fmt"
	"os"
	"path/filepath"

	"github.com/consensys/go-rambo/pkg/toolchain"
	"github.com/consensys/go-rambo/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var toolchainCmd = &cobra.Command{
	Use:   "toolchain [flags]",
	Short: "fetch, patch and build the nesasm assembler.",
	Long: `Clone the nesasm assembler into the toolchain directory, apply the local
	 patches required to assemble the test ROMs, and build it.  Nothing is done
	 when a built assembler is already present, unless --force is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			force   = GetFlag(cmd, "force")
			root    = resolveRoot(cmd)
			manager = toolchain.NewManager(filepath.Join(root, "compiler", ".toolchain"))
		)
		//
		binary, err := manager.EnsureNesasm(force)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		termio.NewPanel("toolchain").
			WithStyle(panelStyle()).
			Add("nesasm ready at %s", binary).
			Render(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(toolchainCmd)
	toolchainCmd.Flags().Bool("force", false, "rebuild the assembler even when already present")
	toolchainCmd.Flags().String("root", "", "repository root (defaults to the enclosing git checkout)")
}
