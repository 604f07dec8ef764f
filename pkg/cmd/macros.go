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

	"github.com/consensys/go-rambo/pkg/macro"
	"github.com/consensys/go-rambo/pkg/util"
	"github.com/consensys/go-rambo/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var macrosCmd = &cobra.Command{
	Use:   "macros [flags] source_file",
	Short: "analyse macro declarations in an assembly source file.",
	Long: `Scan a given assembly source file for macro declarations, reporting the
	parameters, body size and usage count of each.  A machine-readable JSON
	manifest of the same information can be written alongside.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		output := GetString(cmd, "output")
		srcfile := readSourceFile(args[0])
		// Analyse declarations and usages
		stats := util.NewPerfStats()
		macros := macro.Analyse(srcfile)
		stats.Log("Analysing macros")
		//
		listMacros(srcfile, macros)
		// Write manifest (if requested)
		if output != "" {
			if err := macro.WriteManifest(macros, output); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			log.Infof("wrote %d macro declarations to %s", len(macros), output)
		}
	},
}

// listMacros prints a summary row for every declaration found, identifying
// the line on which each was declared.
func listMacros(srcfile *source.File, macros []macro.Definition) {
	fmt.Printf("%-20s %6s %6s %7s %6s\n", "MACRO", "PARAMS", "LINES", "USAGES", "LINE")
	//
	for _, m := range macros {
		line := srcfile.FindFirstEnclosingLine(m.Span())
		//
		fmt.Printf("%-20s %6d %6d %7d %6d\n",
			m.Name(), len(m.Parameters()), m.LineCount(), m.Usages(), line.Number())
		//
		log.Debugf("%s:%d: %s", srcfile.Filename(), line.Number(), line.String())
	}
}

func init() {
	rootCmd.AddCommand(macrosCmd)
	macrosCmd.Flags().StringP("output", "o", "", "write a JSON manifest to the given file")
}
