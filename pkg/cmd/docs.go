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

	"github.com/consensys/go-rambo/pkg/docs"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "split and regroup the reference documentation.",
}

var docsSplitCmd = &cobra.Command{
	Use:   "split [flags] document",
	Short: "split a reference document into one file per section.",
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
		var (
			outdir  = GetString(cmd, "out")
			fullDoc = docFor(cmd, args[0])
			lines   = readLines(args[0])
		)
		//
		n, err := docs.Split(lines, fullDoc, outdir)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if n == 0 {
			fmt.Printf("no sections found in %s\n", args[0])
			os.Exit(1)
		}
		//
		log.Infof("wrote %d sections to %s", n, outdir)
	},
}

var docsChaptersCmd = &cobra.Command{
	Use:   "chapters [flags] document",
	Short: "regroup a reference document into themed chapters.",
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
		var (
			plan     []docs.Chapter
			err      error
			outdir   = GetString(cmd, "out")
			maxBytes = GetUint(cmd, "max-bytes")
			planFile = GetString(cmd, "plan")
			fullDoc  = docFor(cmd, args[0])
			lines    = readLines(args[0])
		)
		// Load the plan, defaulting to one chapter per section
		if planFile != "" {
			plan, err = docs.ReadPlan(planFile)
		} else {
			plan = docs.DefaultPlan(docs.ScanSections(lines))
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		n, err := docs.BuildChapters(lines, fullDoc, plan, outdir, int(maxBytes))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Infof("wrote %d chapter parts to %s", n, outdir)
	},
}

// docFor determines the document name against which extracted anchor links
// are rewritten, defaulting to the name of the document being split.
func docFor(cmd *cobra.Command, filename string) string {
	if fullDoc := GetString(cmd, "full-doc"); fullDoc != "" {
		return fullDoc
	}
	//
	return filepath.Base(filename)
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsSplitCmd)
	docsCmd.AddCommand(docsChaptersCmd)
	//
	docsSplitCmd.Flags().String("out", "sections", "directory to write section files into")
	docsSplitCmd.Flags().String("full-doc", "", "name of the full document targeted by rewritten links")
	//
	docsChaptersCmd.Flags().String("out", "chapters", "directory to write chapter files into")
	docsChaptersCmd.Flags().String("full-doc", "", "name of the full document targeted by rewritten links")
	docsChaptersCmd.Flags().Uint("max-bytes", 100000, "maximum packed size of a single chapter part")
	docsChaptersCmd.Flags().String("plan", "", "JSON chapter plan (defaults to one chapter per section)")
}
