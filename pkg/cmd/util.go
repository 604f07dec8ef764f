package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-rambo/pkg/toolchain"
	"github.com/consensys/go-rambo/pkg/util/source"
	"github.com/consensys/go-rambo/pkg/util/termio"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a source file to be analysed, or exit with an error.
func readSourceFile(filename string) *source.File {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return source.NewSourceFile(filename, bytes)
}

// Read a text file as a sequence of lines, or exit with an error.
func readLines(filename string) []string {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	lines := strings.Split(string(bytes), "\n")
	// Drop the empty line arising from a trailing newline
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	//
	return lines
}

// Determine the repository root against which all well-known paths are
// resolved, or exit with an error.
func resolveRoot(cmd *cobra.Command) string {
	if root := GetString(cmd, "root"); root != "" {
		return root
	}
	//
	root, err := toolchain.FindRoot()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return root
}

// Determine the style in which panels are rendered, colouring them only when
// stdout is attached to a terminal.
func panelStyle() termio.Style {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return termio.NewStyle().FgColour(termio.TERM_CYAN)
	}
	//
	return termio.NewStyle()
}
