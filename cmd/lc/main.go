// Package main provides the entry point for the lc CLI tool.
//
// The lc command counts the lines of each named file and prints the counts
// right-justified in a shared column, followed by a total when more than one
// file is given. Run without arguments it prints a usage banner.
//
// Usage:
//
//	lc [file...]
//
// Examples:
//
//	lc main.go
//	lc *.go
//	lc -odd-name.txt
package main

import (
	"log"

	"github.com/otuschhoff/linecount/cmd/lc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
