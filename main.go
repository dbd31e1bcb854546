// main package for tidyvue command-line tool
// Package main is the entry point for the Tidyvue CLI.
package main

import "tidyvue.dev/pkg/tidyvue/cmd"

func main() {
	cmd.Execute()
}
