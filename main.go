// Package main is the entry point for the testindex CLI.
package main

import "testindex/cmd"

func main() {
	cmd.Execute()
}
