// Package main is the entry point for the resub CLI.
package main

import "resub.dev/pkg/resub/cmd"

func main() {
	cmd.Execute()
}
