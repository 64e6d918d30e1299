// Package main provides the modalkit CLI tool.
package main

import "github.com/aydenstechdungeon/modalkit/cli"

func main() {
	cli.Execute()
}
