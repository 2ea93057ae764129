// Package main is the single-binary entrypoint for planshift.
package main

import "github.com/planshift/planshift/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
