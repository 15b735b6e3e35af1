package main

import "psy-match/internal/cli"

// version se inyecta con -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
