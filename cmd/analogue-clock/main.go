package main

import "analogue-clock/internal/cli"

// version is stamped by the build; see magefiles.
var version = "dev"

func main() {
	cli.Execute(version)
}
