package main

import (
	"os"

	"github.com/zhmc-toolkit/zhmc/internal/controller/cli"
)

// Version is overridden at build time.
var Version = "DEVELOPMENT"

func main() {
	os.Exit(cli.Execute(Version))
}
