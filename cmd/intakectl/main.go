package main

import (
	"os"

	"github.com/m04kA/SMC-IntakeService/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
