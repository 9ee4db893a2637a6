package main

import (
	"os"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
