package main

import (
	"os"

	"github.com/CompassSecurity/imagelint/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
