package main

import (
	"os"

	"github.com/veltner/usagehook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
